package auth

import (
	"context"
)

type contextKey string

var accountKey contextKey = "account"

func SetAccount(ctx context.Context, account Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

func GetAccount(ctx context.Context) Account {
	val := ctx.Value(accountKey)
	if account, ok := val.(Account); ok {
		return account
	}
	return nil
}
