package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fleet-waitlist/backend/internal/auth"
	"fleet-waitlist/backend/internal/common"
	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/logging"

	"github.com/ErikKalkoken/go-set"
)

// AccessKeyLoader returns the capability keys held by a character.
type AccessKeyLoader interface {
	LoadAccessKeys(ctx context.Context, characterID int64) (set.Set[string], error)
}

// AuthMiddleware authenticates the bearer token and stores the caller's account in the context.
func AuthMiddleware(secret []byte, keys AccessKeyLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, initTime, constants.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			characterID, err := auth.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logging.Debug("Rejected bearer token", "error", err.Error())
				common.RespondError(w, initTime, constants.MsgInvalidToken, http.StatusUnauthorized)
				return
			}

			accessKeys, err := keys.LoadAccessKeys(r.Context(), characterID)
			if err != nil {
				logging.Error("Failed to load access keys",
					"character_id", characterID,
					"error", err.Error(),
				)
				common.RespondError(w, initTime, constants.MsgUnexpectedError, http.StatusInternalServerError)
				return
			}

			account := &auth.AccountClaims{CharacterID: characterID, AccessKeys: accessKeys}
			ctx := auth.SetAccount(r.Context(), account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
