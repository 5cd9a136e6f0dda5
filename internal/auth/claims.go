package auth

import (
	"errors"
	"fmt"

	"github.com/ErikKalkoken/go-set"
)

var ErrAccessDenied = errors.New("access denied")

// Account is the authenticated caller of a request.
type Account interface {
	ID() int64
	HasAccess(key string) bool
	RequireAccess(key string) error
}

// AccountClaims is the Account built by the auth middleware from a bearer token and the
// caller's admin role.
type AccountClaims struct {
	CharacterID int64
	AccessKeys  set.Set[string]
}

func NewAccountClaims(characterID int64, keys ...string) *AccountClaims {
	return &AccountClaims{CharacterID: characterID, AccessKeys: set.Of(keys...)}
}

func (c *AccountClaims) ID() int64 { return c.CharacterID }

func (c *AccountClaims) HasAccess(key string) bool { return c.AccessKeys.Contains(key) }

// RequireAccess returns an error wrapping ErrAccessDenied unless the caller holds key.
func (c *AccountClaims) RequireAccess(key string) error {
	if c.HasAccess(key) {
		return nil
	}
	return fmt.Errorf("%w: missing %s", ErrAccessDenied, key)
}
