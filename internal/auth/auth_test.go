package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestAccountClaims_RequireAccess(t *testing.T) {
	claims := NewAccountClaims(7, "waitlist-tag:HQ-FC")

	assert.Equal(t, int64(7), claims.ID())
	assert.NoError(t, claims.RequireAccess("waitlist-tag:HQ-FC"))
	assert.ErrorIs(t, claims.RequireAccess("waitlist-tag:TRAINEE"), ErrAccessDenied)
}

func TestAccountContext(t *testing.T) {
	assert.Nil(t, GetAccount(context.Background()))

	ctx := SetAccount(context.Background(), NewAccountClaims(3))
	account := GetAccount(ctx)
	require.NotNil(t, account)
	assert.Equal(t, int64(3), account.ID())
}

func TestToken_RoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, 2112345678, time.Hour)
	require.NoError(t, err)

	id, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(2112345678), id)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, 1, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := IssueToken(testSecret, 1, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
