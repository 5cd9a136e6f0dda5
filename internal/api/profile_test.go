package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-waitlist/backend/internal/access"
	"fleet-waitlist/backend/internal/auth"
	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/models/dtos/responses"
	"fleet-waitlist/backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfiles struct {
	profile *responses.ProfileData
	err     error
	gotID   int64
}

func (s *stubProfiles) GetProfile(_ context.Context, caller auth.Account, characterID int64) (*responses.ProfileData, error) {
	s.gotID = characterID
	if err := services.CheckAccess(caller, characterID); err != nil {
		return nil, err
	}
	return s.profile, s.err
}

type envelope struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    *responses.ProfileData `json:"data"`
}

func serveProfile(t *testing.T, profiles ProfileGetter, account auth.Account, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/profile/{character_id}", GetProfileHandler(profiles))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if account != nil {
		req = req.WithContext(auth.SetAccount(req.Context(), account))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var body envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return rr, body
}

func TestGetProfileHandler_OwnProfile(t *testing.T) {
	stub := &stubProfiles{profile: &responses.ProfileData{
		Main: responses.CharacterDetails{ID: 7, Name: "Solo", Badges: []string{}, FleetTime: []responses.ActivitySummaryEntry{}},
		Alts: []responses.CharacterDetails{},
	}}

	rr, body := serveProfile(t, stub, auth.NewAccountClaims(7), "/api/profile/7")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(constants.APIStatusOk), body.Status)
	assert.Equal(t, constants.MsgProfileFetched, body.Message)
	require.NotNil(t, body.Data)
	assert.Equal(t, "Solo", body.Data.Main.Name)
	assert.Equal(t, int64(7), stub.gotID)
}

func TestGetProfileHandler_Errors(t *testing.T) {
	cases := []struct {
		name    string
		account auth.Account
		path    string
		err     error
		status  int
		message string
	}{
		{
			name:    "no account",
			path:    "/api/profile/1",
			status:  http.StatusUnauthorized,
			message: constants.MsgUnauthorized,
		},
		{
			name:    "non numeric id",
			account: auth.NewAccountClaims(1),
			path:    "/api/profile/abc",
			status:  http.StatusBadRequest,
			message: constants.GetErrorMessage(constants.ErrCodeInvalidCharacterID),
		},
		{
			name:    "other character without hq-fc",
			account: auth.NewAccountClaims(1, access.KeyTrainee),
			path:    "/api/profile/2",
			status:  http.StatusForbidden,
			message: constants.MsgHQFCRequired,
		},
		{
			name:    "missing character",
			account: auth.NewAccountClaims(1, access.KeyHQFC),
			path:    "/api/profile/2",
			err:     &services.ProfileError{Code: constants.ErrCodeCharacterNotFound, Message: "Character 2 not found"},
			status:  http.StatusNotFound,
			message: "Character 2 not found",
		},
		{
			name:    "data integrity fault",
			account: auth.NewAccountClaims(1),
			path:    "/api/profile/1",
			err:     &services.ProfileError{Code: constants.ErrCodeDataIntegrity, Message: "hull 99 unknown"},
			status:  http.StatusInternalServerError,
			message: constants.MsgUnexpectedError,
		},
		{
			name:    "untyped error",
			account: auth.NewAccountClaims(1),
			path:    "/api/profile/1",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: constants.MsgUnexpectedError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr, body := serveProfile(t, &stubProfiles{err: tc.err}, tc.account, tc.path)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, string(constants.APIStatusError), body.Status)
			assert.Equal(t, tc.message, body.Message)
			assert.Nil(t, body.Data)
		})
	}
}

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, mapErrorCodeToHTTPStatus(constants.ErrCodeForbidden))
	assert.Equal(t, http.StatusNotFound, mapErrorCodeToHTTPStatus(constants.ErrCodeCharacterNotFound))
	assert.Equal(t, http.StatusBadRequest, mapErrorCodeToHTTPStatus(constants.ErrCodeInvalidCharacterID))
	assert.Equal(t, http.StatusInternalServerError, mapErrorCodeToHTTPStatus(constants.ErrCodeStoreFailure))
	assert.Equal(t, http.StatusInternalServerError, mapErrorCodeToHTTPStatus("SOMETHING_ELSE"))
}
