package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleet-waitlist/backend/internal/auth"
	"fleet-waitlist/backend/internal/common"
	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/logging"
	"fleet-waitlist/backend/internal/middleware"
	"fleet-waitlist/backend/internal/models/dtos/responses"
	"fleet-waitlist/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

type ProfileGetter interface {
	GetProfile(ctx context.Context, caller auth.Account, characterID int64) (*responses.ProfileData, error)
}

// GetProfileHandler handles GET /api/profile/{character_id}
func GetProfileHandler(profiles ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		account := auth.GetAccount(r.Context())
		if account == nil {
			common.RespondError(w, initTime, constants.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		characterID, err := strconv.ParseInt(chi.URLParam(r, "character_id"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, constants.GetErrorMessage(constants.ErrCodeInvalidCharacterID), http.StatusBadRequest)
			return
		}

		profile, err := profiles.GetProfile(r.Context(), account, characterID)
		if err != nil {
			handleProfileError(w, r, initTime, account.ID(), err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgProfileFetched, profile)
	}
}

// handleProfileError maps service errors to HTTP responses. Server faults are logged and
// answered with a generic message.
func handleProfileError(w http.ResponseWriter, r *http.Request, initTime time.Time, callerID int64, err error) {
	var profileErr *services.ProfileError
	if !errors.As(err, &profileErr) {
		profileErr = &services.ProfileError{Code: constants.ErrCodeInternal, Err: err}
	}

	if !services.IsClientError(err) {
		logging.WithRequest(middleware.RequestID(r.Context()), callerID, r.URL.Path).Errorw(
			"Profile request failed",
			"code", profileErr.Code,
			"error", err.Error(),
		)
	}

	message := constants.GetErrorMessage(profileErr.Code)
	if profileErr.Code == constants.ErrCodeCharacterNotFound && profileErr.Message != "" {
		message = profileErr.Message
	}
	common.RespondError(w, initTime, message, mapErrorCodeToHTTPStatus(profileErr.Code))
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(errorCode string) int {
	switch errorCode {
	// 400 Bad Request
	case constants.ErrCodeInvalidCharacterID:
		return http.StatusBadRequest

	// 403 Forbidden - Authenticated but no permission
	case constants.ErrCodeForbidden:
		return http.StatusForbidden

	// 404 Not Found - Resource doesn't exist
	case constants.ErrCodeCharacterNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
