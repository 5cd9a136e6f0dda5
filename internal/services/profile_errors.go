package services

import (
	"errors"
	"fmt"

	"fleet-waitlist/backend/internal/constants"
)

// ProfileError is returned by every profile operation. Code is one of the constants.ErrCode*
// values; Err keeps the underlying cause for logging and is never shown to the caller.
type ProfileError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func newProfileError(code string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: constants.GetErrorMessage(code),
		Err:     err,
	}
}

func errForbidden(err error) *ProfileError {
	return newProfileError(constants.ErrCodeForbidden, err)
}

func errNotFound(characterID int64) *ProfileError {
	return &ProfileError{
		Code:    constants.ErrCodeCharacterNotFound,
		Message: fmt.Sprintf("Character %d not found", characterID),
	}
}

func errDataIntegrity(err error) *ProfileError {
	return newProfileError(constants.ErrCodeDataIntegrity, err)
}

func errStoreFailure(err error) *ProfileError {
	return newProfileError(constants.ErrCodeStoreFailure, err)
}

func errInternal(err error) *ProfileError {
	return newProfileError(constants.ErrCodeInternal, err)
}

// ErrorCode returns the code of a ProfileError in err's chain, or ErrCodeInternal.
func ErrorCode(err error) string {
	var profileErr *ProfileError
	if errors.As(err, &profileErr) {
		return profileErr.Code
	}
	return constants.ErrCodeInternal
}
