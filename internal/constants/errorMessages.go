package constants

// Profile error codes
const (
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeCharacterNotFound  = "CHARACTER_NOT_FOUND"
	ErrCodeInvalidCharacterID = "INVALID_CHARACTER_ID"
	ErrCodeDataIntegrity      = "DATA_INTEGRITY_FAULT"
	ErrCodeStoreFailure       = "STORE_FAILURE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

const (
	MsgHQFCRequired    = "You must be an HQ FC to access this endpoint"
	MsgUnauthorized    = "Unauthorized"
	MsgInvalidToken    = "Unauthorized. Invalid token"
	MsgTooManyRequests = "Too many requests"
	MsgProfileFetched  = "Profile fetched successfully"
	MsgUnexpectedError = "An unexpected error occurred"
)

var ErrorMessages = map[string]string{
	ErrCodeForbidden:          MsgHQFCRequired,
	ErrCodeCharacterNotFound:  "Character not found",
	ErrCodeInvalidCharacterID: "Character id must be an integer",
	ErrCodeDataIntegrity:      MsgUnexpectedError,
	ErrCodeStoreFailure:       MsgUnexpectedError,
	ErrCodeInternal:           MsgUnexpectedError,
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := ErrorMessages[code]; exists {
		return msg
	}
	return MsgUnexpectedError
}
