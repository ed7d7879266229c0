package userservice

const (
	// Error messages for user service operations
	ErrMsgGenerateSalt       = "failed to generate salt"
	ErrMsgHashPassword       = "failed to hash password" // #nosec G101
	ErrMsgVerifyPassword     = "failed to verify password"
	ErrMsgRegisterCredential = "failed to register credential"
	ErrMsgRetrievingUser     = "error retrieving credential"
	ErrMsgUserNotFound       = "user not found"
	ErrMsgInvalidPassword    = "invalid password"
	ErrMsgCorruptCredential  = "stored credential cannot be verified"
	ErrMsgMissingInput       = "username or password missing"
	ErrMsgDuplicateUsername  = "username already exists"
	ErrMsgValidationFailed   = "credential validation failed"

	logKeyReason = "reason"
)
