package credvalidator

const (
	DefaultUsernameMinLength = 5
	DefaultUsernameMaxLength = 25
	DefaultUsernamePattern   = `^[A-Za-z0-9._-]+$`
	DefaultPasswordMinLength = 6

	FieldUsername = "username"
	FieldPassword = "password"

	charsetTag = "username_charset"
)

// Reason identifies which rule a value broke.
type Reason string

const (
	ReasonEmpty            Reason = "empty"
	ReasonTooShort         Reason = "too_short"
	ReasonTooLong          Reason = "too_long"
	ReasonInvalidCharacter Reason = "invalid_characters"
)
