package dto

type UserSignupRequestDTO struct {
	Username string `json:"username" validate:"max=256"`
	Password string `json:"password" validate:"max=1024"`
}

type UserSignupResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}
