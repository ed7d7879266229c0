package dto

// LoginRequestDTO only caps sizes. Absent fields reach the authentication
// service and get the same rejection as any other failed login.
type LoginRequestDTO struct {
	Username string `json:"username" validate:"max=256"`
	Password string `json:"password" validate:"max=1024"`
}

type LoginResponseDTO struct {
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}
