package models

// UserRegisterPayload is the request body for /auth/register.
type UserRegisterPayload struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserLoginPayload is the request body for /auth/login.
type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCredential is the row returned by the authenticate_user routine.
type UserCredential struct {
	UserID       int64
	PasswordHash string
}
