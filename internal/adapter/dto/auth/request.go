package auth

// DevLoginRequest is the body for POST /v1/auth/dev-login. The password is a
// development gate only; it is never stored or compared against anything.
type DevLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
	Name     string `json:"name" validate:"max=255"`
}
