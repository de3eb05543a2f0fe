package dto

// RegisterRequest describes the registration form payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RecoverRequest asks the remote service to send a recovery code.
type RecoverRequest struct {
	Email string `json:"email"`
}

// ResetRequest exchanges a recovery code for a new password.
type ResetRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

// MessageResponse carries a human-readable outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a token issued by the remote service.
type TokenResponse struct {
	Token string `json:"token"`
}

// ValidationErrorResponse maps form fields to validation messages.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}
