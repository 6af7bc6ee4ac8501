package types

// CreateAccountRequest is the body for account creation. The email address
// receives the activation code.
type CreateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// RecoverAccountRequest starts an account recovery by email.
type RecoverAccountRequest struct {
	Email string `json:"email"`
}

// CompleteRecoveryRequest finishes a recovery started with
// RecoverAccountRequest using the code sent by email.
type CompleteRecoveryRequest struct {
	NewPassword string `json:"newPassword"`
}

// UpdatePasswordRequest is the body for POST /user/password.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdateEmailRequest is the body for POST /user/email.
type UpdateEmailRequest struct {
	Email string `json:"email"`
}

// ResultResponse is returned by endpoints that only report success, such as
// account activation and captcha solving.
type ResultResponse struct {
	Result string `json:"result"`
}

// CaptchaRequest carries a solved captcha challenge.
type CaptchaRequest struct {
	CaptchaChallenge string `json:"captchaChallenge"`
}
