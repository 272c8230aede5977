package dto

// RegisterRequest is the self-service sign-up body.
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	UserID       string `json:"user_id" binding:"required,objectid"`
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// EmailRequest is used by resend-verification and forgot-password.
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyEmailQuery is the query string of the emailed verification link.
type VerifyEmailQuery struct {
	UserID string `form:"user_id" binding:"required,objectid"`
	Token  string `form:"token" binding:"required"`
}

// ResetPasswordRequest consumes an emailed one-time code.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// ChangePasswordRequest changes the signed-in user's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72,nefield=OldPassword"`
}

// GoogleLoginRequest carries a Google ID token obtained by the client.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
