package domain

import "time"

// TokenPurpose separates verification tokens from password reset codes.
type TokenPurpose string

const (
	TokenEmailVerification TokenPurpose = "email_verification"
	TokenPasswordReset     TokenPurpose = "password_reset"
)

// Token is a short-lived, single-use secret looked up by (user, token).
// The store expires it automatically some minutes after CreatedAt.
type Token struct {
	TokenID   string       `json:"tokenID"`
	UserID    string       `json:"userID"`
	Token     string       `json:"-"`
	Purpose   TokenPurpose `json:"purpose"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Expired reports whether the token is older than ttl at now.
func (t *Token) Expired(ttl time.Duration, now time.Time) bool {
	return now.After(t.CreatedAt.Add(ttl))
}
