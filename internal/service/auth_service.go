package service

import "context"

// LoginResult is the outcome of an identity-provider exchange. Either Token
// is set (authentication succeeded and a local admin token was issued) or
// Challenge/Session are set (the provider demands a new password before it
// will authenticate).
type LoginResult struct {
	Token     string
	Challenge string
	Session   string
}

// AuthService exchanges admin credentials with the identity provider and
// issues locally signed admin tokens.
type AuthService interface {
	// Login runs the password auth flow. A NEW_PASSWORD_REQUIRED challenge
	// is returned in the result, not as an error.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// CompleteNewPassword answers the new-password challenge using the
	// session returned by Login.
	CompleteNewPassword(ctx context.Context, email, newPassword, session string) (*LoginResult, error)
}
