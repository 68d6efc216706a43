package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, tampered and expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnknownSubject means the token verified but its subject no
	// longer matches a stored user.
	ErrUnknownSubject = errors.New("token subject not found")
)
