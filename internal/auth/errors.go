package auth

import (
	"errors"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth/token"
)

// Failure taxonomy for the session subsystem. Handlers collapse all
// authentication failures into one generic unauthorized response; the
// distinctions below exist for logging and for tests.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrSessionExpired     = errors.New("session expired")
	ErrForbidden          = errors.New("forbidden")
	ErrStoreUnavailable   = errors.New("session store unavailable")

	// Token verification failures originate in the token package.
	ErrInvalidToken = token.ErrInvalidToken
	ErrTokenExpired = token.ErrTokenExpired
)
