package token

import "errors"

var (
	// ErrInvalidToken covers malformed tokens, bad signatures and
	// unexpected signing algorithms.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired means the signature checked out but exp is past.
	ErrTokenExpired = errors.New("token expired")
)
