package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the verified contents of an access token.
// Access tokens are stateless: nothing here points at a session record.
type AccessClaims struct {
	Subject string
	Role    string
}

// RefreshClaims bind a refresh token to the session record whose
// existence gates its validity.
type RefreshClaims struct {
	SessionID string
	Subject   string
}

// Signer mints and verifies the two token kinds with distinct secrets
// and lifetimes. Both are HS256 JWTs.
type Signer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewSigner(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Signer {
	return &Signer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *Signer) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *Signer) SignAccess(userID, role string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	})
	return t.SignedString(s.accessSecret)
}

func (s *Signer) SignRefresh(sessionID, userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":  sessionID,
		"sub":  userID,
		"iat":  now.Unix(),
		"exp":  now.Add(s.refreshTTL).Unix(),
	})
	return t.SignedString(s.refreshSecret)
}

func (s *Signer) VerifyAccess(raw string) (AccessClaims, error) {
	claims, err := s.verify(raw, s.accessSecret)
	if err != nil {
		return AccessClaims{}, err
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return AccessClaims{}, ErrInvalidToken
	}

	return AccessClaims{Subject: sub, Role: role}, nil
}

func (s *Signer) VerifyRefresh(raw string) (RefreshClaims, error) {
	claims, err := s.verify(raw, s.refreshSecret)
	if err != nil {
		return RefreshClaims{}, err
	}

	sid, _ := claims["sid"].(string)
	sub, _ := claims["sub"].(string)
	if sid == "" || sub == "" {
		return RefreshClaims{}, ErrInvalidToken
	}

	return RefreshClaims{SessionID: sid, Subject: sub}, nil
}

func (s *Signer) verify(raw string, secret []byte) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
