package token

import (
	"errors"
	"testing"
	"time"
)

func newTestSigner() *Signer {
	return NewSigner("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestSigner()

	raw, err := s.SignAccess("uid-admin", "admin")
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}

	claims, err := s.VerifyAccess(raw)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.Subject != "uid-admin" {
		t.Errorf("subject = %q, want uid-admin", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	s := newTestSigner()

	raw, err := s.SignRefresh("sid-1", "uid-user")
	if err != nil {
		t.Fatalf("SignRefresh: %v", err)
	}

	claims, err := s.VerifyRefresh(raw)
	if err != nil {
		t.Fatalf("VerifyRefresh: %v", err)
	}
	if claims.SessionID != "sid-1" {
		t.Errorf("sessionID = %q, want sid-1", claims.SessionID)
	}
	if claims.Subject != "uid-user" {
		t.Errorf("subject = %q, want uid-user", claims.Subject)
	}
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	s := newTestSigner()

	access, err := s.SignAccess("uid-user", "user")
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}
	refresh, err := s.SignRefresh("sid-1", "uid-user")
	if err != nil {
		t.Fatalf("SignRefresh: %v", err)
	}

	if _, err := s.VerifyRefresh(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyRefresh(access token) = %v, want ErrInvalidToken", err)
	}
	if _, err := s.VerifyAccess(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyAccess(refresh token) = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	s := newTestSigner()
	other := NewSigner("other-access", "other-refresh", time.Minute, time.Hour)

	raw, err := other.SignAccess("uid-user", "admin")
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}

	if _, err := s.VerifyAccess(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyAccess(foreign signature) = %v, want ErrInvalidToken", err)
	}

	if _, err := s.VerifyAccess("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyAccess(garbage) = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyReportsExpiry(t *testing.T) {
	s := NewSigner("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	access, err := s.SignAccess("uid-user", "user")
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}
	if _, err := s.VerifyAccess(access); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyAccess(expired) = %v, want ErrTokenExpired", err)
	}

	refresh, err := s.SignRefresh("sid-1", "uid-user")
	if err != nil {
		t.Fatalf("SignRefresh: %v", err)
	}
	if _, err := s.VerifyRefresh(refresh); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyRefresh(expired) = %v, want ErrTokenExpired", err)
	}
}
