package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth/credentials"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth/token"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/logger"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/session"
)

// TokenPair is what a successful login or refresh hands back. The
// refresh token must only ever leave the service on the cookie channel.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	Role         string
}

// Manager orchestrates login, refresh rotation and logout against the
// credential store, the token signer and the session store. It holds
// no session state of its own; every request stands alone.
type Manager struct {
	creds      credentials.Store
	signer     *token.Signer
	sessions   session.Store
	refreshTTL time.Duration
}

func NewManager(
	creds credentials.Store,
	signer *token.Signer,
	sessions session.Store,
) *Manager {
	return &Manager{
		creds:      creds,
		signer:     signer,
		sessions:   sessions,
		refreshTTL: signer.RefreshTTL(),
	}
}

// RefreshTTL is the session record lifetime, which the HTTP layer
// mirrors into the cookie max-age.
func (m *Manager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

// Login verifies the caller's credentials and opens a fresh session.
// Unknown identifier and wrong secret are indistinguishable to the
// caller.
func (m *Manager) Login(ctx context.Context, identifier, secret string) (TokenPair, error) {

	cred, err := m.creds.Lookup(ctx, identifier)
	if err != nil {
		// fold "not found" and backend trouble into the same failure;
		// a noisy identity backend must not enable enumeration
		return TokenPair{}, ErrInvalidCredentials
	}

	if err := credentials.VerifySecret(cred.SecretHash, secret); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		return TokenPair{}, err
	}

	refreshToken, err := m.signer.SignRefresh(sessionID, cred.UserID)
	if err != nil {
		return TokenPair{}, err
	}

	accessToken, err := m.signer.SignAccess(cred.UserID, cred.Role)
	if err != nil {
		return TokenPair{}, err
	}

	rec := session.Session{UserID: cred.UserID, Role: cred.Role}
	if err := m.sessions.Create(ctx, sessionID, rec, m.refreshTTL); err != nil {
		return TokenPair{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         cred.Role,
	}, nil
}

// Refresh rotates the session behind a refresh token: a new session
// record is written before the old one is consumed, and consuming the
// old record is the commit point. A token whose record is already gone
// (logout, TTL lapse, or a concurrent rotation that won the race)
// fails with ErrSessionExpired.
func (m *Manager) Refresh(ctx context.Context, rawRefresh string) (TokenPair, error) {

	if rawRefresh == "" {
		return TokenPair{}, ErrMissingToken
	}

	claims, err := m.signer.VerifyRefresh(rawRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	rec, err := m.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if rec == nil {
		return TokenPair{}, ErrSessionExpired
	}

	newSessionID, err := session.GenerateID()
	if err != nil {
		return TokenPair{}, err
	}

	newRefresh, err := m.signer.SignRefresh(newSessionID, claims.Subject)
	if err != nil {
		return TokenPair{}, err
	}

	newAccess, err := m.signer.SignAccess(rec.UserID, rec.Role)
	if err != nil {
		return TokenPair{}, err
	}

	// New record first: a crash between the two writes must never
	// leave the user without any live session.
	if err := m.sessions.Create(ctx, newSessionID, *rec, m.refreshTTL); err != nil {
		return TokenPair{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	consumed, err := m.sessions.Delete(ctx, claims.SessionID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !consumed {
		// A concurrent rotation beat us to the old record. Withdraw
		// the record we just wrote so only the winner's session lives.
		if _, derr := m.sessions.Delete(ctx, newSessionID); derr != nil {
			logger.Warn("failed to withdraw losing session record", map[string]any{
				"error": derr.Error(),
			})
		}
		return TokenPair{}, ErrSessionExpired
	}

	return TokenPair{
		AccessToken:  newAccess,
		RefreshToken: newRefresh,
		Role:         rec.Role,
	}, nil
}

// Logout tears down the session referenced by the refresh token, if
// any. It never fails from the caller's point of view: an absent,
// malformed or already-consumed token all land on the same success.
func (m *Manager) Logout(ctx context.Context, rawRefresh string) {

	if rawRefresh == "" {
		return
	}

	claims, err := m.signer.VerifyRefresh(rawRefresh)
	if err != nil {
		return
	}

	if _, err := m.sessions.Delete(ctx, claims.SessionID); err != nil {
		logger.Warn("logout session delete failed", map[string]any{
			"error": err.Error(),
		})
	}
}
