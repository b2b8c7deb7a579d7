package session

import (
	"net/http"
	"time"
)

const (
	// CookieName matches the original deployment's refresh cookie.
	CookieName = "refresh_token"
)

// CookieOptions defines how refresh cookies are issued. The refresh
// token travels only on this channel, never in a response body.
type CookieOptions struct {
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
	Domain   string
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/auth" // refresh token is only ever sent to /auth/*
	}
	if !o.HttpOnly {
		o.HttpOnly = true // secure default
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// SetCookie issues the refresh cookie to the client.
func SetCookie(
	w http.ResponseWriter,
	refreshToken string,
	maxAge time.Duration,
	opts CookieOptions,
) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    refreshToken,
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: opts.HttpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie removes the refresh cookie from the client.
func ClearCookie(
	w http.ResponseWriter,
	opts CookieOptions,
) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   -1,
		HttpOnly: opts.HttpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
