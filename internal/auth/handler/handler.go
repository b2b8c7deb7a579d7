package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/logger"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/session"
)

type Handler struct {
	manager *auth.Manager
	cookies session.CookieOptions
}

func NewHandler(manager *auth.Manager) *Handler {
	return &Handler{
		manager: manager,
		cookies: session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/logout", h.Logout)
}

// refreshTokenFromCookie reads the refresh token off its only
// legitimate transport. An absent cookie yields "".
func refreshTokenFromCookie(c *gin.Context) string {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// unauthorized writes the uniform failure response. Which internal
// check failed is logged, never surfaced.
func unauthorized(c *gin.Context, op string, err error) {
	logger.Info("auth failure", map[string]any{
		"op":    op,
		"cause": err.Error(),
		"ip":    c.ClientIP(),
	})
	c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

func storeUnavailable(c *gin.Context, op string, err error) {
	logger.Error("session store unavailable", map[string]any{
		"op":    op,
		"error": err.Error(),
	})
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
}

func isStoreUnavailable(err error) bool {
	return errors.Is(err, auth.ErrStoreUnavailable)
}
