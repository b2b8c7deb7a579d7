package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/session"
)

// Refresh rotates the caller's session. The refresh token arrives and
// leaves on the cookie channel only; the response body carries just
// the new access token.
func (h *Handler) Refresh(c *gin.Context) {

	raw := refreshTokenFromCookie(c)

	pair, err := h.manager.Refresh(c.Request.Context(), raw)
	if err != nil {
		if isStoreUnavailable(err) {
			storeUnavailable(c, "refresh", err)
			return
		}
		unauthorized(c, "refresh", err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)

	c.JSON(http.StatusOK, gin.H{"accessToken": pair.AccessToken})
}

func (h *Handler) setRefreshCookie(c *gin.Context, refreshToken string) {
	session.SetCookie(
		c.Writer,
		refreshToken,
		h.manager.RefreshTTL(),
		h.cookies,
	)
}
