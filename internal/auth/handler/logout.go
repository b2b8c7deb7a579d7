package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/session"
)

// Logout always succeeds: with no cookie, a garbage cookie or a
// long-dead session the caller still ends up logged out.
func (h *Handler) Logout(c *gin.Context) {

	h.manager.Logout(c.Request.Context(), refreshTokenFromCookie(c))

	session.ClearCookie(c.Writer, h.cookies)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
