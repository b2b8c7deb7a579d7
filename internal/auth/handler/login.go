package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.manager.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if isStoreUnavailable(err) {
			storeUnavailable(c, "login", err)
			return
		}
		// same response for unknown email and wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"accessToken": pair.AccessToken,
		"role":        pair.Role,
	})
}
