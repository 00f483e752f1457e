package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by access tokens.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GetAuthInfo explains how to obtain a token.
func (h *Handlers) GetAuthInfo(c *gin.Context) {
	instructions := gin.H{
		"1":                    "Send a POST request to this endpoint with the body containing your username and password credentials",
		"1 - Example POST Body": gin.H{"username": "test-user", "password": "password123"},
		"2":                    "If your credentials are valid, you will receive a response containing your JWT Auth Token.",
		"3":                    "Set this token in your headers as the following key-value pair: 'token': 'example-jwt-token'",
		"4":                    "Now you can access all of the endpoints displayed on /api",
		"Note":                 "Want to test this out? Send a POST request to this endpoint with the example body above!",
	}
	c.JSON(http.StatusOK, gin.H{"instructions": instructions})
}

// PostAuthInfo exchanges presented credentials for a signed token.
func (h *Handlers) PostAuthInfo(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing credentials"})
		return
	}

	token, err := h.generateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Could not verify credentials or generate JWT."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// generateToken signs a 15 day HS256 token for a username.
func (h *Handlers) generateToken(username string) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
