package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookease/services/user"
)

// RegisterUser creates an account and returns it with a session token.
func (h *HandlerBundle) RegisterUser(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	u, token, err := h.Auth.Register(input)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
}

// LoginUser verifies credentials and returns a session token.
func (h *HandlerBundle) LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	u, token, err := h.Auth.Login(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// LoginAdmin verifies back-office credentials and returns an admin token.
func (h *HandlerBundle) LoginAdmin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	a, token, err := h.Auth.LoginAdmin(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": a, "token": token})
}

// Logout revokes the caller's token.
func (h *HandlerBundle) Logout(c *gin.Context) {
	token := c.GetString("authToken")
	if token != "" {
		h.Auth.Logout(token)
	}
	c.Status(http.StatusNoContent)
}

// GetProfile returns the signed-in user's account.
func (h *HandlerBundle) GetProfile(c *gin.Context) {
	u, err := h.Auth.GetUser(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateProfile merges partial edits into the signed-in user's account.
func (h *HandlerBundle) UpdateProfile(c *gin.Context) {
	var updates user.ProfileUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	u, err := h.Auth.UpdateProfile(c.GetString("userID"), updates)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
