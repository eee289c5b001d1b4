package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc  domain.AuthService
	tokenSvc domain.TokenService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, tokenSvc domain.TokenService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, tokenSvc: tokenSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Identity string `json:"identity" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Identity string `json:"identity" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SendOTPRequest represents an OTP send request
type SendOTPRequest struct {
	Identity string `json:"identity" binding:"required"`
}

// VerifyOTPRequest represents an OTP-verified registration request
type VerifyOTPRequest struct {
	Identity string `json:"identity" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// authError maps a workflow error to its HTTP status and user message.
func authError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		fail(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrOTPRateLimited):
		fail(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrOTPNotFound),
		errors.Is(err, domain.ErrOTPInvalid),
		errors.Is(err, domain.ErrOTPMaxAttempts):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		fail(c, http.StatusNotFound, "User not found")
	default:
		fail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

// Register handles password-only registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Identity and password are required")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Identity, req.Password, req.Role)
	if err != nil {
		authError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    user,
	})
}

// Login handles credential login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Identity and password are required")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Identity, req.Password)
	if err != nil {
		authError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

// Verify reports whether the presented bearer token is still good and
// returns the account it belongs to.
func (h *AuthHandlers) Verify(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Authorization header required"})
		return
	}

	claims, err := h.tokenSvc.Validate(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Invalid or expired token"})
		return
	}

	user, err := h.authSvc.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "user": user})
}

// Logout acknowledges a logout. Tokens are stateless so there is nothing
// to revoke server-side; the client discards the token.
func (h *AuthHandlers) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		fail(c, http.StatusUnauthorized, "Authorization header required")
		return
	}
	if _, err := h.tokenSvc.Validate(token); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// SendOTP handles OTP generation and dispatch
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Identity is required")
		return
	}

	if err := h.authSvc.SendOTP(c.Request.Context(), req.Identity); err != nil {
		authError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully"})
}

// VerifyOTP handles OTP-verified registration and issues a token
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Identity, otp and password are required")
		return
	}

	result, err := h.authSvc.VerifyOTPAndRegister(c.Request.Context(), req.Identity, req.OTP, req.Password, req.Role)
	if err != nil {
		authError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
