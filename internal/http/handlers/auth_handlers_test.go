package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/mocks"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/services"
)

type authHandlerEnv struct {
	router   *gin.Engine
	userRepo *mocks.MockUserRepository
	otpSvc   *mocks.MockOTPService
	tokenSvc *mocks.MockTokenService
}

func newAuthEnv(t *testing.T) *authHandlerEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := mocks.NewMockUserRepository()
	otpSvc := mocks.NewMockOTPService()
	tokenSvc := mocks.NewMockTokenService()
	authSvc := services.NewAuthService(userRepo, mocks.NewMockPasswordService(), tokenSvc, otpSvc)

	h := NewAuthHandlers(authSvc, tokenSvc)
	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/verify", h.Verify)
	auth.POST("/logout", h.Logout)
	auth.POST("/send-otp", h.SendOTP)
	auth.POST("/verify-otp", h.VerifyOTP)

	return &authHandlerEnv{router: r, userRepo: userRepo, otpSvc: otpSvc, tokenSvc: tokenSvc}
}

func (e *authHandlerEnv) do(t *testing.T, method, path string, body any, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestRegisterEndpoint(t *testing.T) {
	env := newAuthEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"identity": "Rider@Gmail.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])
	user := resp["user"].(map[string]any)
	assert.Equal(t, "rider@gmail.com", user["identity"])
	assert.NotContains(t, user, "passwordHash")
}

func TestRegisterEndpointRejectsBadIdentity(t *testing.T) {
	env := newAuthEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"identity": "rider@yahoo.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Only Gmail addresses (@gmail.com) are allowed", resp["message"])
}

func TestRegisterEndpointRejectsDuplicate(t *testing.T) {
	env := newAuthEnv(t)

	w, _ := env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"identity": "9876543210", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"identity": "+919876543210", "password": "other99",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User with this identity already exists.", resp["message"])
}

func TestRegisterEndpointRequiresBody(t *testing.T) {
	env := newAuthEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/register", gin.H{"identity": "a@gmail.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestLoginEndpoint(t *testing.T) {
	env := newAuthEnv(t)
	env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"identity": "rider@gmail.com", "password": "secret1",
	})

	w, resp := env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"identity": "rider@gmail.com", "password": "secret1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["token"])
	user := resp["user"].(map[string]any)
	assert.Equal(t, "rider@gmail.com", user["identity"])
}

func TestLoginEndpointGenericFailure(t *testing.T) {
	env := newAuthEnv(t)
	env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"identity": "rider@gmail.com", "password": "secret1",
	})

	wWrongPass, respWrongPass := env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"identity": "rider@gmail.com", "password": "wrong99",
	})
	wUnknown, respUnknown := env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"identity": "ghost@gmail.com", "password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, wWrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, respWrongPass["message"], respUnknown["message"])
}

func TestVerifyEndpoint(t *testing.T) {
	env := newAuthEnv(t)
	env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"identity": "rider@gmail.com", "password": "secret1",
	})
	_, login := env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"identity": "rider@gmail.com", "password": "secret1",
	})
	token := login["token"].(string)

	w, resp := env.do(t, http.MethodPost, "/api/auth/verify", nil,
		"Authorization", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["valid"])
	user := resp["user"].(map[string]any)
	assert.Equal(t, "rider@gmail.com", user["identity"])
}

func TestVerifyEndpointRejectsBadToken(t *testing.T) {
	env := newAuthEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/verify", nil,
		"Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, resp["valid"])

	w, _ = env.do(t, http.MethodPost, "/api/auth/verify", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	env := newAuthEnv(t)
	env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"identity": "rider@gmail.com", "password": "secret1",
	})
	_, login := env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"identity": "rider@gmail.com", "password": "secret1",
	})

	w, resp := env.do(t, http.MethodPost, "/api/auth/logout", nil,
		"Authorization", "Bearer "+login["token"].(string))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	w, _ = env.do(t, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSendOTPEndpoint(t *testing.T) {
	env := newAuthEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/send-otp", gin.H{
		"identity": "9876543210",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, []string{"9876543210"}, env.otpSvc.Sends())
}

func TestSendOTPEndpointRejectsBadIdentity(t *testing.T) {
	env := newAuthEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/send-otp", gin.H{
		"identity": "12345",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a valid 10-digit Indian phone number", resp["message"])
}

func TestSendOTPEndpointRateLimited(t *testing.T) {
	env := newAuthEnv(t)
	env.otpSvc.SendFunc = func(ctx context.Context, identity string, kind domain.IdentityKind) error {
		return domain.ErrOTPRateLimited
	}

	w, resp := env.do(t, http.MethodPost, "/api/auth/send-otp", gin.H{
		"identity": "9876543210",
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, domain.ErrOTPRateLimited.Error(), resp["message"])
}

func TestVerifyOTPEndpoint(t *testing.T) {
	env := newAuthEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"identity": "9876543210",
		"otp":      "123456",
		"password": "secret1",
		"role":     domain.RoleMechanic,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["token"])
	user := resp["user"].(map[string]any)
	assert.Equal(t, "9876543210", user["identity"])
}

func TestVerifyOTPEndpointRejectsWrongCode(t *testing.T) {
	env := newAuthEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"identity": "9876543210",
		"otp":      "000000",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid OTP code", resp["message"])
}
