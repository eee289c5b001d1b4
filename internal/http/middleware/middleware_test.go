package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/mocks"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && r.act == p.act
`

func newEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	m, err := model.NewModelFromString(modelText)
	require.NoError(t, err)
	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	return e
}

func protectedRouter(t *testing.T, tokenSvc domain.TokenService, enforcer *casbin.Enforcer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	cb := NewCasbinMW(enforcer)
	r.POST("/api/mechanics", AuthMiddleware(tokenSvc), cb.Enforce(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func issueToken(t *testing.T, tokenSvc *mocks.MockTokenService, roles ...string) string {
	t.Helper()
	token, err := tokenSvc.Generate(&domain.AccountView{
		ID:       "acc-1",
		Identity: "owner@gmail.com",
		Roles:    roles,
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := protectedRouter(t, mocks.NewMockTokenService(), newEnforcer(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/mechanics", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadHeaderFormat(t *testing.T) {
	r := protectedRouter(t, mocks.NewMockTokenService(), newEnforcer(t))

	req := httptest.NewRequest(http.MethodPost, "/api/mechanics", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedRouter(t, mocks.NewMockTokenService(), newEnforcer(t))

	req := httptest.NewRequest(http.MethodPost, "/api/mechanics", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCasbinMW_AllowsPermittedRole(t *testing.T) {
	enforcer := newEnforcer(t)
	_, err := enforcer.AddPolicy("role_mechanic", "/api/mechanics", "POST")
	require.NoError(t, err)

	tokenSvc := mocks.NewMockTokenService()
	r := protectedRouter(t, tokenSvc, enforcer)

	req := httptest.NewRequest(http.MethodPost, "/api/mechanics", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokenSvc, domain.RoleMechanic))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCasbinMW_DeniesMissingRole(t *testing.T) {
	enforcer := newEnforcer(t)
	_, err := enforcer.AddPolicy("role_mechanic", "/api/mechanics", "POST")
	require.NoError(t, err)

	tokenSvc := mocks.NewMockTokenService()
	r := protectedRouter(t, tokenSvc, enforcer)

	req := httptest.NewRequest(http.MethodPost, "/api/mechanics", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokenSvc, domain.RoleCustomer))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCasbinMW_AnyRoleMayMatch(t *testing.T) {
	enforcer := newEnforcer(t)
	_, err := enforcer.AddPolicy("role_"+domain.RoleAdmin, "/api/mechanics", "POST")
	require.NoError(t, err)

	tokenSvc := mocks.NewMockTokenService()
	r := protectedRouter(t, tokenSvc, enforcer)

	req := httptest.NewRequest(http.MethodPost, "/api/mechanics", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokenSvc, domain.RoleCustomer, domain.RoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
