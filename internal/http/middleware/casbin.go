package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// CasbinMW wraps the casbin enforcer for route authorization.
type CasbinMW struct {
	enforcer *casbin.Enforcer
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(enforcer *casbin.Enforcer) *CasbinMW {
	return &CasbinMW{enforcer: enforcer}
}

// Enforce returns the casbin authorization middleware. Every role the
// token carries is tried; the first allowed role wins.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		rawRoles, exists := c.Get("user_roles")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Roles not found in token"})
			c.Abort()
			return
		}

		roles, ok := rawRoles.([]string)
		if !ok || len(roles) == 0 {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
			c.Abort()
			return
		}

		path := c.Request.URL.Path
		method := c.Request.Method

		for _, role := range roles {
			allowed, err := mw.enforcer.Enforce("role_"+role, path, method)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Authorization check failed"})
				c.Abort()
				return
			}
			if allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
		c.Abort()
	})
}
