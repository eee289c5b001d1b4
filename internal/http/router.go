package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/http/handlers"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, mh *handlers.MechanicHandlers, jwtmw gin.HandlerFunc, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/verify", ah.Verify)
	auth.POST("/logout", ah.Logout)
	auth.POST("/send-otp", ah.SendOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)

	mech := r.Group("/api/mechanics")
	mech.GET("", mh.Search)
	mech.GET("/:id", mh.Get)
	mech.POST("", jwtmw, cb.Enforce(), mh.Create)

	adm := r.Group("/api/admin").Use(jwtmw, cb.Enforce())
	adm.POST("/mechanics/:id/verify", mh.MarkVerified)

	return r
}
