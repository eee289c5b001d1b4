package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/config"
	httpx "github.com/raghunathreddymustur/bike-mechanic-discovery/internal/http"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/http/handlers"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/http/middleware"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/infrastructure/auth"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/logging"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(c.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	seedPolicies(cas, logger)

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.TokenSvc)
	mechH := handlers.NewMechanicHandlers(c.MechanicSvc)

	jwtMW := middleware.AuthMiddleware(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, mechH, jwtMW, casbinMW)

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}
