package app

import (
	"log/slog"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/infrastructure/auth"
)

// seedPolicies installs the default role policies on first start.
func seedPolicies(cas *auth.CasbinService, logger *slog.Logger) {
	policies, _ := cas.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	cas.E.AddPolicy("role_"+domain.RoleMechanic, "/api/mechanics", "POST")
	cas.E.AddPolicy("role_"+domain.RoleCustomer, "/api/mechanics", "POST")
	cas.E.AddPolicy("role_"+domain.RoleAdmin, "/api/mechanics", "POST")
	cas.E.AddPolicy("role_"+domain.RoleAdmin, "/api/admin/*", "POST")
	if err := cas.E.SavePolicy(); err != nil {
		logger.Warn("casbin: failed to save seeded policies", "error", err)
		return
	}
	logger.Info("casbin: seeded default policies")
}
