package controllers

import (
	"context"
	"net/http"

	"github.com/fooddelivery-demo/storefront/api/responses"
	"github.com/fooddelivery-demo/storefront/pkg/config"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

// Pinger is the readiness probe surface of a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports the storefront's own dependencies: the cart store and
// the API gateway. A nil redis pinger means the in-process cart store is in
// use and redis is reported as disabled rather than failed.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisP Pinger, gw gateway.Caller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		checks := map[string]string{}
		ready := true

		if redisP == nil {
			checks["redis"] = "disabled"
		} else if err := redisP.Ping(r.Context()); err != nil {
			checks["redis"] = "unhealthy"
			ready = false
			if logg != nil {
				logg.Warn(r.Context(), "redis readiness check failed: "+err.Error())
			}
		} else {
			checks["redis"] = "healthy"
		}

		if gw == nil {
			checks["api_gateway"] = "disabled"
		} else if env := gw.Do(r.Context(), http.MethodGet, gateway.PathHealth, nil); !env.Success {
			// A degraded gateway does not fail readiness: the storefront
			// still serves sample and demo data without it.
			checks["api_gateway"] = "unhealthy"
		} else {
			checks["api_gateway"] = "healthy"
		}

		status := http.StatusOK
		payload := map[string]any{"status": "ready", "checks": checks}
		if !ready {
			status = http.StatusServiceUnavailable
			payload["status"] = "not_ready"
		}
		responses.WriteSuccessStatus(w, status, payload)
	}
}
