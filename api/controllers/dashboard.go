package controllers

import (
	"net/http"

	"github.com/fooddelivery-demo/storefront/api/responses"
	dashboardsvc "github.com/fooddelivery-demo/storefront/internal/dashboard"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

// AdminDashboard returns counts, recent orders and service health.
func AdminDashboard(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}
