package controllers

import (
	"net/http"

	"github.com/fooddelivery-demo/storefront/api/responses"
	"github.com/fooddelivery-demo/storefront/api/validators"
	catalogsvc "github.com/fooddelivery-demo/storefront/internal/catalog"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

// RestaurantList returns all restaurants, live or sample.
func RestaurantList(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListRestaurants(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// RestaurantFetch returns one restaurant with its menu.
func RestaurantFetch(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "restaurantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.GetRestaurant(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}
