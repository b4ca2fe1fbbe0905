package controllers

import (
	"net/http"

	"github.com/fooddelivery-demo/storefront/api/responses"
	"github.com/fooddelivery-demo/storefront/api/validators"
	trackingsvc "github.com/fooddelivery-demo/storefront/internal/tracking"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

// OrderFetch returns one order for the tracking page.
func OrderFetch(svc trackingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := validators.ParsePathID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.GetOrder(r.Context(), session, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// OrderBoard returns active orders joined with deliveries plus full history.
func OrderBoard(svc trackingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := svc.Board(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, board)
	}
}
