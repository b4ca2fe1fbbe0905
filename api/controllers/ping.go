package controllers

import (
	"net/http"

	"github.com/fooddelivery-demo/storefront/api/middleware"
	"github.com/fooddelivery-demo/storefront/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "public", "status": "ok"}
		if session := middleware.CartSessionFromContext(r.Context()); session != "" {
			payload["cart_session"] = session
		}
		responses.WriteSuccess(w, payload)
	}
}
