package controllers

import (
	"net/http"

	"github.com/fooddelivery-demo/storefront/api/responses"
	"github.com/fooddelivery-demo/storefront/api/validators"
	checkoutsvc "github.com/fooddelivery-demo/storefront/internal/checkout"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

type checkoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string `json:"customer_phone"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes"`
}

// CheckoutSubmit runs the order workflow for the session's cart.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), session, checkoutsvc.Request{
			CustomerName:    validators.SanitizeString(payload.CustomerName, validators.MaxNameLen),
			CustomerEmail:   validators.SanitizeString(payload.CustomerEmail, validators.MaxEmailLen),
			CustomerPhone:   validators.SanitizeString(payload.CustomerPhone, validators.MaxPhoneLen),
			DeliveryAddress: validators.SanitizeString(payload.DeliveryAddress, validators.MaxAddressLen),
			PaymentMethod:   validators.SanitizeString(payload.PaymentMethod, validators.MaxMethodLen),
			Notes:           validators.SanitizeString(payload.Notes, validators.MaxNotesLen),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
