package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/fooddelivery-demo/storefront/internal/cart"
	"github.com/fooddelivery-demo/storefront/pkg/config"
	apperrors "github.com/fooddelivery-demo/storefront/pkg/errors"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

// Checkout steps, in submission order. Each step hits one backend service;
// the step name is reported when strict mode surfaces a failure.
const (
	StepOrder          = "order"
	StepDelivery       = "delivery"
	StepPayment        = "payment"
	StepPaymentProcess = "payment_process"
)

// Request is what the checkout form submits. Customer name and delivery
// address are the only required fields; email and phone are collected for the
// confirmation but not forwarded to the backend services.
type Request struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string `json:"customer_phone"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes"`
}

// Result is the confirmation payload. Demo marks results fabricated after a
// backend failure; real submissions leave it false.
type Result struct {
	Order    gateway.OrderRecord    `json:"order"`
	Delivery gateway.DeliveryRecord `json:"delivery"`
	Payment  gateway.PaymentRecord  `json:"payment"`
	Total    int64                  `json:"total"`
	Demo     bool                   `json:"demo"`
}

type Service interface {
	Submit(ctx context.Context, sessionID string, req Request) (Result, error)
}

type service struct {
	gw     gateway.Caller
	carts  cart.Service
	cfg    config.CheckoutConfig
	logg   *logger.Logger
	demoID func() int64
}

func NewService(gw gateway.Caller, carts cart.Service, cfg config.CheckoutConfig, logg *logger.Logger) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway caller required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	return &service{
		gw:    gw,
		carts: carts,
		cfg:   cfg,
		logg:  logg,
		demoID: func() int64 {
			return int64(100 + rand.Intn(1000))
		},
	}, nil
}

// Submit runs the four-step order workflow: create the order, create the
// delivery, create the payment, process the payment. Validation and an empty
// cart fail before any backend call is made.
func (s *service) Submit(ctx context.Context, sessionID string, req Request) (Result, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return Result{}, apperrors.New(apperrors.CodeValidation, "customer name is required")
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return Result{}, apperrors.New(apperrors.CodeValidation, "delivery address is required")
	}

	summary, err := s.carts.Summary(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	if len(summary.Items) == 0 {
		return Result{}, apperrors.New(apperrors.CodeValidation, "cart is empty")
	}

	result, stepErr := s.submitSteps(ctx, req, summary.Items, summary.Total)
	if stepErr != nil {
		if s.cfg.IsStrict() {
			return Result{}, stepErr
		}
		if s.logg != nil {
			s.logg.Warn(ctx, "checkout falling back to demo result: "+stepErr.Error())
		}
		result = s.demoResult(summary.Total)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "clearing cart after checkout: "+err.Error())
		}
	}
	return result, nil
}

func (s *service) submitSteps(ctx context.Context, req Request, items cart.Cart, total int64) (Result, error) {
	orderItems := make([]gateway.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, gateway.OrderItem{
			MenuItemID:   item.ID,
			MenuItemName: item.Name,
			Quantity:     item.Quantity,
			Price:        float64(item.Price),
		})
	}

	env := s.gw.Do(ctx, http.MethodPost, gateway.PathOrders, gateway.CreateOrderRequest{
		UserID:       s.cfg.DefaultUserID,
		RestaurantID: s.cfg.DefaultRestID,
		Items:        orderItems,
	})
	var order gateway.OrderRecord
	if err := env.Decode(&order); err != nil {
		return Result{}, stepError(StepOrder, env, err)
	}

	amount := float64(total)
	if order.TotalAmount > 0 {
		// The order service recomputes the total; trust its number when it
		// returns one.
		amount = order.TotalAmount
	}

	env = s.gw.Do(ctx, http.MethodPost, gateway.PathDeliveries, gateway.CreateDeliveryRequest{
		OrderID:         order.ID,
		DeliveryAddress: req.DeliveryAddress,
	})
	var delivery gateway.DeliveryRecord
	if err := env.Decode(&delivery); err != nil {
		return Result{}, stepError(StepDelivery, env, err)
	}

	method := req.PaymentMethod
	if strings.TrimSpace(method) == "" {
		method = s.cfg.DefaultPayMethod
	}
	env = s.gw.Do(ctx, http.MethodPost, gateway.PathPayments, gateway.CreatePaymentRequest{
		OrderID:       order.ID,
		Amount:        amount,
		PaymentMethod: method,
	})
	var payment gateway.PaymentRecord
	if err := env.Decode(&payment); err != nil {
		return Result{}, stepError(StepPayment, env, err)
	}

	env = s.gw.Do(ctx, http.MethodPost, fmt.Sprintf("%s/%d/process", gateway.PathPayments, payment.ID), nil)
	var processed gateway.PaymentRecord
	if err := env.Decode(&processed); err != nil {
		return Result{}, stepError(StepPaymentProcess, env, err)
	}

	return Result{
		Order:    order,
		Delivery: delivery,
		Payment:  processed,
		Total:    int64(amount),
	}, nil
}

// demoResult fabricates a plausible confirmation so the storefront stays
// usable while the backend is down. Ids are random and adjacent, and the
// demo flag marks the result as fabricated.
func (s *service) demoResult(total int64) Result {
	orderID := s.demoID()
	return Result{
		Order: gateway.OrderRecord{
			ID:          orderID,
			Status:      "confirmed",
			TotalAmount: float64(total),
		},
		Delivery: gateway.DeliveryRecord{
			ID:      orderID + 1,
			OrderID: orderID,
			Status:  "assigned",
		},
		Payment: gateway.PaymentRecord{
			ID:      orderID + 2,
			OrderID: orderID,
			Amount:  float64(total),
			Status:  "completed",
		},
		Total: total,
		Demo:  true,
	}
}

func stepError(step string, env gateway.Envelope, err error) error {
	msg := env.Error
	if msg == "" {
		msg = err.Error()
	}
	return apperrors.New(apperrors.CodeDependency, fmt.Sprintf("%s step failed: %s", step, msg))
}
