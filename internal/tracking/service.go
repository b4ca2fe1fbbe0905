package tracking

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fooddelivery-demo/storefront/internal/cart"
	apperrors "github.com/fooddelivery-demo/storefront/pkg/errors"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

// TrackedOrder pairs an active order with its delivery, when one exists.
type TrackedOrder struct {
	Order    gateway.OrderRecord     `json:"order"`
	Delivery *gateway.DeliveryRecord `json:"delivery,omitempty"`
}

// Board is the tracking page payload: in-flight orders up top, full history
// below. Demo marks a fabricated board served while the backend is down.
type Board struct {
	Active  []TrackedOrder        `json:"active"`
	History []gateway.OrderRecord `json:"history"`
	Demo    bool                  `json:"demo"`
}

// OrderView is a single tracked order.
type OrderView struct {
	Order gateway.OrderRecord `json:"order"`
	Demo  bool                `json:"demo"`
}

type Service interface {
	GetOrder(ctx context.Context, sessionID string, orderID int64) (OrderView, error)
	Board(ctx context.Context) (Board, error)
}

type service struct {
	gw    gateway.Caller
	carts cart.Service
	logg  *logger.Logger
	now   func() time.Time
}

func NewService(gw gateway.Caller, carts cart.Service, logg *logger.Logger) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway caller required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	return &service{gw: gw, carts: carts, logg: logg, now: time.Now}, nil
}

// GetOrder fetches one order. When the order service is down a demo order is
// synthesized so the confirmation page still renders, priced from the
// session's cart plus the delivery fee.
func (s *service) GetOrder(ctx context.Context, sessionID string, orderID int64) (OrderView, error) {
	if orderID <= 0 {
		return OrderView{}, apperrors.New(apperrors.CodeValidation, "order id must be positive")
	}

	env := s.gw.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", gateway.PathOrders, orderID), nil)

	var order gateway.OrderRecord
	if err := env.Decode(&order); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "order lookup unavailable, serving demo order")
		}
		summary, sumErr := s.carts.Summary(ctx, sessionID)
		if sumErr != nil {
			return OrderView{}, sumErr
		}
		return OrderView{
			Order: gateway.OrderRecord{
				ID:              orderID,
				Status:          "confirmed",
				TotalAmount:     float64(summary.Total),
				DeliveryAddress: "Jl. Contoh No. 123, Jakarta",
				CustomerName:    "John Doe",
				CreatedAt:       s.now().UTC().Format(time.RFC3339),
			},
			Demo: true,
		}, nil
	}
	return OrderView{Order: order}, nil
}

// Board fetches orders and deliveries concurrently and waits for both before
// assembling the page. Either fetch failing downgrades the whole board to
// demo data.
func (s *service) Board(ctx context.Context) (Board, error) {
	var (
		orders     []gateway.OrderRecord
		deliveries []gateway.DeliveryRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env := s.gw.Do(gctx, http.MethodGet, gateway.PathOrders, nil)
		return env.Decode(&orders)
	})
	g.Go(func() error {
		env := s.gw.Do(gctx, http.MethodGet, gateway.PathDeliveries, nil)
		return env.Decode(&deliveries)
	})

	if err := g.Wait(); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "order tracking unavailable, serving demo board: "+err.Error())
		}
		return s.demoBoard(), nil
	}
	return buildBoard(orders, deliveries), nil
}

func buildBoard(orders []gateway.OrderRecord, deliveries []gateway.DeliveryRecord) Board {
	byOrder := make(map[int64]*gateway.DeliveryRecord, len(deliveries))
	for i := range deliveries {
		byOrder[deliveries[i].OrderID] = &deliveries[i]
	}

	board := Board{History: orders}
	for _, order := range orders {
		if !isActive(order.Status) {
			continue
		}
		board.Active = append(board.Active, TrackedOrder{
			Order:    order,
			Delivery: byOrder[order.ID],
		})
	}
	return board
}

func isActive(status string) bool {
	return status != "delivered" && status != "cancelled"
}

func (s *service) demoBoard() Board {
	now := s.now().UTC()
	orders := []gateway.OrderRecord{
		{
			ID:              101,
			Status:          "on_the_way",
			TotalAmount:     85000,
			DeliveryAddress: "Jl. Sudirman No. 123, Jakarta Pusat",
			CreatedAt:       now.Add(-30 * time.Minute).Format(time.RFC3339),
		},
		{
			ID:              102,
			Status:          "delivered",
			TotalAmount:     125000,
			DeliveryAddress: "Jl. Thamrin No. 456, Jakarta Pusat",
			CreatedAt:       now.Add(-2 * time.Hour).Format(time.RFC3339),
		},
	}
	deliveries := []gateway.DeliveryRecord{
		{OrderID: 101, Status: "picked_up", CourierName: "Budi Santoso"},
		{OrderID: 102, Status: "delivered", CourierName: "Siti Nurhaliza"},
	}

	board := buildBoard(orders, deliveries)
	board.Demo = true
	return board
}
