package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/fooddelivery-demo/storefront/pkg/gateway"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

const recentOrderLimit = 5

// Stats are the headline counts across all backend services.
type Stats struct {
	Users            int `json:"users"`
	Restaurants      int `json:"restaurants"`
	Orders           int `json:"orders"`
	ActiveDeliveries int `json:"active_deliveries"`
}

// Overview is the admin dashboard payload. Every backend service is polled
// concurrently; a service that is down zeroes its slice of the page instead
// of failing the whole thing.
type Overview struct {
	Stats        Stats                            `json:"stats"`
	RecentOrders []gateway.OrderRecord            `json:"recent_orders"`
	Services     map[string]gateway.ServiceHealth `json:"services"`
}

type Service interface {
	Overview(ctx context.Context) (Overview, error)
}

type service struct {
	gw   gateway.Caller
	logg *logger.Logger
}

func NewService(gw gateway.Caller, logg *logger.Logger) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway caller required")
	}
	return &service{gw: gw, logg: logg}, nil
}

func (s *service) Overview(ctx context.Context) (Overview, error) {
	var (
		users      []gateway.User
		usersCount int

		restaurants      []gateway.Restaurant
		restaurantsCount int

		orders      []gateway.OrderRecord
		ordersCount int

		deliveries []gateway.DeliveryRecord
		health     gateway.Envelope

		usersErr, restaurantsErr, ordersErr, deliveriesErr error
	)

	// Every fetch runs regardless of the others failing; errors are
	// collected for one log line, not propagated.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env := s.gw.Do(gctx, http.MethodGet, gateway.PathUsers, nil)
		if err := env.Decode(&users); err != nil {
			usersErr = fmt.Errorf("users: %w", err)
			return nil
		}
		usersCount = countOf(env, len(users))
		return nil
	})
	g.Go(func() error {
		env := s.gw.Do(gctx, http.MethodGet, gateway.PathRestaurants, nil)
		if err := env.Decode(&restaurants); err != nil {
			restaurantsErr = fmt.Errorf("restaurants: %w", err)
			return nil
		}
		restaurantsCount = countOf(env, len(restaurants))
		return nil
	})
	g.Go(func() error {
		env := s.gw.Do(gctx, http.MethodGet, gateway.PathOrders, nil)
		if err := env.Decode(&orders); err != nil {
			ordersErr = fmt.Errorf("orders: %w", err)
			return nil
		}
		ordersCount = countOf(env, len(orders))
		return nil
	})
	g.Go(func() error {
		env := s.gw.Do(gctx, http.MethodGet, gateway.PathDeliveries, nil)
		if err := env.Decode(&deliveries); err != nil {
			deliveriesErr = fmt.Errorf("deliveries: %w", err)
			return nil
		}
		return nil
	})
	g.Go(func() error {
		health = s.gw.Do(gctx, http.MethodGet, gateway.PathHealth, nil)
		return nil
	})
	_ = g.Wait()

	if fetchErrs := multierr.Combine(usersErr, restaurantsErr, ordersErr, deliveriesErr); fetchErrs != nil && s.logg != nil {
		s.logg.Warn(ctx, "dashboard fetched with degraded sources: "+fetchErrs.Error())
	}

	overview := Overview{
		Stats: Stats{
			Users:            usersCount,
			Restaurants:      restaurantsCount,
			Orders:           ordersCount,
			ActiveDeliveries: countActiveDeliveries(deliveries),
		},
		RecentOrders: recentOrders(orders),
		Services:     health.Services,
	}
	return overview, nil
}

// countOf prefers the envelope's count field when the upstream sets one,
// falling back to the decoded slice length.
func countOf(env gateway.Envelope, fallback int) int {
	if env.Count > 0 {
		return env.Count
	}
	return fallback
}

func countActiveDeliveries(deliveries []gateway.DeliveryRecord) int {
	var active int
	for _, d := range deliveries {
		if d.Status != "delivered" && d.Status != "cancelled" {
			active++
		}
	}
	return active
}

func recentOrders(orders []gateway.OrderRecord) []gateway.OrderRecord {
	if len(orders) > recentOrderLimit {
		return orders[:recentOrderLimit]
	}
	return orders
}
