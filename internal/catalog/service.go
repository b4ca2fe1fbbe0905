package catalog

import (
	"context"
	"fmt"
	"net/http"

	apperrors "github.com/fooddelivery-demo/storefront/pkg/errors"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

// RestaurantList is the restaurant listing plus a flag telling the caller
// whether it is live data or the hardcoded sample fallback.
type RestaurantList struct {
	Restaurants []gateway.Restaurant `json:"restaurants"`
	Sample      bool                 `json:"sample"`
}

// RestaurantDetail is one restaurant with its menu.
type RestaurantDetail struct {
	Restaurant gateway.Restaurant `json:"restaurant"`
	Sample     bool               `json:"sample"`
}

type Service interface {
	ListRestaurants(ctx context.Context) (RestaurantList, error)
	GetRestaurant(ctx context.Context, id int64) (RestaurantDetail, error)
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

func (s *service) ListRestaurants(ctx context.Context) (RestaurantList, error) {
	env := s.gw.Do(ctx, http.MethodGet, gateway.PathRestaurants, nil)

	var restaurants []gateway.Restaurant
	if err := env.Decode(&restaurants); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "restaurant listing unavailable, serving sample data")
		}
		return RestaurantList{Restaurants: sampleRestaurants(), Sample: true}, nil
	}
	return RestaurantList{Restaurants: restaurants}, nil
}

func (s *service) GetRestaurant(ctx context.Context, id int64) (RestaurantDetail, error) {
	if id <= 0 {
		return RestaurantDetail{}, apperrors.New(apperrors.CodeValidation, "restaurant id must be positive")
	}

	env := s.gw.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", gateway.PathRestaurants, id), nil)

	var restaurant gateway.Restaurant
	if err := env.Decode(&restaurant); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "restaurant detail unavailable, serving sample data")
		}
		return RestaurantDetail{Restaurant: sampleRestaurant(id), Sample: true}, nil
	}
	return RestaurantDetail{Restaurant: restaurant}, nil
}
