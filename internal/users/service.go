package users

import (
	"context"
	"fmt"
	"net/http"

	apperrors "github.com/fooddelivery-demo/storefront/pkg/errors"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

// Profile is the checkout prefill payload. Demo marks the hardcoded profile
// served when the user service is down.
type Profile struct {
	User gateway.User `json:"user"`
	Demo bool         `json:"demo"`
}

type Service interface {
	GetProfile(ctx context.Context, id int64) (Profile, error)
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

func (s *service) GetProfile(ctx context.Context, id int64) (Profile, error) {
	if id <= 0 {
		return Profile{}, apperrors.New(apperrors.CodeValidation, "user id must be positive")
	}

	env := s.gw.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", gateway.PathUsers, id), nil)

	var user gateway.User
	if err := env.Decode(&user); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "user lookup unavailable, serving demo profile")
		}
		return Profile{User: demoUser(id), Demo: true}, nil
	}
	return Profile{User: user}, nil
}

func demoUser(id int64) gateway.User {
	return gateway.User{
		ID:      id,
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   "081234567890",
		Address: "Jl. Contoh No. 123, Jakarta",
	}
}
