package cart

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/fooddelivery-demo/storefront/pkg/errors"
)

// NewItem describes a menu item being added to a cart. Quantity always
// starts at one; repeat adds bump the existing line instead.
type NewItem struct {
	ID    int64  `json:"id" validate:"required,gt=0"`
	Name  string `json:"name" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
}

// Summary is the cart plus the totals the checkout page renders.
type Summary struct {
	Items       Cart  `json:"items"`
	ItemCount   int   `json:"item_count"`
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	Add(ctx context.Context, sessionID string, item NewItem) (Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) (Cart, error)
	Remove(ctx context.Context, sessionID string, itemID int64) (Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Total(ctx context.Context, sessionID string) (int64, error)
	Summary(ctx context.Context, sessionID string) (Summary, error)
}

type service struct {
	store       Store
	deliveryFee int64
}

func NewService(store Store, deliveryFee int64) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if deliveryFee < 0 {
		return nil, fmt.Errorf("delivery fee must not be negative")
	}
	return &service{store: store, deliveryFee: deliveryFee}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	return s.store.Load(ctx, sessionID)
}

func (s *service) Add(ctx context.Context, sessionID string, item NewItem) (Cart, error) {
	if item.ID <= 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "item id is required")
	}
	if strings.TrimSpace(item.Name) == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "item name is required")
	}
	if item.Price < 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "item price must not be negative")
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := cart.indexOf(item.ID); i >= 0 {
		cart[i].Quantity++
	} else {
		cart = append(cart, Item{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) (Cart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, itemID)
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.indexOf(itemID)
	if i < 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "item not in cart")
	}
	cart[i].Quantity = quantity

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) Remove(ctx context.Context, sessionID string, itemID int64) (Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.indexOf(itemID)
	if i < 0 {
		// Removing an absent item is a no-op, same as clearing a row twice.
		return cart, nil
	}
	cart = append(cart[:i], cart[i+1:]...)

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *service) Total(ctx context.Context, sessionID string) (int64, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	subtotal := cart.Total()
	return Summary{
		Items:       cart,
		ItemCount:   cart.ItemCount(),
		Subtotal:    subtotal,
		DeliveryFee: s.deliveryFee,
		Total:       subtotal + s.deliveryFee,
	}, nil
}
