package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	userssvc "github.com/fooddelivery-demo/storefront/internal/users"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
)

type stubUsers struct {
	profile userssvc.Profile
	err     error
}

func (s stubUsers) GetProfile(_ context.Context, _ int64) (userssvc.Profile, error) {
	return s.profile, s.err
}

func TestUserFetchSuccess(t *testing.T) {
	handler := UserFetch(stubUsers{profile: userssvc.Profile{
		User: gateway.User{ID: 1, Name: "John Doe"},
		Demo: true,
	}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	req = withURLParam(req, "userId", "1")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data userssvc.Profile `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.User.Name != "John Doe" {
		t.Fatalf("unexpected profile %+v", envelope.Data)
	}
}

func TestUserFetchBadID(t *testing.T) {
	handler := UserFetch(stubUsers{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/zero", nil)
	req = withURLParam(req, "userId", "zero")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
