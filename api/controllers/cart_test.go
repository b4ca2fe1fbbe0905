package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fooddelivery-demo/storefront/api/middleware"
	cartsvc "github.com/fooddelivery-demo/storefront/internal/cart"
)

func newCartService(t *testing.T) cartsvc.Service {
	t.Helper()
	svc, err := cartsvc.NewService(cartsvc.NewMemoryStore(), 10000)
	if err != nil {
		t.Fatalf("cart.NewService: %v", err)
	}
	return svc
}

func withSession(req *http.Request, session string) *http.Request {
	return req.WithContext(middleware.WithCartSession(req.Context(), session))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func TestCartAddItemCreatesLine(t *testing.T) {
	svc := newCartService(t)
	handler := CartAddItem(svc, nil)

	body := strings.NewReader(`{"id":1,"name":"Rendang","price":35000}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "s1")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.Cart `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Quantity != 1 {
		t.Fatalf("unexpected cart %+v", envelope.Data)
	}
}

func TestCartAddItemRejectsUnknownFields(t *testing.T) {
	handler := CartAddItem(newCartService(t), nil)

	body := strings.NewReader(`{"id":1,"name":"Rendang","price":35000,"bogus":true}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "s1")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsMissingName(t *testing.T) {
	handler := CartAddItem(newCartService(t), nil)

	body := strings.NewReader(`{"id":1,"price":35000}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "s1")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartFetchReturnsSessionCart(t *testing.T) {
	svc := newCartService(t)
	if _, err := svc.Add(context.Background(), "s1", cartsvc.NewItem{ID: 1, Name: "Rendang", Price: 35000}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	handler := CartFetch(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), "s1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.Cart `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("expected 1 line, got %d", len(envelope.Data))
	}
}

func TestCartFetchMissingSession(t *testing.T) {
	handler := CartFetch(newCartService(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

func TestCartUpdateItemSetsQuantity(t *testing.T) {
	svc := newCartService(t)
	if _, err := svc.Add(context.Background(), "s1", cartsvc.NewItem{ID: 4, Name: "Es Teh Manis", Price: 8000}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	handler := CartUpdateItem(svc, nil)

	body := strings.NewReader(`{"quantity":3}`)
	req := withSession(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/4", body), "s1")
	req = withURLParam(req, "itemId", "4")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.Cart `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data[0].Quantity != 3 {
		t.Fatalf("expected quantity 3 got %d", envelope.Data[0].Quantity)
	}
}

func TestCartUpdateItemUnknownID(t *testing.T) {
	handler := CartUpdateItem(newCartService(t), nil)

	body := strings.NewReader(`{"quantity":3}`)
	req := withSession(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/99", body), "s1")
	req = withURLParam(req, "itemId", "99")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartUpdateItemBadPathParam(t *testing.T) {
	handler := CartUpdateItem(newCartService(t), nil)

	body := strings.NewReader(`{"quantity":3}`)
	req := withSession(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/abc", body), "s1")
	req = withURLParam(req, "itemId", "abc")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemoveItem(t *testing.T) {
	svc := newCartService(t)
	if _, err := svc.Add(context.Background(), "s1", cartsvc.NewItem{ID: 1, Name: "Rendang", Price: 35000}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	handler := CartRemoveItem(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/1", nil), "s1")
	req = withURLParam(req, "itemId", "1")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.Cart `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 0 {
		t.Fatalf("expected empty cart, got %+v", envelope.Data)
	}
}

func TestCartClear(t *testing.T) {
	svc := newCartService(t)
	if _, err := svc.Add(context.Background(), "s1", cartsvc.NewItem{ID: 1, Name: "Rendang", Price: 35000}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	handler := CartClear(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), "s1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	cart, err := svc.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("expected cleared cart, got %+v", cart)
	}
}

func TestCartSummaryIncludesFee(t *testing.T) {
	svc := newCartService(t)
	if _, err := svc.Add(context.Background(), "s1", cartsvc.NewItem{ID: 2, Name: "Ayam Pop", Price: 28000}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	handler := CartSummary(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart/summary", nil), "s1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.Summary `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != 38000 {
		t.Fatalf("expected total 38000 got %d", envelope.Data.Total)
	}
}
