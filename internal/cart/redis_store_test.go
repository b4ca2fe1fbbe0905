package cart

import (
	"context"
	"testing"
	"time"

	pkgredis "github.com/fooddelivery-demo/storefront/pkg/redis"
)

type stubKV struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newStubKV() *stubKV {
	return &stubKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *stubKV) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	s.values[key] = value.(string)
	s.ttls[key] = ttl
	return nil
}

func (s *stubKV) Get(_ context.Context, key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", pkgredis.Nil
	}
	return v, nil
}

func (s *stubKV) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

func (s *stubKV) CartKey(sessionID string) string {
	return "storefront:cart:" + sessionID
}

func TestRedisStoreRoundTrip(t *testing.T) {
	kv := newStubKV()
	store := &RedisStore{kv: kv, ttl: time.Hour}
	ctx := context.Background()

	cart := Cart{{ID: 1, Name: "Rendang", Price: 35000, Quantity: 2}}
	if err := store.Save(ctx, "s1", cart); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if kv.ttls["storefront:cart:s1"] != time.Hour {
		t.Fatalf("expected ttl to be passed through, got %v", kv.ttls["storefront:cart:s1"])
	}

	loaded, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Quantity != 2 {
		t.Fatalf("unexpected cart after round trip: %+v", loaded)
	}
}

func TestRedisStoreMissingKeyYieldsEmptyCart(t *testing.T) {
	store := &RedisStore{kv: newStubKV(), ttl: time.Hour}

	cart, err := store.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestRedisStoreCorruptValueYieldsEmptyCart(t *testing.T) {
	kv := newStubKV()
	kv.values["storefront:cart:s1"] = "{not json"
	store := &RedisStore{kv: kv, ttl: time.Hour}

	cart, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestRedisStoreDelete(t *testing.T) {
	kv := newStubKV()
	store := &RedisStore{kv: kv, ttl: time.Hour}
	ctx := context.Background()

	if err := store.Save(ctx, "s1", Cart{{ID: 1, Name: "Rendang", Price: 35000, Quantity: 1}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	cart, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("expected cart gone, got %+v", cart)
	}
}

func TestNewRedisStoreRequiresClient(t *testing.T) {
	if _, err := NewRedisStore(nil, time.Hour); err == nil {
		t.Fatal("expected error for nil client")
	}
}
