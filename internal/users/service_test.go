package users

import (
	"context"
	"encoding/json"
	"testing"

	apperrors "github.com/fooddelivery-demo/storefront/pkg/errors"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
)

type stubCaller struct {
	responses map[string]gateway.Envelope
}

func (s *stubCaller) Do(_ context.Context, _, path string, _ any) gateway.Envelope {
	if env, ok := s.responses[path]; ok {
		return env
	}
	return gateway.Unavailable()
}

func TestGetProfilePassesLiveUserThrough(t *testing.T) {
	raw, _ := json.Marshal(gateway.User{ID: 3, Name: "Siti Aminah", Email: "siti@example.com"})
	gw := &stubCaller{responses: map[string]gateway.Envelope{
		gateway.PathUsers + "/3": {Success: true, Data: raw},
	}}

	svc, err := NewService(gw, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	profile, err := svc.GetProfile(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Demo {
		t.Fatal("live profile must not be flagged as demo")
	}
	if profile.User.Name != "Siti Aminah" {
		t.Fatalf("unexpected user %+v", profile.User)
	}
}

func TestGetProfileFallsBackToDemoUser(t *testing.T) {
	gw := &stubCaller{responses: map[string]gateway.Envelope{}}

	svc, err := NewService(gw, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	profile, err := svc.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if !profile.Demo {
		t.Fatal("expected demo flag")
	}
	if profile.User.Name != "John Doe" || profile.User.Phone != "081234567890" {
		t.Fatalf("unexpected demo user %+v", profile.User)
	}
}

func TestGetProfileRejectsBadID(t *testing.T) {
	svc, err := NewService(&stubCaller{}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.GetProfile(context.Background(), 0)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := apperrors.As(err)
	if appErr == nil || appErr.Code() != apperrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}
