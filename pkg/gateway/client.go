package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fooddelivery-demo/storefront/pkg/config"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
	"github.com/fooddelivery-demo/storefront/pkg/metrics"
)

// Gateway paths, service-prefixed the way the API gateway proxies them.
const (
	PathOrders      = "api/order-service/api/orders"
	PathDeliveries  = "api/delivery-service/api/deliveries"
	PathPayments    = "api/payment-service/api/payments"
	PathRestaurants = "api/restaurant-service/api/restaurants"
	PathUsers       = "api/user-service/api/users"
	PathHealth      = "health"
)

type httpDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Caller is the outbound surface the read/write services depend on. Every
// implementation must return an envelope, never an error: transport failures
// are normalized into a failed envelope.
type Caller interface {
	Do(ctx context.Context, method, path string, body any) Envelope
}

// Client issues JSON calls to the backend services through the API gateway.
type Client struct {
	baseURL string
	timeout time.Duration
	http    httpDoer
	logg    *logger.Logger
	metrics *metrics.GatewayMetrics
}

// NewClient builds the gateway client from config.
func NewClient(cfg config.GatewayConfig, logg *logger.Logger, m *metrics.GatewayMetrics) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("gateway base url is required")
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: base,
		timeout: timeout,
		http:    &http.Client{},
		logg:    logg,
		metrics: m,
	}, nil
}

// Do issues a request and folds every failure mode into the envelope. The
// per-call timeout bounds hung upstreams; a canceled parent context still
// wins.
func (c *Client) Do(ctx context.Context, method, path string, body any) Envelope {
	service := serviceFromPath(path)
	start := time.Now()
	env := c.do(ctx, method, path, body)
	c.metrics.ObserveDuration(service, time.Since(start))
	if env.Success {
		c.metrics.IncSuccess(service)
	} else {
		c.metrics.IncFailure(service)
		if c.logg != nil {
			logCtx := c.logg.WithUpstream(ctx, service)
			logCtx = c.logg.WithFields(logCtx, map[string]any{"method": method, "path": path})
			c.logg.Warn(logCtx, "gateway call failed: "+env.Error)
		}
	}
	return env
}

// Get is shorthand for a body-less GET call.
func (c *Client) Get(ctx context.Context, path string) Envelope {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post is shorthand for a JSON POST call.
func (c *Client) Post(ctx context.Context, path string, body any) Envelope {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body any) Envelope {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Failure(fmt.Sprintf("encoding request body: %v", err))
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Failure(fmt.Sprintf("building request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Unavailable()
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Unavailable()
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Unavailable()
	}
	if !env.Success && env.Error == "" {
		env.Error = ServiceUnavailableMsg
	}
	return env
}

// serviceFromPath extracts the upstream service name for metrics and logs.
// "api/order-service/api/orders" yields "order-service"; bare paths such as
// "health" are attributed to the gateway itself.
func serviceFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "api" && strings.HasSuffix(parts[1], "-service") {
		return parts[1]
	}
	return "api-gateway"
}
