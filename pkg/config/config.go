package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv         = "STOREFRONT_APP_ENV"
	EnvPort           = "STOREFRONT_APP_PORT"
	EnvRedisURL       = "STOREFRONT_REDIS_URL"
	EnvGatewayBaseURL = "STOREFRONT_GATEWAY_BASE_URL"
	EnvCheckoutMode   = "STOREFRONT_CHECKOUT_MODE"
)

// Checkout failure-handling modes. Demo fabricates a successful result when a
// backend step fails; strict propagates the step error to the caller.
const (
	CheckoutModeDemo   = "demo"
	CheckoutModeStrict = "strict"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Gateway  GatewayConfig
	Cart     CartConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validateMode(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether any Redis endpoint was supplied. Without one
// the cart falls back to the in-process store (dev only).
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type GatewayConfig struct {
	BaseURL     string        `envconfig:"STOREFRONT_GATEWAY_BASE_URL" required:"true"`
	CallTimeout time.Duration `envconfig:"STOREFRONT_GATEWAY_CALL_TIMEOUT" default:"10s"`
}

type CartConfig struct {
	// TTL for an idle cart session key. Zero keeps carts forever, matching
	// the browser localStorage the cart used to live in.
	SessionTTL time.Duration `envconfig:"STOREFRONT_CART_SESSION_TTL" default:"168h"`
}

type CheckoutConfig struct {
	Mode             string `envconfig:"STOREFRONT_CHECKOUT_MODE" default:"demo"`
	DeliveryFee      int64  `envconfig:"STOREFRONT_CHECKOUT_DELIVERY_FEE" default:"10000"`
	DefaultUserID    int64  `envconfig:"STOREFRONT_CHECKOUT_DEFAULT_USER_ID" default:"1"`
	DefaultRestID    int64  `envconfig:"STOREFRONT_CHECKOUT_DEFAULT_RESTAURANT_ID" default:"1"`
	DefaultPayMethod string `envconfig:"STOREFRONT_CHECKOUT_PAYMENT_METHOD" default:"credit_card"`
}

func (c CheckoutConfig) IsStrict() bool {
	return strings.EqualFold(c.Mode, CheckoutModeStrict)
}

func (c CheckoutConfig) validateMode() error {
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case CheckoutModeDemo, CheckoutModeStrict:
		return nil
	default:
		return fmt.Errorf("%s must be %q or %q", EnvCheckoutMode, CheckoutModeDemo, CheckoutModeStrict)
	}
}
