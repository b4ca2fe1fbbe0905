package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fooddelivery-demo/storefront/api/controllers"
	"github.com/fooddelivery-demo/storefront/api/routes"
	"github.com/fooddelivery-demo/storefront/internal/cart"
	"github.com/fooddelivery-demo/storefront/internal/catalog"
	"github.com/fooddelivery-demo/storefront/internal/checkout"
	"github.com/fooddelivery-demo/storefront/internal/dashboard"
	"github.com/fooddelivery-demo/storefront/internal/tracking"
	"github.com/fooddelivery-demo/storefront/internal/users"
	"github.com/fooddelivery-demo/storefront/pkg/config"
	"github.com/fooddelivery-demo/storefront/pkg/env"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
	"github.com/fooddelivery-demo/storefront/pkg/metrics"
	"github.com/fooddelivery-demo/storefront/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	// The cart lives in redis when one is configured; dev runs fall back to
	// the in-process store.
	var (
		cartStore   cart.Store
		redisPinger controllers.Pinger
	)
	if cfg.Redis.Configured() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		store, err := cart.NewRedisStore(redisClient, cfg.Cart.SessionTTL)
		if err != nil {
			logg.Error(context.Background(), "failed to create cart store", err)
			os.Exit(1)
		}
		cartStore = store
		redisPinger = redisClient
	} else {
		if cfg.App.IsProd() {
			logg.Warn(context.Background(), "no redis configured, carts will not survive a restart")
		}
		cartStore = cart.NewMemoryStore()
	}

	registry := prometheus.NewRegistry()
	gatewayMetrics := metrics.NewGatewayMetrics(registry)

	gatewayClient, err := gateway.NewClient(cfg.Gateway, logg, gatewayMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create gateway client", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cartStore, cfg.Checkout.DeliveryFee)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	checkoutService, err := checkout.NewService(gatewayClient, cartService, cfg.Checkout, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}
	catalogService, err := catalog.NewService(gatewayClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	trackingService, err := tracking.NewService(gatewayClient, cartService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create tracking service", err)
		os.Exit(1)
	}
	dashboardService, err := dashboard.NewService(gatewayClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}
	usersService, err := users.NewService(gatewayClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"checkout_mode": cfg.Checkout.Mode,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, redisPinger, gatewayClient, registry,
			cartService, checkoutService, catalogService,
			trackingService, dashboardService, usersService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront server stopped unexpectedly", err)
		os.Exit(1)
	}
}
