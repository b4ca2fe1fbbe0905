package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fooddelivery-demo/storefront/api/controllers"
	"github.com/fooddelivery-demo/storefront/api/middleware"
	"github.com/fooddelivery-demo/storefront/internal/cart"
	catalogsvc "github.com/fooddelivery-demo/storefront/internal/catalog"
	checkoutsvc "github.com/fooddelivery-demo/storefront/internal/checkout"
	dashboardsvc "github.com/fooddelivery-demo/storefront/internal/dashboard"
	trackingsvc "github.com/fooddelivery-demo/storefront/internal/tracking"
	userssvc "github.com/fooddelivery-demo/storefront/internal/users"
	"github.com/fooddelivery-demo/storefront/pkg/config"
	"github.com/fooddelivery-demo/storefront/pkg/gateway"
	"github.com/fooddelivery-demo/storefront/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisP controllers.Pinger,
	gw gateway.Caller,
	registry *prometheus.Registry,
	cartService cart.Service,
	checkoutService checkoutsvc.Service,
	catalogService catalogsvc.Service,
	trackingService trackingsvc.Service,
	dashboardService dashboardsvc.Service,
	usersService userssvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP, gw))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.With(middleware.CartSession(logg)).Get("/ping", controllers.PublicPing())
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CartSession(logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Get("/summary", controllers.CartSummary(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{itemId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{itemId}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Post("/checkout", controllers.CheckoutSubmit(checkoutService, logg))

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", controllers.RestaurantList(catalogService, logg))
			r.Get("/{restaurantId}", controllers.RestaurantFetch(catalogService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderBoard(trackingService, logg))
			r.Get("/{orderId}", controllers.OrderFetch(trackingService, logg))
		})

		r.Get("/users/{userId}", controllers.UserFetch(usersService, logg))

		r.Get("/admin/dashboard", controllers.AdminDashboard(dashboardService, logg))
	})

	return r
}
