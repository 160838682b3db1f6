package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brewtrack/brewery-backend/api/controllers"
	"github.com/brewtrack/brewery-backend/api/middleware"
	beersvc "github.com/brewtrack/brewery-backend/internal/beers"
	"github.com/brewtrack/brewery-backend/pkg/config"
	"github.com/brewtrack/brewery-backend/pkg/db"
	"github.com/brewtrack/brewery-backend/pkg/logger"
	"github.com/brewtrack/brewery-backend/pkg/metrics"
	"github.com/brewtrack/brewery-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cacheP redis.Pinger,
	registry *prometheus.Registry,
	beerService beersvc.Service,
) http.Handler {
	var httpMetrics *metrics.HTTPMetrics
	if registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(registry)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cacheP, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/beer", controllers.ListBeers(beerService, logg))
		r.Post("/beer", controllers.CreateBeer(beerService, logg))
		r.Get("/beer/{beerId}", controllers.GetBeerByID(beerService, logg))
		r.Put("/beer/{beerId}", controllers.UpdateBeer(beerService, logg))
		r.Delete("/beer/{beerId}", controllers.DeleteBeer(beerService, logg))
		r.Get("/beerUpc/{upc}", controllers.GetBeerByUPC(beerService, logg))
	})

	r.Route("/api/v2", func(r chi.Router) {
		for _, route := range controllers.BeerRoutesV2(beerService, logg) {
			r.Method(route.Method, route.Pattern, route.Handler)
		}
	})

	return r
}
