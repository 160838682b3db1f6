package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	beersvc "github.com/brewtrack/brewery-backend/internal/beers"
	"github.com/brewtrack/brewery-backend/pkg/config"
	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
	"github.com/brewtrack/brewery-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCatalog struct{}

func (stubCatalog) ListBeers(context.Context, beersvc.ListBeersInput) (*beersvc.BeerPagedList, error) {
	return &beersvc.BeerPagedList{Content: []beersvc.BeerDTO{}, PageSize: 25}, nil
}

func (stubCatalog) GetByID(_ context.Context, beerID int, _ bool) (*beersvc.BeerDTO, error) {
	if beerID != 1 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "beer not found")
	}
	price := decimal.RequireFromString("12.95")
	return &beersvc.BeerDTO{ID: 1, BeerName: "Mango Bobs", BeerStyle: "IPA", Price: &price}, nil
}

func (stubCatalog) GetByUPC(context.Context, string) (*beersvc.BeerDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "beer not found")
}

func (stubCatalog) CreateBeer(context.Context, beersvc.BeerDTO) (*beersvc.BeerDTO, error) {
	price := decimal.RequireFromString("10.99")
	return &beersvc.BeerDTO{ID: 9, BeerName: "TEST_BEER", BeerStyle: "ALE", Price: &price}, nil
}

func (stubCatalog) UpdateBeer(_ context.Context, beerID int, _ beersvc.BeerDTO) (*beersvc.BeerDTO, error) {
	return &beersvc.BeerDTO{ID: beerID}, nil
}

func (stubCatalog) DeleteBeer(context.Context, int) error {
	return nil
}

func (stubCatalog) DeleteBeerChecked(context.Context, int) error {
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})

	return NewRouter(cfg, logg, stubPinger{}, stubPinger{}, prometheus.NewRegistry(), stubCatalog{})
}

func TestRouterEndpointWiring(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{"health live", http.MethodGet, "/health/live", http.StatusOK},
		{"health ready", http.MethodGet, "/health/ready", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"public ping", http.MethodGet, "/api/public/ping", http.StatusOK},
		{"v1 list", http.MethodGet, "/api/v1/beer", http.StatusOK},
		{"v1 get", http.MethodGet, "/api/v1/beer/1", http.StatusOK},
		{"v1 get missing", http.MethodGet, "/api/v1/beer/42", http.StatusNotFound},
		{"v1 upc missing", http.MethodGet, "/api/v1/beerUpc/0000000000000", http.StatusNotFound},
		{"v1 delete", http.MethodDelete, "/api/v1/beer/1", http.StatusOK},
		{"v2 get", http.MethodGet, "/api/v2/beer/1", http.StatusOK},
		{"v2 upc missing", http.MethodGet, "/api/v2/beerUpc/0000000000000", http.StatusNotFound},
		{"v2 delete", http.MethodDelete, "/api/v2/beer/1", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v3/beer", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.target, tc.want, rec.Code)
			}
		})
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header to be set")
	}

	req = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "fixed-id" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}
