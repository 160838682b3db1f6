package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	beersvc "github.com/brewtrack/brewery-backend/internal/beers"
	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
)

func TestBeerRoutesV2Table(t *testing.T) {
	routes := BeerRoutesV2(&stubBeerService{}, testLogger())

	want := map[string]bool{
		"GET /beer/{beerId}":    true,
		"GET /beerUpc/{upc}":    true,
		"POST /beer":            true,
		"PUT /beer/{beerId}":    true,
		"DELETE /beer/{beerId}": true,
	}
	if len(routes) != len(want) {
		t.Fatalf("expected %d routes, got %d", len(want), len(routes))
	}
	for _, route := range routes {
		key := route.Method + " " + route.Pattern
		if !want[key] {
			t.Fatalf("unexpected route %s", key)
		}
		if route.Handler == nil {
			t.Fatalf("route %s has no handler", key)
		}
	}
}

func TestGetBeerByIDV2ShowInventoryParam(t *testing.T) {
	logg := testLogger()
	price := decimal.RequireFromString("12.95")
	stub := &stubBeerService{getResult: &beersvc.BeerDTO{ID: 4, BeerName: "Pinball Porter", BeerStyle: "PORTER", Price: &price}}

	req := withBeerID(httptest.NewRequest(http.MethodGet, "/api/v2/beer/4?showInventory=true", nil), "4")
	rec := httptest.NewRecorder()
	getBeerByIDV2(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.getID != 4 || !stub.getShowInventory {
		t.Fatalf("unexpected service args: id=%d show=%v", stub.getID, stub.getShowInventory)
	}
}

func TestCreateBeerV2(t *testing.T) {
	logg := testLogger()
	price := decimal.RequireFromString("10.99")

	t.Run("ok with v2 location", func(t *testing.T) {
		stub := &stubBeerService{created: &beersvc.BeerDTO{ID: 8, BeerName: "TEST_BEER", BeerStyle: "PALE_ALE", Price: &price}}
		body := `{"beerName":"TEST_BEER","beerStyle":"PALE_ALE","upc":"0631234200036","price":"10.99"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v2/beer", strings.NewReader(body))
		rec := httptest.NewRecorder()
		createBeerV2(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/api/v2/beer/8" {
			t.Fatalf("unexpected Location: %q", loc)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		stub := &stubBeerService{}
		body := `{"beerName":"TEST_BEER","beerStyle":"PALE_ALE","price":"10.99","bogus":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/v2/beer", strings.NewReader(body))
		rec := httptest.NewRecorder()
		createBeerV2(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDeleteBeerV2UsesCheckedVariant(t *testing.T) {
	logg := testLogger()

	t.Run("missing id is 404", func(t *testing.T) {
		stub := &stubBeerService{checkedErr: pkgerrors.New(pkgerrors.CodeNotFound, "beer not found")}
		req := withBeerID(httptest.NewRequest(http.MethodDelete, "/api/v2/beer/99", nil), "99")
		rec := httptest.NewRecorder()
		deleteBeerV2(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if stub.checkedID != 99 {
			t.Fatalf("expected checked delete of 99, got %d", stub.checkedID)
		}
	})

	t.Run("ok on success", func(t *testing.T) {
		stub := &stubBeerService{}
		req := withBeerID(httptest.NewRequest(http.MethodDelete, "/api/v2/beer/4", nil), "4")
		rec := httptest.NewRecorder()
		deleteBeerV2(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.checkedID != 4 {
			t.Fatalf("expected checked delete of 4, got %d", stub.checkedID)
		}
	})
}
