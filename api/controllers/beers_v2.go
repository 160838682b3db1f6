package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewtrack/brewery-backend/api/responses"
	"github.com/brewtrack/brewery-backend/api/validators"
	beersvc "github.com/brewtrack/brewery-backend/internal/beers"
	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
	"github.com/brewtrack/brewery-backend/pkg/logger"
)

// Route pairs an HTTP method and pattern with its handler so the v2 surface
// can be registered as a table rather than one call per endpoint.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// BeerRoutesV2 returns the v2 catalog route table.
func BeerRoutesV2(svc beersvc.Service, logg *logger.Logger) []Route {
	return []Route{
		{http.MethodGet, "/beer/{beerId}", getBeerByIDV2(svc, logg)},
		{http.MethodGet, "/beerUpc/{upc}", getBeerByUPCV2(svc, logg)},
		{http.MethodPost, "/beer", createBeerV2(svc, logg)},
		{http.MethodPut, "/beer/{beerId}", updateBeerV2(svc, logg)},
		{http.MethodDelete, "/beer/{beerId}", deleteBeerV2(svc, logg)},
	}
}

func getBeerByIDV2(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := beerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		showInventory := validators.ParseQueryBool(r, "showInventory", false)

		beer, err := svc.GetByID(r.Context(), id, showInventory)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, beer)
	}
}

func getBeerByUPCV2(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upc := validators.SanitizeString(chi.URLParam(r, "upc"), maxFilterLen)
		if upc == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "upc is required"))
			return
		}

		beer, err := svc.GetByUPC(r.Context(), upc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, beer)
	}
}

func createBeerV2(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload beerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateBeer(r.Context(), payload.toDTO())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/v2/beer/%d", created.ID))
		w.WriteHeader(http.StatusOK)
	}
}

func updateBeerV2(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := beerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload beerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := svc.UpdateBeer(r.Context(), id, payload.toDTO()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteBeerV2 looks the beer up before deleting so a missing id surfaces as
// not found instead of silently succeeding.
func deleteBeerV2(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := beerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteBeerChecked(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
