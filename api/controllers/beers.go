package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/brewtrack/brewery-backend/api/responses"
	"github.com/brewtrack/brewery-backend/api/validators"
	beersvc "github.com/brewtrack/brewery-backend/internal/beers"
	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
	"github.com/brewtrack/brewery-backend/pkg/logger"
)

const maxFilterLen = 120

// beerRequest is the write payload shared by both API versions. Identifier
// and audit fields are accepted so a previously fetched beer can be echoed
// back on update, but the stored values always win.
type beerRequest struct {
	ID               int              `json:"id,omitempty"`
	BeerName         string           `json:"beerName" validate:"required"`
	BeerStyle        string           `json:"beerStyle" validate:"required"`
	UPC              string           `json:"upc"`
	Price            *decimal.Decimal `json:"price" validate:"required"`
	QuantityOnHand   *int             `json:"quantityOnHand,omitempty"`
	CreatedDate      *string          `json:"createdDate,omitempty"`
	LastModifiedDate *string          `json:"lastModifiedDate,omitempty"`
}

func (p beerRequest) toDTO() beersvc.BeerDTO {
	return beersvc.BeerDTO{
		BeerName:  validators.SanitizeString(p.BeerName, maxFilterLen),
		BeerStyle: validators.SanitizeString(p.BeerStyle, maxFilterLen),
		UPC:       validators.SanitizeString(p.UPC, maxFilterLen),
		Price:     p.Price,
	}
}

func beerIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "beerId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "beer id must be numeric").WithDetails(map[string]any{"beerId": raw})
	}
	return id, nil
}

// ListBeers serves the paged catalog listing with optional name/style filters.
func ListBeers(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNumber, err := validators.ParseOptionalInt(r, "pageNumber")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pageSize, err := validators.ParseOptionalInt(r, "pageSize")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := beersvc.ListBeersInput{
			BeerName:            validators.SanitizeString(r.URL.Query().Get("beerName"), maxFilterLen),
			BeerStyle:           validators.SanitizeString(r.URL.Query().Get("beerStyle"), maxFilterLen),
			PageNumber:          pageNumber,
			PageSize:            pageSize,
			ShowInventoryOnHand: validators.ParseQueryBool(r, "showInventoryOnHand", false),
		}

		page, err := svc.ListBeers(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, page)
	}
}

// GetBeerByID returns a single beer, optionally enriched with inventory.
func GetBeerByID(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := beerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		showInventory := validators.ParseQueryBool(r, "showInventoryOnHand", false)

		beer, err := svc.GetByID(r.Context(), id, showInventory)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, beer)
	}
}

// GetBeerByUPC looks a beer up by its UPC code.
func GetBeerByUPC(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
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

// CreateBeer persists a new beer and points the client at it via Location.
func CreateBeer(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
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

		w.Header().Set("Location", fmt.Sprintf("/api/v1/beer/%d", created.ID))
		w.WriteHeader(http.StatusCreated)
	}
}

// UpdateBeer overwrites an existing beer's mutable fields.
func UpdateBeer(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
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

// DeleteBeer removes a beer, reporting whether a row actually existed.
func DeleteBeer(svc beersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := beerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteBeer(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
