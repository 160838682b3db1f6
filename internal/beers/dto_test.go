package beers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewtrack/brewery-backend/pkg/db/models"
	"github.com/brewtrack/brewery-backend/pkg/enums"
	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewBeerDTOEnrichmentControlsQuantity(t *testing.T) {
	record := &models.Beer{
		ID:             3,
		BeerName:       "Pinball Porter",
		BeerStyle:      enums.BeerStylePorter,
		UPC:            "0083783375213",
		Price:          decimal.RequireFromString("12.95"),
		QuantityOnHand: 12,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	plain := newBeerDTO(record, false)
	if plain.QuantityOnHand != nil {
		t.Fatalf("expected quantityOnHand omitted without enrichment, got %v", *plain.QuantityOnHand)
	}

	enriched := newBeerDTO(record, true)
	if enriched.QuantityOnHand == nil || *enriched.QuantityOnHand != 12 {
		t.Fatalf("expected quantityOnHand=12 with enrichment, got %v", enriched.QuantityOnHand)
	}
}

func TestNewBeerDTONilRecordProducesNoView(t *testing.T) {
	if dto := newBeerDTO(nil, true); dto != nil {
		t.Fatalf("expected nil DTO for nil record, got %+v", dto)
	}
}

func TestBeerDTORoundTrip(t *testing.T) {
	record := &models.Beer{
		ID:        7,
		BeerName:  "Galaxy Cat",
		BeerStyle: enums.BeerStylePaleAle,
		UPC:       "0631234300019",
		Price:     decimal.RequireFromString("11.95"),
	}

	back, err := beerFromDTO(*newBeerDTO(record, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.ID != record.ID || back.BeerName != record.BeerName || back.BeerStyle != record.BeerStyle {
		t.Fatalf("expected id/name/style to round-trip, got %+v", back)
	}
	if back.UPC != record.UPC || !back.Price.Equal(record.Price) {
		t.Fatalf("expected upc/price to round-trip, got %+v", back)
	}
}

func TestBeerFromDTORejectsMissingFields(t *testing.T) {
	cases := []struct {
		name string
		dto  BeerDTO
	}{
		{"missing name", BeerDTO{BeerStyle: "ALE", Price: decPtr("9.99")}},
		{"missing style", BeerDTO{BeerName: "X", Price: decPtr("9.99")}},
		{"missing price", BeerDTO{BeerName: "X", BeerStyle: "ALE"}},
		{"unknown style", BeerDTO{BeerName: "X", BeerStyle: "FIZZY", Price: decPtr("9.99")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := beerFromDTO(tc.dto)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation code, got %v", err)
			}
		})
	}
}
