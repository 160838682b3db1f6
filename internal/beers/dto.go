package beers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewtrack/brewery-backend/pkg/db/models"
	"github.com/brewtrack/brewery-backend/pkg/enums"
	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
)

// BeerDTO represents the catalog payload returned to clients. QuantityOnHand
// is set only when the caller asked for inventory enrichment.
type BeerDTO struct {
	ID               int              `json:"id,omitempty"`
	BeerName         string           `json:"beerName"`
	BeerStyle        string           `json:"beerStyle"`
	UPC              string           `json:"upc"`
	Price            *decimal.Decimal `json:"price"`
	QuantityOnHand   *int             `json:"quantityOnHand,omitempty"`
	CreatedDate      time.Time        `json:"createdDate,omitempty"`
	LastModifiedDate time.Time        `json:"lastModifiedDate,omitempty"`
}

// BeerPagedList wraps a page of results with the resolved page parameters.
// TotalElements reflects the size of the returned page, not a table-wide count.
type BeerPagedList struct {
	Content       []BeerDTO `json:"content"`
	PageNumber    int       `json:"pageNumber"`
	PageSize      int       `json:"pageSize"`
	TotalElements int       `json:"totalElements"`
}

// newBeerDTO maps a persisted record to its transfer representation. A nil
// record produces no DTO; absence is never replaced with a zeroed placeholder.
func newBeerDTO(record *models.Beer, showInventory bool) *BeerDTO {
	if record == nil {
		return nil
	}
	price := record.Price
	dto := &BeerDTO{
		ID:               record.ID,
		BeerName:         record.BeerName,
		BeerStyle:        record.BeerStyle.String(),
		UPC:              record.UPC,
		Price:            &price,
		CreatedDate:      record.CreatedAt,
		LastModifiedDate: record.UpdatedAt,
	}
	if showInventory {
		qty := record.QuantityOnHand
		dto.QuantityOnHand = &qty
	}
	return dto
}

// beerFromDTO builds a record from client input. Missing name, style, or price
// are rejected rather than defaulted.
func beerFromDTO(dto BeerDTO) (*models.Beer, error) {
	if dto.BeerName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "beerName is required")
	}
	if dto.BeerStyle == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "beerStyle is required")
	}
	if dto.Price == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price is required")
	}

	style, err := enums.ParseBeerStyle(dto.BeerStyle)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid beer style")
	}

	return &models.Beer{
		ID:        dto.ID,
		BeerName:  dto.BeerName,
		BeerStyle: style,
		UPC:       dto.UPC,
		Price:     *dto.Price,
	}, nil
}
