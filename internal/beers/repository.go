package beers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brewtrack/brewery-backend/pkg/db/models"
	"github.com/brewtrack/brewery-backend/pkg/pagination"
)

// ListFilter holds the optional equality filters for catalog listings. An
// empty string means the filter is absent; both present means conjunction.
type ListFilter struct {
	BeerName  string
	BeerStyle string
}

func (f ListFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.BeerName != "" {
		tx = tx.Where("beer_name = ?", f.BeerName)
	}
	if f.BeerStyle != "" {
		tx = tx.Where("beer_style = ?", f.BeerStyle)
	}
	return tx
}

// Repository provides beer persistence over the shared GORM connection.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the requested page of beers matching the filter. Slicing is
// done here via LIMIT/OFFSET; callers receive at most page.Size rows.
func (r *Repository) List(ctx context.Context, filter ListFilter, page pagination.PageRequest) ([]models.Beer, error) {
	var rows []models.Beer
	err := filter.apply(r.db.WithContext(ctx)).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).
		Error
	return rows, err
}

// FindByID loads a beer by its identifier. Absence is reported as (nil, nil).
func (r *Repository) FindByID(ctx context.Context, id int) (*models.Beer, error) {
	var beer models.Beer
	if err := r.db.WithContext(ctx).First(&beer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &beer, nil
}

// FindByUPC loads a beer by its unique business key. Absence is (nil, nil).
func (r *Repository) FindByUPC(ctx context.Context, upc string) (*models.Beer, error) {
	var beer models.Beer
	if err := r.db.WithContext(ctx).First(&beer, "upc = ?", upc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &beer, nil
}

// Create inserts a new beer row; the store assigns the identifier.
func (r *Repository) Create(ctx context.Context, beer *models.Beer) error {
	return r.db.WithContext(ctx).Create(beer).Error
}

// Save overwrites an existing beer row.
func (r *Repository) Save(ctx context.Context, beer *models.Beer) error {
	return r.db.WithContext(ctx).Save(beer).Error
}

// DeleteByID removes a beer and reports how many rows were affected.
func (r *Repository) DeleteByID(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Beer{})
	return result.RowsAffected, result.Error
}
