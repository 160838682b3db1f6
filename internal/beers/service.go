package beers

import (
	"context"
	"fmt"
	"strings"

	"github.com/brewtrack/brewery-backend/pkg/db"
	"github.com/brewtrack/brewery-backend/pkg/db/models"
	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
	"github.com/brewtrack/brewery-backend/pkg/logger"
	"github.com/brewtrack/brewery-backend/pkg/metrics"
	"github.com/brewtrack/brewery-backend/pkg/pagination"
)

const (
	opList     = "list"
	opGetByID  = "get_by_id"
	opGetByUPC = "get_by_upc"
)

// Service exposes the catalog operations shared by both API surfaces.
type Service interface {
	ListBeers(ctx context.Context, input ListBeersInput) (*BeerPagedList, error)
	GetByID(ctx context.Context, beerID int, showInventory bool) (*BeerDTO, error)
	GetByUPC(ctx context.Context, upc string) (*BeerDTO, error)
	CreateBeer(ctx context.Context, dto BeerDTO) (*BeerDTO, error)
	UpdateBeer(ctx context.Context, beerID int, dto BeerDTO) (*BeerDTO, error)
	DeleteBeer(ctx context.Context, beerID int) error
	DeleteBeerChecked(ctx context.Context, beerID int) error
}

// ListBeersInput carries the raw listing parameters. Nil page values mean the
// parameter was absent and the defaults apply.
type ListBeersInput struct {
	BeerName            string
	BeerStyle           string
	PageNumber          *int
	PageSize            *int
	ShowInventoryOnHand bool
}

type beerStore interface {
	List(ctx context.Context, filter ListFilter, page pagination.PageRequest) ([]models.Beer, error)
	FindByID(ctx context.Context, id int) (*models.Beer, error)
	FindByUPC(ctx context.Context, upc string) (*models.Beer, error)
	Create(ctx context.Context, beer *models.Beer) error
	Save(ctx context.Context, beer *models.Beer) error
	DeleteByID(ctx context.Context, id int) (int64, error)
}

type service struct {
	store        beerStore
	cache        RetrievalCache
	cacheMetrics *metrics.CacheMetrics
	logg         *logger.Logger
}

// NewService constructs the catalog service.
func NewService(store beerStore, cache RetrievalCache, cacheMetrics *metrics.CacheMetrics, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("beer store required")
	}
	if cache == nil {
		cache = NewNoopCache()
	}
	return &service{
		store:        store,
		cache:        cache,
		cacheMetrics: cacheMetrics,
		logg:         logg,
	}, nil
}

// ListBeers pages the catalog, combining optional name/style equality filters
// conjunctively. Empty filter strings are treated as absent. Non-enriched
// listings are served from and stored into the retrieval cache.
func (s *service) ListBeers(ctx context.Context, input ListBeersInput) (*BeerPagedList, error) {
	page := pagination.Resolve(input.PageNumber, input.PageSize)
	filter := ListFilter{
		BeerName:  strings.TrimSpace(input.BeerName),
		BeerStyle: strings.TrimSpace(input.BeerStyle),
	}

	key := listCacheKey(filter.BeerName, filter.BeerStyle, page.Number, page.Size)
	if s.cache.Bypass(input.ShowInventoryOnHand) {
		s.cacheMetrics.IncBypass(opList)
	} else {
		var cached BeerPagedList
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			return nil, err
		}
		if found {
			s.cacheMetrics.IncHit(opList)
			return &cached, nil
		}
		s.cacheMetrics.IncMiss(opList)
	}

	rows, err := s.store.List(ctx, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing beers")
	}

	content := make([]BeerDTO, 0, len(rows))
	for i := range rows {
		content = append(content, *newBeerDTO(&rows[i], input.ShowInventoryOnHand))
	}

	// TotalElements mirrors the fetched page size; no table-wide count query
	// is issued.
	result := &BeerPagedList{
		Content:       content,
		PageNumber:    page.Number,
		PageSize:      page.Size,
		TotalElements: len(content),
	}

	if !s.cache.Bypass(input.ShowInventoryOnHand) {
		if err := s.cache.Put(ctx, key, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// GetByID fetches one beer, optionally enriched with quantity on hand.
// Enriched lookups always reach the store.
func (s *service) GetByID(ctx context.Context, beerID int, showInventory bool) (*BeerDTO, error) {
	key := idCacheKey(beerID)
	if s.cache.Bypass(showInventory) {
		s.cacheMetrics.IncBypass(opGetByID)
	} else {
		var cached BeerDTO
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			return nil, err
		}
		if found {
			s.cacheMetrics.IncHit(opGetByID)
			return &cached, nil
		}
		s.cacheMetrics.IncMiss(opGetByID)
	}

	record, err := s.store.FindByID(ctx, beerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching beer")
	}
	if record == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("beer %d not found", beerID))
	}

	dto := newBeerDTO(record, showInventory)
	if !s.cache.Bypass(showInventory) {
		if err := s.cache.Put(ctx, key, dto); err != nil {
			return nil, err
		}
	}
	return dto, nil
}

// GetByUPC fetches one beer by its business key. UPC lookups never carry
// inventory, so they are always cache-eligible.
func (s *service) GetByUPC(ctx context.Context, upc string) (*BeerDTO, error) {
	key := upcCacheKey(upc)
	var cached BeerDTO
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if found {
		s.cacheMetrics.IncHit(opGetByUPC)
		return &cached, nil
	}
	s.cacheMetrics.IncMiss(opGetByUPC)

	record, err := s.store.FindByUPC(ctx, upc)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching beer by upc")
	}
	if record == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("beer with upc %s not found", upc))
	}

	dto := newBeerDTO(record, false)
	if err := s.cache.Put(ctx, key, dto); err != nil {
		return nil, err
	}
	return dto, nil
}

// CreateBeer persists a new record and returns it with the store-assigned id.
// The response is only built after the insert completed.
func (s *service) CreateBeer(ctx context.Context, dto BeerDTO) (*BeerDTO, error) {
	record, err := beerFromDTO(dto)
	if err != nil {
		return nil, err
	}
	record.ID = 0

	if err := s.store.Create(ctx, record); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "upc already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating beer")
	}

	if s.logg != nil {
		s.logg.Debug(s.logg.WithBeerID(ctx, record.ID), "beer created")
	}
	return newBeerDTO(record, false), nil
}

// UpdateBeer overwrites the mutable fields of an existing record. A missing
// identifier is reported as an explicit NotFound rather than an id-less shell.
// Stale cache entries for the id/upc/listing keys age out via TTL; writes do
// not invalidate them.
func (s *service) UpdateBeer(ctx context.Context, beerID int, dto BeerDTO) (*BeerDTO, error) {
	incoming, err := beerFromDTO(dto)
	if err != nil {
		return nil, err
	}

	record, err := s.store.FindByID(ctx, beerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching beer for update")
	}
	if record == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("beer %d not found", beerID))
	}

	record.BeerName = incoming.BeerName
	record.BeerStyle = incoming.BeerStyle
	record.Price = incoming.Price
	record.UPC = incoming.UPC

	if err := s.store.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating beer")
	}
	return newBeerDTO(record, false), nil
}

// DeleteBeer removes a beer, reporting NotFound when no row was affected.
// The delete is awaited before returning.
func (s *service) DeleteBeer(ctx context.Context, beerID int) error {
	affected, err := s.store.DeleteByID(ctx, beerID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting beer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("beer %d not found", beerID))
	}
	return nil
}

// DeleteBeerChecked verifies the record exists before deleting it.
func (s *service) DeleteBeerChecked(ctx context.Context, beerID int) error {
	record, err := s.store.FindByID(ctx, beerID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching beer for delete")
	}
	if record == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("beer %d not found", beerID))
	}
	if _, err := s.store.DeleteByID(ctx, record.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting beer")
	}
	return nil
}
