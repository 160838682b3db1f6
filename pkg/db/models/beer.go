package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewtrack/brewery-backend/pkg/enums"
)

// Beer is the persisted catalog record. The id is store-assigned and immutable
// once set; upc is the unique business key.
type Beer struct {
	ID             int             `gorm:"column:id;primaryKey;autoIncrement"`
	BeerName       string          `gorm:"column:beer_name;not null"`
	BeerStyle      enums.BeerStyle `gorm:"column:beer_style;not null"`
	UPC            string          `gorm:"column:upc;uniqueIndex;not null"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric(9,2);not null"`
	QuantityOnHand int             `gorm:"column:quantity_on_hand;not null;default:0"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name used by the migrations.
func (Beer) TableName() string {
	return "beers"
}
