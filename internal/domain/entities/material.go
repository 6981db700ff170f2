package entities

import "github.com/shopspring/decimal"

// CatalogMaterial is a material catalog entry owned by the backend.
//
// AvailableStock is a live server-side quantity; callers only ever hold a snapshot of it.
// It is a decimal because some units of measure (metres, litres) allow fractional stock.
type CatalogMaterial struct {
	ID             int64
	Code           string
	Name           string
	AvailableStock decimal.Decimal
	UnitOfMeasure  string
	Active         bool
}

// CatalogQuery filters the catalog listing.
type CatalogQuery struct {
	Search     string
	OnlyActive bool
}

// MaterialAddition is the add mutation sent to the backend.
type MaterialAddition struct {
	OrderID    int64
	MaterialID int64
	Quantity   int
}
