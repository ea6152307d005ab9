package model

import "time"

// ItemEntity represents the item table entity (one row per SKU)
type ItemEntity struct {
	ID          uint64     `db:"id" json:"id"`
	SKU         string     `db:"sku" json:"sku"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description,omitempty"`
	LengthMM    uint32     `db:"length_mm" json:"length_mm"`
	WidthMM     uint32     `db:"width_mm" json:"width_mm"`
	HeightMM    uint32     `db:"height_mm" json:"height_mm"`
	WeightGrams uint32     `db:"weight_grams" json:"weight_grams"`
	Fragile     bool       `db:"fragile" json:"fragile"`
	Hazardous   bool       `db:"hazardous" json:"hazardous"`
	Active      bool       `db:"active" json:"active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// LotEntity represents a production batch of an item, unique per
// (item_id, lot_code). ExpiryDate drives FEFO ordering.
type LotEntity struct {
	ID              uint64     `db:"id" json:"id"`
	ItemID          uint64     `db:"item_id" json:"item_id"`
	LotCode         string     `db:"lot_code" json:"lot_code"`
	ExpiryDate      *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
	ManufactureDate *time.Time `db:"manufacture_date" json:"manufacture_date,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// IsExpired reports whether the lot has expired as of now.
func (l *LotEntity) IsExpired(now time.Time) bool {
	if l.ExpiryDate == nil {
		return false
	}
	return !l.ExpiryDate.After(now)
}

// CreateItemRequest for registering a new SKU
type CreateItemRequest struct {
	SKU         string `json:"sku" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	LengthMM    uint32 `json:"length_mm"`
	WidthMM     uint32 `json:"width_mm"`
	HeightMM    uint32 `json:"height_mm"`
	WeightGrams uint32 `json:"weight_grams"`
	Fragile     bool   `json:"fragile"`
	Hazardous   bool   `json:"hazardous"`
}

// CreateLotRequest for registering a batch of an existing item
type CreateLotRequest struct {
	ItemID          uint64     `json:"item_id" validate:"required"`
	LotCode         string     `json:"lot_code" validate:"required"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	ManufactureDate *time.Time `json:"manufacture_date"`
}
