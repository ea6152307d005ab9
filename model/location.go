package model

import "time"

// CompanyEntity is the tenant that owns stock. All quant and document rows
// carry an owner company id; it is the isolation unit for multi-tenancy.
type CompanyEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// WarehouseEntity represents a physical warehouse
type WarehouseEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	CompanyID uint64    `db:"company_id" json:"company_id"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BinEntity is a physical storage location inside a warehouse, unique per
// (warehouse_id, location_code)
type BinEntity struct {
	ID           uint64    `db:"id" json:"id"`
	WarehouseID  uint64    `db:"warehouse_id" json:"warehouse_id"`
	LocationCode string    `db:"location_code" json:"location_code"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
