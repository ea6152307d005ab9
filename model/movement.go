package model

import (
	"time"

	"github.com/adityapras/wms/constant"
)

// MovementEntity is an immutable audit record of a single ledger event.
// Rows are only ever inserted; they are never updated or deleted.
// FromQuantID and ToQuantID may each be nil (inbound has no source,
// outbound has no destination).
type MovementEntity struct {
	ID           uint64                `db:"id" json:"id"`
	FromQuantID  *uint64               `db:"from_quant_id" json:"from_quant_id,omitempty"`
	ToQuantID    *uint64               `db:"to_quant_id" json:"to_quant_id,omitempty"`
	ItemID       uint64                `db:"item_id" json:"item_id"`
	Qty          int64                 `db:"qty" json:"qty"`
	MovementType constant.MovementType `db:"movement_type" json:"movement_type"`
	WarehouseID  uint64                `db:"warehouse_id" json:"warehouse_id"`
	Reference    string                `db:"reference" json:"reference,omitempty"`
	CreatedBy    uint64                `db:"created_by" json:"created_by"`
	CreatedAt    time.Time             `db:"created_at" json:"created_at"`
}

// MovementFilter for listing the audit trail
type MovementFilter struct {
	ItemID      uint64
	WarehouseID uint64
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}
