package model

import (
	"time"

	"github.com/adityapras/wms/constant"
)

// QuantEntity is the canonical inventory unit: a quantity of one item at one
// bin, of one (optional) lot and one stock category, owned by one company.
//
// Invariants enforced by the ledger: qty >= 0, 0 <= qty_reserved <= qty,
// uniqueness on (item_id, bin_id, lot_id, stock_category, owner_id). A quant
// whose qty reaches zero is deleted, never persisted at zero.
type QuantEntity struct {
	ID            uint64                 `db:"id" json:"id"`
	ItemID        uint64                 `db:"item_id" json:"item_id"`
	BinID         uint64                 `db:"bin_id" json:"bin_id"`
	LotID         *uint64                `db:"lot_id" json:"lot_id,omitempty"`
	StockCategory constant.StockCategory `db:"stock_category" json:"stock_category"`
	OwnerID       uint64                 `db:"owner_id" json:"owner_id"`
	Qty           int64                  `db:"qty" json:"qty"`
	QtyReserved   int64                  `db:"qty_reserved" json:"qty_reserved"`
	ReceivedAt    time.Time              `db:"received_at" json:"received_at"`
}

// QtyAvailable is the quantity not yet earmarked for any order line.
func (q *QuantEntity) QtyAvailable() int64 {
	avail := q.Qty - q.QtyReserved
	if avail < 0 {
		return 0
	}
	return avail
}

// QuantKey identifies a quant by its unique business key, used for
// get-or-create on receipt.
type QuantKey struct {
	ItemID        uint64
	BinID         uint64
	LotID         *uint64
	StockCategory constant.StockCategory
	OwnerID       uint64
}

// ReceiveRequest for receiving goods into a bin
type ReceiveRequest struct {
	ItemID        uint64                 `json:"item_id" validate:"required"`
	BinID         uint64                 `json:"bin_id" validate:"required"`
	LotID         *uint64                `json:"lot_id"`
	StockCategory constant.StockCategory `json:"stock_category" validate:"omitempty,stock_category"`
	Qty           int64                  `json:"qty" validate:"required,gt=0"`
	Reference     string                 `json:"reference"`
}

// InternalReceiveRequest is the ERP-driven receive payload; the owner comes
// from the message rather than an authenticated session.
type InternalReceiveRequest struct {
	OwnerID       uint64                 `json:"owner_id" validate:"required"`
	ItemID        uint64                 `json:"item_id" validate:"required"`
	BinID         uint64                 `json:"bin_id" validate:"required"`
	LotID         *uint64                `json:"lot_id"`
	StockCategory constant.StockCategory `json:"stock_category" validate:"omitempty,stock_category"`
	Qty           int64                  `json:"qty" validate:"required,gt=0"`
	ERPDocNumber  string                 `json:"erp_doc_number"`
}

// TransferRequest for moving stock between two quants of the same item
type TransferRequest struct {
	SourceQuantID uint64 `json:"source_quant_id" validate:"required"`
	TargetQuantID uint64 `json:"target_quant_id" validate:"required"`
	Qty           int64  `json:"qty" validate:"required,gt=0"`
	Reference     string `json:"reference"`
}
