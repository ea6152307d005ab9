package model

import (
	"time"

	"github.com/adityapras/wms/constant"
)

// DocumentEntity is an order/transfer/receipt header. Documents are never
// physically deleted; they are canceled instead.
type DocumentEntity struct {
	ID            uint64             `db:"id" json:"id"`
	DocNumber     string             `db:"doc_number" json:"doc_number"`
	DocType       constant.DocType   `db:"doc_type" json:"doc_type"`
	Status        constant.DocStatus `db:"status" json:"status"`
	WarehouseID   uint64             `db:"warehouse_id" json:"warehouse_id"`
	WarehouseToID *uint64            `db:"warehouse_to_id" json:"warehouse_to_id,omitempty"`
	OwnerID       uint64             `db:"owner_id" json:"owner_id"`
	ERPDocNumber  string             `db:"erp_doc_number" json:"erp_doc_number,omitempty"`
	CreatedBy     uint64             `db:"created_by" json:"created_by"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time         `db:"updated_at" json:"updated_at,omitempty"`
}

// DocumentLineEntity is one item plus requested quantity within a document,
// with running allocation and pick counters.
type DocumentLineEntity struct {
	ID           uint64    `db:"id" json:"id"`
	DocumentID   uint64    `db:"document_id" json:"document_id"`
	ItemID       uint64    `db:"item_id" json:"item_id"`
	QtyRequested int64     `db:"qty_requested" json:"qty_requested"`
	QtyAllocated int64     `db:"qty_allocated" json:"qty_allocated"`
	QtyPicked    int64     `db:"qty_picked" json:"qty_picked"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// QtyRemaining is the quantity still needing to be picked.
func (l *DocumentLineEntity) QtyRemaining() int64 {
	return l.QtyRequested - l.QtyPicked
}

// DocumentTotals aggregates the line counters of one document.
type DocumentTotals struct {
	QtyRequested int64 `db:"qty_requested"`
	QtyAllocated int64 `db:"qty_allocated"`
	QtyPicked    int64 `db:"qty_picked"`
}

// DeriveDocumentStatus recomputes the document status from its line totals.
// Status is a derived field: this function is invoked at the end of every
// allocation, pick and cancel transaction instead of storing independently
// settable transitions.
func DeriveDocumentStatus(current constant.DocStatus, t DocumentTotals) constant.DocStatus {
	switch {
	case t.QtyRequested > 0 && t.QtyPicked == t.QtyRequested:
		return constant.DocStatusCompleted
	case t.QtyPicked > 0:
		return constant.DocStatusPartiallyPicked
	case t.QtyRequested > 0 && t.QtyAllocated == t.QtyRequested:
		return constant.DocStatusFullyAllocated
	case t.QtyAllocated > 0:
		return constant.DocStatusPartiallyAllocated
	case current == constant.DocStatusDraft:
		return constant.DocStatusDraft
	default:
		return constant.DocStatusPending
	}
}

// CreateDocumentRequest for opening a new document in DRAFT
type CreateDocumentRequest struct {
	DocNumber     string           `json:"doc_number"`
	DocType       constant.DocType `json:"doc_type" validate:"required"`
	WarehouseID   uint64           `json:"warehouse_id" validate:"required"`
	WarehouseToID *uint64          `json:"warehouse_to_id"`
	ERPDocNumber  string           `json:"erp_doc_number"`
}

// AddLineRequest for appending a line to a document
type AddLineRequest struct {
	ItemID       uint64 `json:"item_id" validate:"required"`
	QtyRequested int64  `json:"qty_requested" validate:"required,gt=0"`
}

// ReserveDocumentRequest selects the allocation strategy for ReserveAllLines
type ReserveDocumentRequest struct {
	Strategy constant.AllocationStrategy `json:"strategy" validate:"required,allocation_strategy"`
}

// PartialLine reports a line that could only be partially covered.
type PartialLine struct {
	LineID    uint64 `json:"line_id"`
	Allocated int64  `json:"allocated"`
	Requested int64  `json:"requested"`
}

// AllocationResult partitions line outcomes after ReserveAllLines. A line
// landing in PartiallyAllocated or Unallocated is a normal business outcome,
// not an error.
type AllocationResult struct {
	AllocatedLines          []uint64           `json:"allocated_lines"`
	PartiallyAllocatedLines []PartialLine      `json:"partially_allocated_lines"`
	UnallocatedLines        []uint64           `json:"unallocated_lines"`
	Status                  constant.DocStatus `json:"status"`
}
