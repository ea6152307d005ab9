package model

import "time"

// ReservationEntity binds one document line to one quant: the amount of that
// quant earmarked for that line and how much of the earmark has been picked.
// A reservation belongs to exactly one line and one quant; a quant may carry
// many reservations. Fully picked or released reservations are deleted.
type ReservationEntity struct {
	ID        uint64    `db:"id" json:"id"`
	LineID    uint64    `db:"line_id" json:"line_id"`
	QuantID   uint64    `db:"quant_id" json:"quant_id"`
	Qty       int64     `db:"qty" json:"qty"`
	QtyPicked int64     `db:"qty_picked" json:"qty_picked"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// QtyRemaining is the unpicked portion of the earmark.
func (r *ReservationEntity) QtyRemaining() int64 {
	return r.Qty - r.QtyPicked
}

// PickRequest for executing a pick against a reservation. Qty zero means
// pick the full remaining amount.
type PickRequest struct {
	Qty       int64  `json:"qty"`
	Reference string `json:"reference"`
}
