package model_test

import (
	"testing"

	"github.com/adityapras/wms/constant"
	"github.com/adityapras/wms/model"
)

func TestDeriveDocumentStatus(t *testing.T) {
	tests := []struct {
		name    string
		current constant.DocStatus
		totals  model.DocumentTotals
		want    constant.DocStatus
	}{
		{
			name:    "everything picked completes the document",
			current: constant.DocStatusPartiallyPicked,
			totals:  model.DocumentTotals{QtyRequested: 60, QtyAllocated: 60, QtyPicked: 60},
			want:    constant.DocStatusCompleted,
		},
		{
			name:    "any pick on an incomplete document is partially picked",
			current: constant.DocStatusFullyAllocated,
			totals:  model.DocumentTotals{QtyRequested: 60, QtyAllocated: 60, QtyPicked: 10},
			want:    constant.DocStatusPartiallyPicked,
		},
		{
			name:    "allocation covering every line is fully allocated",
			current: constant.DocStatusDraft,
			totals:  model.DocumentTotals{QtyRequested: 60, QtyAllocated: 60},
			want:    constant.DocStatusFullyAllocated,
		},
		{
			name:    "any allocation short of the request is partial",
			current: constant.DocStatusDraft,
			totals:  model.DocumentTotals{QtyRequested: 60, QtyAllocated: 25},
			want:    constant.DocStatusPartiallyAllocated,
		},
		{
			name:    "untouched draft stays draft",
			current: constant.DocStatusDraft,
			totals:  model.DocumentTotals{QtyRequested: 60},
			want:    constant.DocStatusDraft,
		},
		{
			name:    "released allocation falls back to pending, not draft",
			current: constant.DocStatusPartiallyAllocated,
			totals:  model.DocumentTotals{QtyRequested: 60},
			want:    constant.DocStatusPending,
		},
		{
			name:    "empty document without lines stays draft",
			current: constant.DocStatusDraft,
			totals:  model.DocumentTotals{},
			want:    constant.DocStatusDraft,
		},
		{
			name:    "pick equal to request wins over allocation state",
			current: constant.DocStatusPartiallyAllocated,
			totals:  model.DocumentTotals{QtyRequested: 40, QtyAllocated: 10, QtyPicked: 40},
			want:    constant.DocStatusCompleted,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := model.DeriveDocumentStatus(tt.current, tt.totals); got != tt.want {
				t.Fatalf("DeriveDocumentStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuantEntity_QtyAvailable(t *testing.T) {
	tests := []struct {
		name  string
		quant model.QuantEntity
		want  int64
	}{
		{name: "unreserved", quant: model.QuantEntity{Qty: 10}, want: 10},
		{name: "partially reserved", quant: model.QuantEntity{Qty: 10, QtyReserved: 4}, want: 6},
		{name: "fully reserved", quant: model.QuantEntity{Qty: 10, QtyReserved: 10}, want: 0},
		{name: "over-reserved clamps to zero", quant: model.QuantEntity{Qty: 10, QtyReserved: 12}, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quant.QtyAvailable(); got != tt.want {
				t.Fatalf("QtyAvailable() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDocumentLineEntity_QtyRemaining(t *testing.T) {
	line := model.DocumentLineEntity{QtyRequested: 50, QtyPicked: 20}
	if got := line.QtyRemaining(); got != 30 {
		t.Fatalf("QtyRemaining() = %d, want 30", got)
	}
}

func TestReservationEntity_QtyRemaining(t *testing.T) {
	r := model.ReservationEntity{Qty: 40, QtyPicked: 15}
	if got := r.QtyRemaining(); got != 25 {
		t.Fatalf("QtyRemaining() = %d, want 25", got)
	}
}
