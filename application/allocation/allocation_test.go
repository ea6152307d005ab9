package allocation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appallocation "github.com/adityapras/wms/application/allocation"
	appledger "github.com/adityapras/wms/application/ledger"
	"github.com/adityapras/wms/constant"
	documentmocks "github.com/adityapras/wms/mocks/repository/document"
	itemmocks "github.com/adityapras/wms/mocks/repository/item"
	movementmocks "github.com/adityapras/wms/mocks/repository/movement"
	quantmocks "github.com/adityapras/wms/mocks/repository/quant"
	txmocks "github.com/adityapras/wms/mocks/repository/tx"
	"github.com/adityapras/wms/model"
	cerr "github.com/adityapras/wms/utils/errors"
)

// The allocation tests run against a real StockLedger wired to the same
// repository mocks, so the ledger's quant mutations are part of the
// expectations instead of being stubbed away.

type engineFields struct {
	txRepo       *txmocks.TxRepository
	documentRepo *documentmocks.DocumentRepository
	quantRepo    *quantmocks.QuantRepository
	itemRepo     *itemmocks.ItemRepository
	movementRepo *movementmocks.MovementRepository
}

func newEngineFields(t *testing.T) engineFields {
	return engineFields{
		txRepo:       txmocks.NewTxRepository(t),
		documentRepo: documentmocks.NewDocumentRepository(t),
		quantRepo:    quantmocks.NewQuantRepository(t),
		itemRepo:     itemmocks.NewItemRepository(t),
		movementRepo: movementmocks.NewMovementRepository(t),
	}
}

func newEngine(f engineFields) appallocation.AllocationEngine {
	stockLedger := appledger.NewStockLedger(f.txRepo, f.quantRepo, f.movementRepo, nil)
	return appallocation.NewAllocationEngine(f.txRepo, f.documentRepo, f.quantRepo, f.itemRepo, stockLedger)
}

func TestAllocationEngine_ReserveAllLines(t *testing.T) {
	type args struct {
		ctx        context.Context
		ownerID    uint64
		documentID uint64
		strategy   constant.AllocationStrategy
		actor      uint64
	}
	tests := []struct {
		name       string
		args       args
		mockCall   func(f engineFields)
		wantStatus constant.DocStatus
		check      func(t *testing.T, got *model.AllocationResult)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: one line of 60 split across two quants FIFO",
			args: args{
				ctx:        context.Background(),
				ownerID:    9,
				documentID: 1,
				strategy:   constant.StrategyFIFO,
				actor:      4,
			},
			mockCall: func(f engineFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
					ID: 1, DocNumber: "DOC-1", DocType: constant.DocTypeOutboundOrder,
					Status: constant.DocStatusDraft, WarehouseID: 3, OwnerID: 9,
				}, nil).Once()
				f.documentRepo.On("ListLinesForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.DocumentLineEntity{
					{ID: 11, DocumentID: 1, ItemID: 1, QtyRequested: 60},
				}, nil).Once()

				// Candidates come back oldest first, already locked. Earmarking
				// moves counters only; no movement rows are written here.
				f.quantRepo.On("ListCandidatesForUpdateTx", mock.Anything, tx, uint64(1), uint64(3), uint64(9), constant.StrategyFIFO).Return([]model.QuantEntity{
					{ID: 7, ItemID: 1, BinID: 2, OwnerID: 9, Qty: 40},
					{ID: 8, ItemID: 1, BinID: 5, OwnerID: 9, Qty: 30},
				}, nil).Once()

				// 40 from quant 7
				f.quantRepo.On("UpdateCountersTx", mock.Anything, tx, uint64(7), int64(40), int64(40)).Return(nil).Once()
				f.documentRepo.On("InsertReservationTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ReservationEntity) bool {
					return r.LineID == 11 && r.QuantID == 7 && r.Qty == 40
				})).Return(uint64(21), nil).Once()

				// remaining 20 from quant 8
				f.quantRepo.On("UpdateCountersTx", mock.Anything, tx, uint64(8), int64(30), int64(20)).Return(nil).Once()
				f.documentRepo.On("InsertReservationTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ReservationEntity) bool {
					return r.LineID == 11 && r.QuantID == 8 && r.Qty == 20
				})).Return(uint64(22), nil).Once()

				f.documentRepo.On("UpdateLineCountersTx", mock.Anything, tx, uint64(11), int64(60), int64(0)).Return(nil).Once()

				f.documentRepo.On("GetTotalsTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentTotals{
					QtyRequested: 60, QtyAllocated: 60, QtyPicked: 0,
				}, nil).Once()
				f.documentRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(1), constant.DocStatusFullyAllocated).Return(nil).Once()
			},
			wantStatus: constant.DocStatusFullyAllocated,
			check: func(t *testing.T, got *model.AllocationResult) {
				if len(got.AllocatedLines) != 1 || got.AllocatedLines[0] != 11 {
					t.Fatalf("AllocatedLines = %v, want [11]", got.AllocatedLines)
				}
				if len(got.PartiallyAllocatedLines) != 0 || len(got.UnallocatedLines) != 0 {
					t.Fatalf("unexpected partial/unallocated lines: %+v", got)
				}
			},
		},
		{
			name: "partial: only 30 of 50 available",
			args: args{
				ctx:        context.Background(),
				ownerID:    9,
				documentID: 1,
				strategy:   constant.StrategyFIFO,
				actor:      4,
			},
			mockCall: func(f engineFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
					ID: 1, DocNumber: "DOC-1", DocType: constant.DocTypeOutboundOrder,
					Status: constant.DocStatusDraft, WarehouseID: 3, OwnerID: 9,
				}, nil).Once()
				f.documentRepo.On("ListLinesForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.DocumentLineEntity{
					{ID: 11, DocumentID: 1, ItemID: 1, QtyRequested: 50},
				}, nil).Once()

				f.quantRepo.On("ListCandidatesForUpdateTx", mock.Anything, tx, uint64(1), uint64(3), uint64(9), constant.StrategyFIFO).Return([]model.QuantEntity{
					{ID: 7, ItemID: 1, BinID: 2, OwnerID: 9, Qty: 30},
				}, nil).Once()

				f.quantRepo.On("UpdateCountersTx", mock.Anything, tx, uint64(7), int64(30), int64(30)).Return(nil).Once()
				f.documentRepo.On("InsertReservationTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ReservationEntity) bool {
					return r.LineID == 11 && r.QuantID == 7 && r.Qty == 30
				})).Return(uint64(21), nil).Once()

				f.documentRepo.On("UpdateLineCountersTx", mock.Anything, tx, uint64(11), int64(30), int64(0)).Return(nil).Once()

				f.documentRepo.On("GetTotalsTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentTotals{
					QtyRequested: 50, QtyAllocated: 30, QtyPicked: 0,
				}, nil).Once()
				f.documentRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(1), constant.DocStatusPartiallyAllocated).Return(nil).Once()
			},
			wantStatus: constant.DocStatusPartiallyAllocated,
			check: func(t *testing.T, got *model.AllocationResult) {
				if len(got.PartiallyAllocatedLines) != 1 {
					t.Fatalf("PartiallyAllocatedLines = %v, want one entry", got.PartiallyAllocatedLines)
				}
				p := got.PartiallyAllocatedLines[0]
				if p.LineID != 11 || p.Allocated != 30 || p.Requested != 50 {
					t.Fatalf("partial line = %+v, want {11 30 50}", p)
				}
			},
		},
		{
			name: "success: FEFO drains the earliest-expiring lot first",
			args: args{
				ctx:        context.Background(),
				ownerID:    9,
				documentID: 1,
				strategy:   constant.StrategyFEFO,
				actor:      4,
			},
			mockCall: func(f engineFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
					ID: 1, DocNumber: "DOC-1", DocType: constant.DocTypeOutboundOrder,
					Status: constant.DocStatusDraft, WarehouseID: 3, OwnerID: 9,
				}, nil).Once()
				f.documentRepo.On("ListLinesForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.DocumentLineEntity{
					{ID: 11, DocumentID: 1, ItemID: 1, QtyRequested: 50},
				}, nil).Once()

				// FEFO candidates: lotted only, earliest expiry first. The
				// first lot has less than the request, so the split proves
				// the returned order is honored (30 then 20, never 40).
				lotA, lotB := uint64(31), uint64(32)
				f.quantRepo.On("ListCandidatesForUpdateTx", mock.Anything, tx, uint64(1), uint64(3), uint64(9), constant.StrategyFEFO).Return([]model.QuantEntity{
					{ID: 7, ItemID: 1, BinID: 2, OwnerID: 9, LotID: &lotA, Qty: 30},
					{ID: 8, ItemID: 1, BinID: 5, OwnerID: 9, LotID: &lotB, Qty: 40},
				}, nil).Once()

				f.quantRepo.On("UpdateCountersTx", mock.Anything, tx, uint64(7), int64(30), int64(30)).Return(nil).Once()
				f.documentRepo.On("InsertReservationTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ReservationEntity) bool {
					return r.LineID == 11 && r.QuantID == 7 && r.Qty == 30
				})).Return(uint64(21), nil).Once()

				f.quantRepo.On("UpdateCountersTx", mock.Anything, tx, uint64(8), int64(40), int64(20)).Return(nil).Once()
				f.documentRepo.On("InsertReservationTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ReservationEntity) bool {
					return r.LineID == 11 && r.QuantID == 8 && r.Qty == 20
				})).Return(uint64(22), nil).Once()

				f.documentRepo.On("UpdateLineCountersTx", mock.Anything, tx, uint64(11), int64(50), int64(0)).Return(nil).Once()

				f.documentRepo.On("GetTotalsTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentTotals{
					QtyRequested: 50, QtyAllocated: 50, QtyPicked: 0,
				}, nil).Once()
				f.documentRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(1), constant.DocStatusFullyAllocated).Return(nil).Once()
			},
			wantStatus: constant.DocStatusFullyAllocated,
			check: func(t *testing.T, got *model.AllocationResult) {
				if len(got.AllocatedLines) != 1 || got.AllocatedLines[0] != 11 {
					t.Fatalf("AllocatedLines = %v, want [11]", got.AllocatedLines)
				}
			},
		},
		{
			name: "error: document owned by another company",
			args: args{
				ctx:        context.Background(),
				ownerID:    9,
				documentID: 1,
				strategy:   constant.StrategyFIFO,
				actor:      4,
			},
			mockCall: func(f engineFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
					ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusDraft, WarehouseID: 3, OwnerID: 8,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: canceled document rejects allocation",
			args: args{
				ctx:        context.Background(),
				ownerID:    9,
				documentID: 1,
				strategy:   constant.StrategyFEFO,
				actor:      4,
			},
			mockCall: func(f engineFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
					ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusCanceled, WarehouseID: 3, OwnerID: 9,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidDocumentStatus,
		},
		{
			name: "error: unknown strategy",
			args: args{
				ctx:        context.Background(),
				ownerID:    9,
				documentID: 1,
				strategy:   constant.AllocationStrategy("LIFO"),
				actor:      4,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newEngine(f)

			got, err := app.ReserveAllLines(tt.args.ctx, tt.args.ownerID, tt.args.documentID, tt.args.strategy, tt.args.actor)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReserveAllLines() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Status != tt.wantStatus {
				t.Fatalf("ReserveAllLines() Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestAllocationEngine_PickReservation(t *testing.T) {
	type args struct {
		ctx           context.Context
		ownerID       uint64
		reservationID uint64
		qty           int64
		actor         uint64
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f engineFields)
		want     bool
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: zero qty picks full remainder and completes the document",
			args: args{
				ctx:           context.Background(),
				ownerID:       9,
				reservationID: 21,
				qty:           0,
				actor:         4,
			},
			mockCall: func(f engineFields) {
				f.documentRepo.On("GetReservation", mock.Anything, uint64(21)).Return(&model.ReservationEntity{
					ID: 21, LineID: 11, QuantID: 7, Qty: 60,
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.documentRepo.On("GetLineForUpdateTx", mock.Anything, tx, uint64(11)).Return(&model.DocumentLineEntity{
					ID: 11, DocumentID: 1, ItemID: 1, QtyRequested: 60, QtyAllocated: 60,
				}, nil).Once()
				f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
					ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusFullyAllocated, WarehouseID: 3, OwnerID: 9,
				}, nil).Once()
				f.documentRepo.On("GetReservationForUpdateTx", mock.Anything, tx, uint64(21)).Return(&model.ReservationEntity{
					ID: 21, LineID: 11, QuantID: 7, Qty: 60,
				}, nil).Once()

				// fully reserved quant is consumed and deleted
				f.quantRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.QuantEntity{
					ID: 7, ItemID: 1, BinID: 2, OwnerID: 9, Qty: 60, QtyReserved: 60,
				}, nil).Once()
				f.quantRepo.On("DeleteTx", mock.Anything, tx, uint64(7)).Return(nil).Once()
				f.quantRepo.On("WarehouseOfBinTx", mock.Anything, tx, uint64(2)).Return(uint64(3), nil).Once()
				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.MovementEntity) bool {
					return m.MovementType == constant.MovementOutbound && m.Qty == 60 && m.Reference == "pick:DOC-1"
				})).Return(uint64(100), nil).Once()

				f.documentRepo.On("DeleteReservationTx", mock.Anything, tx, uint64(21)).Return(nil).Once()
				f.documentRepo.On("UpdateLineCountersTx", mock.Anything, tx, uint64(11), int64(60), int64(60)).Return(nil).Once()

				f.documentRepo.On("GetTotalsTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentTotals{
					QtyRequested: 60, QtyAllocated: 60, QtyPicked: 60,
				}, nil).Once()
				f.documentRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(1), constant.DocStatusCompleted).Return(nil).Once()
			},
			want: true,
		},
		{
			name: "pick exceeding the remaining earmark returns false",
			args: args{
				ctx:           context.Background(),
				ownerID:       9,
				reservationID: 21,
				qty:           31,
				actor:         4,
			},
			mockCall: func(f engineFields) {
				f.documentRepo.On("GetReservation", mock.Anything, uint64(21)).Return(&model.ReservationEntity{
					ID: 21, LineID: 11, QuantID: 7, Qty: 40, QtyPicked: 10,
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.documentRepo.On("GetLineForUpdateTx", mock.Anything, tx, uint64(11)).Return(&model.DocumentLineEntity{
					ID: 11, DocumentID: 1, ItemID: 1, QtyRequested: 40, QtyAllocated: 40, QtyPicked: 10,
				}, nil).Once()
				f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
					ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusPartiallyPicked, WarehouseID: 3, OwnerID: 9,
				}, nil).Once()
				f.documentRepo.On("GetReservationForUpdateTx", mock.Anything, tx, uint64(21)).Return(&model.ReservationEntity{
					ID: 21, LineID: 11, QuantID: 7, Qty: 40, QtyPicked: 10,
				}, nil).Once()
			},
			want: false,
		},
		{
			name: "error: reservation not found",
			args: args{
				ctx:           context.Background(),
				ownerID:       9,
				reservationID: 404,
				qty:           1,
				actor:         4,
			},
			mockCall: func(f engineFields) {
				f.documentRepo.On("GetReservation", mock.Anything, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newEngine(f)

			got, err := app.PickReservation(tt.args.ctx, tt.args.ownerID, tt.args.reservationID, tt.args.qty, tt.args.actor)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PickReservation() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got != tt.want {
				t.Fatalf("PickReservation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllocationEngine_CancelDocument(t *testing.T) {
	t.Run("success: cancel releases open reservations and restores counters", func(t *testing.T) {
		f := newEngineFields(t)

		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
			ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusPartiallyPicked, WarehouseID: 3, OwnerID: 9,
		}, nil).Once()
		// 20 of 60 were already picked through an earlier reservation; one
		// open reservation of 40 remains.
		f.documentRepo.On("ListLinesForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.DocumentLineEntity{
			{ID: 11, DocumentID: 1, ItemID: 1, QtyRequested: 60, QtyAllocated: 60, QtyPicked: 20},
		}, nil).Once()
		f.documentRepo.On("ListReservationsByLineForUpdateTx", mock.Anything, tx, uint64(11)).Return([]model.ReservationEntity{
			{ID: 21, LineID: 11, QuantID: 7, Qty: 40},
		}, nil).Once()

		// unpicked earmark of 40 flows back to the quant
		f.quantRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.QuantEntity{
			ID: 7, ItemID: 1, BinID: 2, OwnerID: 9, Qty: 40, QtyReserved: 40,
		}, nil).Once()
		f.quantRepo.On("UpdateCountersTx", mock.Anything, tx, uint64(7), int64(40), int64(0)).Return(nil).Once()
		f.quantRepo.On("WarehouseOfBinTx", mock.Anything, tx, uint64(2)).Return(uint64(3), nil).Once()
		f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.MovementEntity) bool {
			return m.MovementType == constant.MovementReserved && m.Qty == 40 && m.Reference == "unreserve:DOC-1"
		})).Return(uint64(100), nil).Once()

		f.documentRepo.On("DeleteReservationTx", mock.Anything, tx, uint64(21)).Return(nil).Once()
		f.documentRepo.On("UpdateLineCountersTx", mock.Anything, tx, uint64(11), int64(20), int64(20)).Return(nil).Once()

		f.documentRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(1), constant.DocStatusCanceled).Return(nil).Once()

		app := newEngine(f)
		if err := app.CancelDocument(context.Background(), 9, 1, 4); err != nil {
			t.Fatalf("CancelDocument() error = %v", err)
		}
	})

	t.Run("error: other tenant's document is not found", func(t *testing.T) {
		f := newEngineFields(t)

		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
			ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusDraft, WarehouseID: 3, OwnerID: 8,
		}, nil).Once()

		app := newEngine(f)
		err := app.CancelDocument(context.Background(), 9, 1, 4)
		if !cerr.Is(err, constant.ErrNotFound) {
			t.Fatalf("CancelDocument() error = %v, want not found", err)
		}
	})
}

func TestAllocationEngine_AddLine(t *testing.T) {
	t.Run("success: append line to draft document", func(t *testing.T) {
		f := newEngineFields(t)

		f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ItemEntity{ID: 1, SKU: "SKU-1"}, nil).Once()

		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
			ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusDraft, WarehouseID: 3, OwnerID: 9,
		}, nil).Once()
		f.documentRepo.On("InsertLineTx", mock.Anything, tx, mock.MatchedBy(func(l *model.DocumentLineEntity) bool {
			return l.DocumentID == 1 && l.ItemID == 1 && l.QtyRequested == 25
		})).Return(uint64(11), nil).Once()

		app := newEngine(f)
		line, err := app.AddLine(context.Background(), 9, 1, &model.AddLineRequest{ItemID: 1, QtyRequested: 25})
		if err != nil {
			t.Fatalf("AddLine() error = %v", err)
		}
		if line.ID != 11 {
			t.Fatalf("AddLine() ID = %v, want 11", line.ID)
		}
	})

	t.Run("error: completed document rejects new lines", func(t *testing.T) {
		f := newEngineFields(t)

		f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ItemEntity{ID: 1, SKU: "SKU-1"}, nil).Once()

		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
			ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusCompleted, WarehouseID: 3, OwnerID: 9,
		}, nil).Once()

		app := newEngine(f)
		_, err := app.AddLine(context.Background(), 9, 1, &model.AddLineRequest{ItemID: 1, QtyRequested: 25})
		if !cerr.Is(err, constant.ErrInvalidDocumentStatus) {
			t.Fatalf("AddLine() error = %v, want invalid document status", err)
		}
	})

	t.Run("error: unknown item", func(t *testing.T) {
		f := newEngineFields(t)

		f.itemRepo.On("GetByID", mock.Anything, uint64(404)).Return(nil, nil).Once()

		app := newEngine(f)
		_, err := app.AddLine(context.Background(), 9, 1, &model.AddLineRequest{ItemID: 404, QtyRequested: 1})
		if !cerr.Is(err, constant.ErrNotFound) {
			t.Fatalf("AddLine() error = %v, want not found", err)
		}
	})
}

func TestAllocationEngine_CreateDocument(t *testing.T) {
	t.Run("success: generated doc number and draft status", func(t *testing.T) {
		f := newEngineFields(t)

		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.documentRepo.On("InsertDocumentTx", mock.Anything, tx, mock.MatchedBy(func(d *model.DocumentEntity) bool {
			return d.DocNumber != "" && d.Status == constant.DocStatusDraft && d.OwnerID == 9 && d.CreatedBy == 4
		})).Return(uint64(1), nil).Once()

		app := newEngine(f)
		doc, err := app.CreateDocument(context.Background(), 9, 4, &model.CreateDocumentRequest{
			DocType: constant.DocTypeOutboundOrder, WarehouseID: 3,
		})
		if err != nil {
			t.Fatalf("CreateDocument() error = %v", err)
		}
		if doc.ID != 1 || doc.Status != constant.DocStatusDraft {
			t.Fatalf("CreateDocument() = %+v, want ID 1 in draft", doc)
		}
	})

	t.Run("error: invalid doc type", func(t *testing.T) {
		f := newEngineFields(t)

		app := newEngine(f)
		_, err := app.CreateDocument(context.Background(), 9, 4, &model.CreateDocumentRequest{
			DocType: constant.DocType(999), WarehouseID: 3,
		})
		if !cerr.Is(err, constant.ErrInvalidRequest) {
			t.Fatalf("CreateDocument() error = %v, want invalid request", err)
		}
	})
}

func TestAllocationEngine_UnreserveReservation(t *testing.T) {
	t.Run("success: partially picked reservation releases only the remainder", func(t *testing.T) {
		f := newEngineFields(t)

		f.documentRepo.On("GetReservation", mock.Anything, uint64(21)).Return(&model.ReservationEntity{
			ID: 21, LineID: 11, QuantID: 7, Qty: 40, QtyPicked: 15,
		}, nil).Once()

		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.documentRepo.On("GetLineForUpdateTx", mock.Anything, tx, uint64(11)).Return(&model.DocumentLineEntity{
			ID: 11, DocumentID: 1, ItemID: 1, QtyRequested: 40, QtyAllocated: 40, QtyPicked: 15,
		}, nil).Once()
		f.documentRepo.On("GetDocumentForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentEntity{
			ID: 1, DocNumber: "DOC-1", Status: constant.DocStatusPartiallyPicked, WarehouseID: 3, OwnerID: 9,
		}, nil).Once()
		f.documentRepo.On("GetReservationForUpdateTx", mock.Anything, tx, uint64(21)).Return(&model.ReservationEntity{
			ID: 21, LineID: 11, QuantID: 7, Qty: 40, QtyPicked: 15,
		}, nil).Once()

		// only the unpicked 25 goes back
		f.quantRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.QuantEntity{
			ID: 7, ItemID: 1, BinID: 2, OwnerID: 9, Qty: 25, QtyReserved: 25,
		}, nil).Once()
		f.quantRepo.On("UpdateCountersTx", mock.Anything, tx, uint64(7), int64(25), int64(0)).Return(nil).Once()
		f.quantRepo.On("WarehouseOfBinTx", mock.Anything, tx, uint64(2)).Return(uint64(3), nil).Once()
		f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.MovementEntity) bool {
			return m.MovementType == constant.MovementReserved && m.Qty == 25
		})).Return(uint64(100), nil).Once()

		f.documentRepo.On("DeleteReservationTx", mock.Anything, tx, uint64(21)).Return(nil).Once()
		f.documentRepo.On("UpdateLineCountersTx", mock.Anything, tx, uint64(11), int64(15), int64(15)).Return(nil).Once()

		f.documentRepo.On("GetTotalsTx", mock.Anything, tx, uint64(1)).Return(&model.DocumentTotals{
			QtyRequested: 40, QtyAllocated: 15, QtyPicked: 15,
		}, nil).Once()

		app := newEngine(f)
		if err := app.UnreserveReservation(context.Background(), 9, 21, 4); err != nil {
			t.Fatalf("UnreserveReservation() error = %v", err)
		}
	})
}
