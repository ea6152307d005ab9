package allocation

import (
	"context"
	"fmt"

	"github.com/adityapras/wms/application/ledger"
	"github.com/adityapras/wms/constant"
	"github.com/adityapras/wms/model"
	documentrepo "github.com/adityapras/wms/repository/document"
	itemrepo "github.com/adityapras/wms/repository/item"
	quantrepo "github.com/adityapras/wms/repository/quant"
	txrepo "github.com/adityapras/wms/repository/tx"
	"github.com/adityapras/wms/utils/errors"
	"github.com/adityapras/wms/utils/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// AllocationEngine drives order fulfillment: it opens documents, allocates
// their lines against quants through the stock ledger, executes picks and
// releases reservations on cancel.
//
// Lock order inside every transaction is document row, then its line rows,
// then reservation rows, then quant rows. All multi-row sets are locked by
// single ordered FOR UPDATE queries.
//
// Every read and mutation is scoped to the calling tenant: a document whose
// owner differs from ownerID is reported as not found, and candidate quants
// are filtered to the document owner's stock.
type AllocationEngine interface {
	CreateDocument(ctx context.Context, ownerID, actor uint64, req *model.CreateDocumentRequest) (*model.DocumentEntity, error)
	AddLine(ctx context.Context, ownerID, documentID uint64, req *model.AddLineRequest) (*model.DocumentLineEntity, error)
	ReserveAllLines(ctx context.Context, ownerID, documentID uint64, strategy constant.AllocationStrategy, actor uint64) (*model.AllocationResult, error)
	PickReservation(ctx context.Context, ownerID, reservationID uint64, qty int64, actor uint64) (bool, error)
	UnreserveReservation(ctx context.Context, ownerID, reservationID uint64, actor uint64) error
	CancelDocument(ctx context.Context, ownerID, documentID uint64, actor uint64) error
}

type allocationEngineImpl struct {
	txRepo       txrepo.TxRepository
	documentRepo documentrepo.DocumentRepository
	quantRepo    quantrepo.QuantRepository
	itemRepo     itemrepo.ItemRepository
	stockLedger  ledger.StockLedger
}

func NewAllocationEngine(txRepo txrepo.TxRepository, documentRepo documentrepo.DocumentRepository, quantRepo quantrepo.QuantRepository, itemRepo itemrepo.ItemRepository, stockLedger ledger.StockLedger) AllocationEngine {
	return &allocationEngineImpl{
		txRepo:       txRepo,
		documentRepo: documentRepo,
		quantRepo:    quantRepo,
		itemRepo:     itemRepo,
		stockLedger:  stockLedger,
	}
}

func (s *allocationEngineImpl) CreateDocument(ctx context.Context, ownerID, actor uint64, req *model.CreateDocumentRequest) (*model.DocumentEntity, error) {
	if !req.DocType.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	docNumber := req.DocNumber
	if docNumber == "" {
		docNumber = fmt.Sprintf("DOC-%s", uuid.New().String())
	}

	doc := &model.DocumentEntity{
		DocNumber:     docNumber,
		DocType:       req.DocType,
		Status:        constant.DocStatusDraft,
		WarehouseID:   req.WarehouseID,
		WarehouseToID: req.WarehouseToID,
		OwnerID:       ownerID,
		ERPDocNumber:  req.ERPDocNumber,
		CreatedBy:     actor,
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateDocument] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.documentRepo.InsertDocumentTx(ctx, tx, doc)
	if err != nil {
		logger.Error("[CreateDocument] insert document", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	doc.ID = id

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateDocument] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return doc, nil
}

func (s *allocationEngineImpl) AddLine(ctx context.Context, ownerID, documentID uint64, req *model.AddLineRequest) (*model.DocumentLineEntity, error) {
	if req.QtyRequested <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	item, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		logger.Error("[AddLine] get item", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddLine] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	doc, err := s.lockDocument(ctx, tx, ownerID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status.Terminal() {
		return nil, errors.SetCustomError(constant.ErrInvalidDocumentStatus)
	}

	line := &model.DocumentLineEntity{
		DocumentID:   doc.ID,
		ItemID:       req.ItemID,
		QtyRequested: req.QtyRequested,
	}
	id, err := s.documentRepo.InsertLineTx(ctx, tx, line)
	if err != nil {
		logger.Error("[AddLine] insert line", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	line.ID = id

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddLine] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return line, nil
}

func (s *allocationEngineImpl) ReserveAllLines(ctx context.Context, ownerID, documentID uint64, strategy constant.AllocationStrategy, actor uint64) (*model.AllocationResult, error) {
	if !strategy.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReserveAllLines] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	doc, err := s.lockDocument(ctx, tx, ownerID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status.Terminal() {
		return nil, errors.SetCustomError(constant.ErrInvalidDocumentStatus)
	}

	lines, err := s.documentRepo.ListLinesForUpdateTx(ctx, tx, doc.ID)
	if err != nil {
		logger.Error("[ReserveAllLines] lock lines", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := &model.AllocationResult{
		AllocatedLines:          make([]uint64, 0),
		PartiallyAllocatedLines: make([]model.PartialLine, 0),
		UnallocatedLines:        make([]uint64, 0),
	}

	// Lines are allocated independently: no cross-line fairness and no
	// global optimization. A shortfall on one line does not abort the rest.
	for i := range lines {
		line := &lines[i]
		if _, err := s.reserveLine(ctx, tx, doc, line, strategy); err != nil {
			return nil, err
		}

		switch {
		case line.QtyAllocated >= line.QtyRequested:
			result.AllocatedLines = append(result.AllocatedLines, line.ID)
		case line.QtyAllocated > 0:
			result.PartiallyAllocatedLines = append(result.PartiallyAllocatedLines, model.PartialLine{
				LineID:    line.ID,
				Allocated: line.QtyAllocated,
				Requested: line.QtyRequested,
			})
		default:
			result.UnallocatedLines = append(result.UnallocatedLines, line.ID)
		}
	}

	status, err := s.refreshStatus(ctx, tx, doc)
	if err != nil {
		return nil, err
	}
	result.Status = status

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReserveAllLines] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return result, nil
}

// reserveLine allocates one line against candidate quants. The entire
// candidate set is locked by one ordered query, then iterated in memory,
// taking min(remaining, available) from each until the requirement is
// satisfied or candidates run out. Partial allocation is a normal outcome.
//
// Earmarking only shifts qty into qty_reserved; the audit trail records the
// eventual OUTBOUND pick, so a receive-allocate-pick lifecycle leaves exactly
// one INBOUND and one OUTBOUND movement.
func (s *allocationEngineImpl) reserveLine(ctx context.Context, tx *sqlx.Tx, doc *model.DocumentEntity, line *model.DocumentLineEntity, strategy constant.AllocationStrategy) (int64, error) {
	if line.QtyRemaining() <= 0 {
		return 0, nil
	}
	remaining := line.QtyRequested - line.QtyAllocated
	if remaining <= 0 {
		return 0, nil
	}

	candidates, err := s.quantRepo.ListCandidatesForUpdateTx(ctx, tx, line.ItemID, doc.WarehouseID, doc.OwnerID, strategy)
	if err != nil {
		logger.Error("[reserveLine] lock candidates", zap.Error(err))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	var allocated int64
	for i := range candidates {
		if remaining <= 0 {
			break
		}
		quant := &candidates[i]
		available := quant.QtyAvailable()
		if available <= 0 {
			continue
		}

		toReserve := remaining
		if toReserve > available {
			toReserve = available
		}

		quant.QtyReserved += toReserve
		if err := s.quantRepo.UpdateCountersTx(ctx, tx, quant.ID, quant.Qty, quant.QtyReserved); err != nil {
			logger.Error("[reserveLine] update quant", zap.Error(err))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}

		if _, err := s.documentRepo.InsertReservationTx(ctx, tx, &model.ReservationEntity{
			LineID:  line.ID,
			QuantID: quant.ID,
			Qty:     toReserve,
		}); err != nil {
			logger.Error("[reserveLine] insert reservation", zap.Error(err))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}

		allocated += toReserve
		remaining -= toReserve
	}

	if allocated > 0 {
		line.QtyAllocated += allocated
		if err := s.documentRepo.UpdateLineCountersTx(ctx, tx, line.ID, line.QtyAllocated, line.QtyPicked); err != nil {
			logger.Error("[reserveLine] update line", zap.Error(err))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
	}
	return allocated, nil
}

func (s *allocationEngineImpl) PickReservation(ctx context.Context, ownerID, reservationID uint64, qty int64, actor uint64) (bool, error) {
	if qty < 0 {
		return false, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	// Plain read first to learn the owning line/document, then lock in
	// document-first order.
	peek, err := s.documentRepo.GetReservation(ctx, reservationID)
	if err != nil {
		logger.Error("[PickReservation] get reservation", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if peek == nil {
		return false, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PickReservation] begin tx", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	line, err := s.documentRepo.GetLineForUpdateTx(ctx, tx, peek.LineID)
	if err != nil {
		logger.Error("[PickReservation] lock line", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if line == nil {
		return false, errors.SetCustomError(constant.ErrNotFound)
	}

	doc, err := s.lockDocument(ctx, tx, ownerID, line.DocumentID)
	if err != nil {
		return false, err
	}

	reservation, err := s.documentRepo.GetReservationForUpdateTx(ctx, tx, reservationID)
	if err != nil {
		logger.Error("[PickReservation] lock reservation", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if reservation == nil {
		return false, errors.SetCustomError(constant.ErrNotFound)
	}

	if qty == 0 {
		qty = reservation.QtyRemaining()
	}
	if qty <= 0 {
		return false, errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	if qty > reservation.QtyRemaining() {
		return false, nil
	}

	ok, err := s.stockLedger.PickReservedTx(ctx, tx, reservation.QuantID, qty, actor, "pick:"+doc.DocNumber)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	reservation.QtyPicked += qty
	if reservation.QtyRemaining() == 0 {
		// Fully consumed reservations are deleted, mirroring the
		// delete-at-zero rule for quants.
		if err := s.documentRepo.DeleteReservationTx(ctx, tx, reservation.ID); err != nil {
			logger.Error("[PickReservation] delete reservation", zap.Error(err))
			return false, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if err := s.documentRepo.UpdateReservationPickedTx(ctx, tx, reservation.ID, reservation.QtyPicked); err != nil {
			logger.Error("[PickReservation] update reservation", zap.Error(err))
			return false, errors.SetCustomError(constant.ErrInternal)
		}
	}

	line.QtyPicked += qty
	if err := s.documentRepo.UpdateLineCountersTx(ctx, tx, line.ID, line.QtyAllocated, line.QtyPicked); err != nil {
		logger.Error("[PickReservation] update line", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.refreshStatus(ctx, tx, doc); err != nil {
		return false, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PickReservation] commit tx", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return true, nil
}

func (s *allocationEngineImpl) UnreserveReservation(ctx context.Context, ownerID, reservationID uint64, actor uint64) error {
	peek, err := s.documentRepo.GetReservation(ctx, reservationID)
	if err != nil {
		logger.Error("[UnreserveReservation] get reservation", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if peek == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UnreserveReservation] begin tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	line, err := s.documentRepo.GetLineForUpdateTx(ctx, tx, peek.LineID)
	if err != nil {
		logger.Error("[UnreserveReservation] lock line", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if line == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	doc, err := s.lockDocument(ctx, tx, ownerID, line.DocumentID)
	if err != nil {
		return err
	}

	reservation, err := s.documentRepo.GetReservationForUpdateTx(ctx, tx, reservationID)
	if err != nil {
		logger.Error("[UnreserveReservation] lock reservation", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if reservation == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.releaseReservation(ctx, tx, doc, line, reservation, actor); err != nil {
		return err
	}

	if _, err := s.refreshStatus(ctx, tx, doc); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UnreserveReservation] commit tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *allocationEngineImpl) CancelDocument(ctx context.Context, ownerID, documentID uint64, actor uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelDocument] begin tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	doc, err := s.lockDocument(ctx, tx, ownerID, documentID)
	if err != nil {
		return err
	}

	lines, err := s.documentRepo.ListLinesForUpdateTx(ctx, tx, doc.ID)
	if err != nil {
		logger.Error("[CancelDocument] lock lines", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}

	for i := range lines {
		line := &lines[i]
		reservations, err := s.documentRepo.ListReservationsByLineForUpdateTx(ctx, tx, line.ID)
		if err != nil {
			logger.Error("[CancelDocument] lock reservations", zap.Error(err))
			return errors.SetCustomError(constant.ErrInternal)
		}
		for j := range reservations {
			if err := s.releaseReservation(ctx, tx, doc, line, &reservations[j], actor); err != nil {
				return err
			}
		}
	}

	// Cancel overrides the derived status unconditionally, whatever the
	// counters say.
	if err := s.documentRepo.UpdateStatusTx(ctx, tx, doc.ID, constant.DocStatusCanceled); err != nil {
		logger.Error("[CancelDocument] update status", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelDocument] commit tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// releaseReservation returns the unpicked portion of one reservation to its
// quant, deletes the reservation and decrements the line's allocated counter
// by the released amount. Already picked quantities stay picked.
func (s *allocationEngineImpl) releaseReservation(ctx context.Context, tx *sqlx.Tx, doc *model.DocumentEntity, line *model.DocumentLineEntity, reservation *model.ReservationEntity, actor uint64) error {
	release := reservation.QtyRemaining()
	if release > 0 {
		if err := s.stockLedger.ReleaseTx(ctx, tx, reservation.QuantID, release, actor, "unreserve:"+doc.DocNumber); err != nil {
			return err
		}
	}

	if err := s.documentRepo.DeleteReservationTx(ctx, tx, reservation.ID); err != nil {
		logger.Error("[releaseReservation] delete reservation", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if release > 0 {
		line.QtyAllocated -= release
		if line.QtyAllocated < 0 {
			line.QtyAllocated = 0
		}
		if err := s.documentRepo.UpdateLineCountersTx(ctx, tx, line.ID, line.QtyAllocated, line.QtyPicked); err != nil {
			logger.Error("[releaseReservation] update line", zap.Error(err))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

// lockDocument locks the document row and enforces tenant scoping: a
// document owned by another company is indistinguishable from a missing one.
func (s *allocationEngineImpl) lockDocument(ctx context.Context, tx *sqlx.Tx, ownerID, documentID uint64) (*model.DocumentEntity, error) {
	doc, err := s.documentRepo.GetDocumentForUpdateTx(ctx, tx, documentID)
	if err != nil {
		logger.Error("[lockDocument] lock document", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if doc == nil || doc.OwnerID != ownerID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return doc, nil
}

// refreshStatus recomputes the derived document status from the current line
// totals and persists it.
func (s *allocationEngineImpl) refreshStatus(ctx context.Context, tx *sqlx.Tx, doc *model.DocumentEntity) (constant.DocStatus, error) {
	totals, err := s.documentRepo.GetTotalsTx(ctx, tx, doc.ID)
	if err != nil {
		logger.Error("[refreshStatus] get totals", zap.Error(err))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	status := model.DeriveDocumentStatus(doc.Status, *totals)
	if status != doc.Status {
		if err := s.documentRepo.UpdateStatusTx(ctx, tx, doc.ID, status); err != nil {
			logger.Error("[refreshStatus] update status", zap.Error(err))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
		doc.Status = status
	}
	return status, nil
}
