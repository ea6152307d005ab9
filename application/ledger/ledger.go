package ledger

import (
	"context"
	"time"

	"github.com/adityapras/wms/constant"
	"github.com/adityapras/wms/model"
	movementrepo "github.com/adityapras/wms/repository/movement"
	quantrepo "github.com/adityapras/wms/repository/quant"
	txrepo "github.com/adityapras/wms/repository/tx"
	"github.com/adityapras/wms/thirdparty/rabbitmq"
	"github.com/adityapras/wms/utils/errors"
	"github.com/adityapras/wms/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// StockLedger provides the atomic quant mutation primitives. Every public
// operation runs inside one transaction and takes an exclusive row lock on
// every quant it mutates; the lock is held until commit or rollback.
//
// Insufficient availability is a business outcome, not an error: Reserve,
// Pick and Transfer report it as a false bool and leave every row untouched.
// Validation failures (qty <= 0, missing quant, item mismatch) are errors and
// roll the transaction back.
type StockLedger interface {
	Receive(ctx context.Context, key *model.QuantKey, qty int64, actor uint64, reference string) (*model.QuantEntity, error)
	Reserve(ctx context.Context, quantID uint64, qty int64, actor uint64) (bool, error)
	Pick(ctx context.Context, quantID uint64, qty int64, actor uint64) (bool, error)
	Transfer(ctx context.Context, sourceQuantID, targetQuantID uint64, qty int64, actor uint64) (bool, error)

	// Tx variants run inside a caller-owned transaction; the allocation
	// engine composes them with its own document and reservation updates.
	ReceiveTx(ctx context.Context, tx *sqlx.Tx, key *model.QuantKey, qty int64, actor uint64, reference string) (*model.QuantEntity, error)
	ReserveTx(ctx context.Context, tx *sqlx.Tx, quantID uint64, qty int64, actor uint64, reference string) (bool, error)
	PickTx(ctx context.Context, tx *sqlx.Tx, quantID uint64, qty int64, actor uint64, reference string) (bool, error)
	PickReservedTx(ctx context.Context, tx *sqlx.Tx, quantID uint64, qty int64, actor uint64, reference string) (bool, error)
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, quantID uint64, qty int64, actor uint64, reference string) error
}

type stockLedgerImpl struct {
	txRepo       txrepo.TxRepository
	quantRepo    quantrepo.QuantRepository
	movementRepo movementrepo.MovementRepository
	publisher    *rabbitmq.Publisher
}

func NewStockLedger(txRepo txrepo.TxRepository, quantRepo quantrepo.QuantRepository, movementRepo movementrepo.MovementRepository, publisher *rabbitmq.Publisher) StockLedger {
	return &stockLedgerImpl{
		txRepo:       txRepo,
		quantRepo:    quantRepo,
		movementRepo: movementRepo,
		publisher:    publisher,
	}
}

// publishMovement emits the movement to the ERP exchange. Called only after
// the transaction has committed; publish failures are logged, never returned.
func (s *stockLedgerImpl) publishMovement(msg rabbitmq.StockMovementMessage) {
	if s.publisher == nil {
		return
	}
	msg.OccurredAt = time.Now()
	if err := s.publisher.PublishStockMovement(msg); err != nil {
		logger.Error("[publishMovement] publish stock movement", zap.Error(err))
	}
}

func (s *stockLedgerImpl) Receive(ctx context.Context, key *model.QuantKey, qty int64, actor uint64, reference string) (*model.QuantEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Receive] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	quant, err := s.ReceiveTx(ctx, tx, key, qty, actor, reference)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Receive] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishMovement(rabbitmq.StockMovementMessage{
		MovementType: constant.MovementInbound,
		ItemID:       quant.ItemID,
		Qty:          qty,
		ToQuantID:    &quant.ID,
		OwnerID:      quant.OwnerID,
		Reference:    reference,
	})

	return quant, nil
}

func (s *stockLedgerImpl) ReceiveTx(ctx context.Context, tx *sqlx.Tx, key *model.QuantKey, qty int64, actor uint64, reference string) (*model.QuantEntity, error) {
	if qty <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	quant, err := s.quantRepo.GetOrCreateForUpdateTx(ctx, tx, key)
	if err != nil {
		logger.Error("[Receive] get or create quant", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	quant.Qty += qty
	if err := s.quantRepo.UpdateCountersTx(ctx, tx, quant.ID, quant.Qty, quant.QtyReserved); err != nil {
		logger.Error("[Receive] update quant", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if reference == "" {
		reference = "receive_goods"
	}
	if err := s.recordMovement(ctx, tx, &model.MovementEntity{
		ToQuantID:    &quant.ID,
		ItemID:       quant.ItemID,
		Qty:          qty,
		MovementType: constant.MovementInbound,
		Reference:    reference,
		CreatedBy:    actor,
	}, quant.BinID); err != nil {
		return nil, err
	}

	return quant, nil
}

func (s *stockLedgerImpl) Reserve(ctx context.Context, quantID uint64, qty int64, actor uint64) (bool, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reserve] begin tx", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	ok, err := s.ReserveTx(ctx, tx, quantID, qty, actor, "reserve_qty")
	if err != nil {
		return false, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reserve] commit tx", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if ok {
		s.publishMovement(rabbitmq.StockMovementMessage{
			MovementType: constant.MovementReserved,
			Qty:          qty,
			FromQuantID:  &quantID,
			Reference:    "reserve_qty",
		})
	}

	return ok, nil
}

// ReserveTx recomputes availability under the row lock before earmarking, so
// two concurrent reservations are serialized and can never over-reserve
// past qty.
func (s *stockLedgerImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, quantID uint64, qty int64, actor uint64, reference string) (bool, error) {
	if qty <= 0 {
		return false, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	quant, err := s.quantRepo.GetForUpdateTx(ctx, tx, quantID)
	if err != nil {
		logger.Error("[Reserve] lock quant", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if quant == nil {
		return false, errors.SetCustomError(constant.ErrNotFound)
	}

	if quant.QtyAvailable() < qty {
		return false, nil
	}

	quant.QtyReserved += qty
	if err := s.quantRepo.UpdateCountersTx(ctx, tx, quant.ID, quant.Qty, quant.QtyReserved); err != nil {
		logger.Error("[Reserve] update quant", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.recordMovement(ctx, tx, &model.MovementEntity{
		FromQuantID:  &quant.ID,
		ToQuantID:    &quant.ID,
		ItemID:       quant.ItemID,
		Qty:          qty,
		MovementType: constant.MovementReserved,
		Reference:    reference,
		CreatedBy:    actor,
	}, quant.BinID); err != nil {
		return false, err
	}

	return true, nil
}

func (s *stockLedgerImpl) Pick(ctx context.Context, quantID uint64, qty int64, actor uint64) (bool, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Pick] begin tx", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	ok, err := s.PickTx(ctx, tx, quantID, qty, actor, "pick_qty")
	if err != nil {
		return false, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Pick] commit tx", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if ok {
		s.publishMovement(rabbitmq.StockMovementMessage{
			MovementType: constant.MovementOutbound,
			Qty:          qty,
			FromQuantID:  &quantID,
			Reference:    "pick_qty",
		})
	}

	return ok, nil
}

// PickTx is the standalone pick: the ceiling is availability, so stock
// earmarked by reservations can never be consumed past them. Deducts first
// from qty_reserved, any remainder from qty, and deletes the quant when its
// qty reaches zero.
func (s *stockLedgerImpl) PickTx(ctx context.Context, tx *sqlx.Tx, quantID uint64, qty int64, actor uint64, reference string) (bool, error) {
	if qty <= 0 {
		return false, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	quant, err := s.quantRepo.GetForUpdateTx(ctx, tx, quantID)
	if err != nil {
		logger.Error("[Pick] lock quant", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if quant == nil {
		return false, errors.SetCustomError(constant.ErrNotFound)
	}

	if quant.QtyAvailable() < qty {
		return false, nil
	}

	return s.pickLocked(ctx, tx, quant, qty, actor, reference)
}

// PickReservedTx consumes stock covered by a reservation the caller holds.
// The caller has already verified qty against the reservation's remaining
// earmark, so the ceiling is the physical quantity and exactly qty is
// released from qty_reserved.
func (s *stockLedgerImpl) PickReservedTx(ctx context.Context, tx *sqlx.Tx, quantID uint64, qty int64, actor uint64, reference string) (bool, error) {
	if qty <= 0 {
		return false, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	quant, err := s.quantRepo.GetForUpdateTx(ctx, tx, quantID)
	if err != nil {
		logger.Error("[PickReserved] lock quant", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if quant == nil {
		return false, errors.SetCustomError(constant.ErrNotFound)
	}

	if quant.Qty < qty {
		return false, nil
	}

	return s.pickLocked(ctx, tx, quant, qty, actor, reference)
}

// pickLocked applies the deduction to an already locked quant: first from
// qty_reserved up to its current value, any remainder from qty.
func (s *stockLedgerImpl) pickLocked(ctx context.Context, tx *sqlx.Tx, quant *model.QuantEntity, qty int64, actor uint64, reference string) (bool, error) {
	fromReserved := qty
	if fromReserved > quant.QtyReserved {
		fromReserved = quant.QtyReserved
	}
	quant.QtyReserved -= fromReserved
	quant.Qty -= qty

	if quant.Qty == 0 {
		if err := s.quantRepo.DeleteTx(ctx, tx, quant.ID); err != nil {
			logger.Error("[Pick] delete quant", zap.Error(err))
			return false, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if err := s.quantRepo.UpdateCountersTx(ctx, tx, quant.ID, quant.Qty, quant.QtyReserved); err != nil {
			logger.Error("[Pick] update quant", zap.Error(err))
			return false, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.recordMovement(ctx, tx, &model.MovementEntity{
		FromQuantID:  &quant.ID,
		ItemID:       quant.ItemID,
		Qty:          qty,
		MovementType: constant.MovementOutbound,
		Reference:    reference,
		CreatedBy:    actor,
	}, quant.BinID); err != nil {
		return false, err
	}

	return true, nil
}

func (s *stockLedgerImpl) Transfer(ctx context.Context, sourceQuantID, targetQuantID uint64, qty int64, actor uint64) (bool, error) {
	if qty <= 0 {
		return false, errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	if sourceQuantID == targetQuantID {
		return false, errors.SetCustomError(constant.ErrInvalidOperation)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Transfer] begin tx", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Both rows are locked by a single statement in ascending id order, so a
	// concurrent reverse transfer acquires the same locks in the same order.
	quants, err := s.quantRepo.GetPairForUpdateTx(ctx, tx, sourceQuantID, targetQuantID)
	if err != nil {
		logger.Error("[Transfer] lock quants", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if len(quants) != 2 {
		return false, errors.SetCustomError(constant.ErrNotFound)
	}

	var source, target *model.QuantEntity
	for i := range quants {
		switch quants[i].ID {
		case sourceQuantID:
			source = &quants[i]
		case targetQuantID:
			target = &quants[i]
		}
	}
	if source == nil || target == nil {
		return false, errors.SetCustomError(constant.ErrNotFound)
	}

	if source.ItemID != target.ItemID {
		return false, errors.SetCustomError(constant.ErrInvalidOperation)
	}

	if source.QtyAvailable() < qty {
		return false, nil
	}

	source.Qty -= qty
	target.Qty += qty

	if source.Qty == 0 {
		if err := s.quantRepo.DeleteTx(ctx, tx, source.ID); err != nil {
			logger.Error("[Transfer] delete source quant", zap.Error(err))
			return false, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if err := s.quantRepo.UpdateCountersTx(ctx, tx, source.ID, source.Qty, source.QtyReserved); err != nil {
			logger.Error("[Transfer] update source quant", zap.Error(err))
			return false, errors.SetCustomError(constant.ErrInternal)
		}
	}
	if err := s.quantRepo.UpdateCountersTx(ctx, tx, target.ID, target.Qty, target.QtyReserved); err != nil {
		logger.Error("[Transfer] update target quant", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.recordMovement(ctx, tx, &model.MovementEntity{
		FromQuantID:  &source.ID,
		ToQuantID:    &target.ID,
		ItemID:       source.ItemID,
		Qty:          qty,
		MovementType: constant.MovementTransfer,
		Reference:    "transfer_qty",
		CreatedBy:    actor,
	}, source.BinID); err != nil {
		return false, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Transfer] commit tx", zap.Error(err))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishMovement(rabbitmq.StockMovementMessage{
		MovementType: constant.MovementTransfer,
		ItemID:       source.ItemID,
		Qty:          qty,
		FromQuantID:  &sourceQuantID,
		ToQuantID:    &targetQuantID,
		OwnerID:      source.OwnerID,
		Reference:    "transfer_qty",
	})

	return true, nil
}

// ReleaseTx returns a previously reserved (not yet picked) amount to the
// quant and records the reversal in the audit trail.
func (s *stockLedgerImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, quantID uint64, qty int64, actor uint64, reference string) error {
	if qty <= 0 {
		return errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	quant, err := s.quantRepo.GetForUpdateTx(ctx, tx, quantID)
	if err != nil {
		logger.Error("[Release] lock quant", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if quant == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	quant.QtyReserved -= qty
	if quant.QtyReserved < 0 {
		quant.QtyReserved = 0
	}
	if err := s.quantRepo.UpdateCountersTx(ctx, tx, quant.ID, quant.Qty, quant.QtyReserved); err != nil {
		logger.Error("[Release] update quant", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.recordMovement(ctx, tx, &model.MovementEntity{
		FromQuantID:  &quant.ID,
		ToQuantID:    &quant.ID,
		ItemID:       quant.ItemID,
		Qty:          qty,
		MovementType: constant.MovementReserved,
		Reference:    reference,
		CreatedBy:    actor,
	}, quant.BinID); err != nil {
		return err
	}

	return nil
}

func (s *stockLedgerImpl) recordMovement(ctx context.Context, tx *sqlx.Tx, m *model.MovementEntity, binID uint64) error {
	warehouseID, err := s.quantRepo.WarehouseOfBinTx(ctx, tx, binID)
	if err != nil {
		logger.Error("[recordMovement] resolve warehouse", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	m.WarehouseID = warehouseID

	if _, err := s.movementRepo.InsertTx(ctx, tx, m); err != nil {
		logger.Error("[recordMovement] insert movement", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
