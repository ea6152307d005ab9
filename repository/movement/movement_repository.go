package movement

import (
	"context"
	"fmt"

	"github.com/adityapras/wms/model"
	"github.com/jmoiron/sqlx"
)

// MovementRepository appends to the immutable movement audit log. There is
// deliberately no update or delete.
type MovementRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.MovementEntity) (uint64, error)
	List(ctx context.Context, filter *model.MovementFilter) ([]model.MovementEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewMovementRepository(conn *sqlx.DB) MovementRepository {
	return &SQL{conn: conn}
}

const insertMovementQuery = `INSERT INTO movement (from_quant_id, to_quant_id, item_id, qty, movement_type, warehouse_id, reference, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.MovementEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertMovementQuery,
		m.FromQuantID, m.ToQuantID, m.ItemID, m.Qty, m.MovementType, m.WarehouseID, m.Reference, m.CreatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const listMovementBase = `SELECT id, from_quant_id, to_quant_id, item_id, qty, movement_type, warehouse_id, reference, created_by, created_at
FROM movement WHERE true`

func (r *SQL) List(ctx context.Context, filter *model.MovementFilter) ([]model.MovementEntity, error) {
	query := listMovementBase
	args := make([]any, 0, 6)

	if filter.ItemID != 0 {
		query += " AND item_id = ?"
		args = append(args, filter.ItemID)
	}
	if filter.WarehouseID != 0 {
		query += " AND warehouse_id = ?"
		args = append(args, filter.WarehouseID)
	}
	if filter.From != nil {
		query += " AND created_at >= ?"
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += " AND created_at <= ?"
		args = append(args, *filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d", limit, filter.Offset)

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]model.MovementEntity, 0)
	for rows.Next() {
		var m model.MovementEntity
		if err := rows.StructScan(&m); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
