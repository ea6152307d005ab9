package quant

import (
	"context"
	"database/sql"
	"errors"

	"github.com/adityapras/wms/constant"
	"github.com/adityapras/wms/model"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// QuantRepository owns the quant table. Every mutating caller is expected to
// hold the row lock first: the ...ForUpdateTx methods acquire
// SELECT ... FOR UPDATE locks that live until the transaction commits or
// rolls back. Multi-row locks are always taken in ascending id order.
type QuantRepository interface {
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.QuantEntity, error)
	GetPairForUpdateTx(ctx context.Context, tx *sqlx.Tx, idA, idB uint64) ([]model.QuantEntity, error)
	GetOrCreateForUpdateTx(ctx context.Context, tx *sqlx.Tx, key *model.QuantKey) (*model.QuantEntity, error)
	ListCandidatesForUpdateTx(ctx context.Context, tx *sqlx.Tx, itemID, warehouseID, ownerID uint64, strategy constant.AllocationStrategy) ([]model.QuantEntity, error)
	UpdateCountersTx(ctx context.Context, tx *sqlx.Tx, id uint64, qty, qtyReserved int64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	WarehouseOfBinTx(ctx context.Context, tx *sqlx.Tx, binID uint64) (uint64, error)
	GetBin(ctx context.Context, id uint64) (*model.BinEntity, error)
	ListByItem(ctx context.Context, ownerID, itemID, warehouseID uint64) ([]model.BinStock, error)
	ListByBin(ctx context.Context, ownerID, binID uint64) ([]model.BinItemStock, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewQuantRepository(conn *sqlx.DB) QuantRepository {
	return &SQL{conn: conn}
}

const quantColumns = "id, item_id, bin_id, lot_id, stock_category, owner_id, qty, qty_reserved, received_at"

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.QuantEntity, error) {
	var q model.QuantEntity
	query := "SELECT " + quantColumns + " FROM quant WHERE id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, query, id).StructScan(&q); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

// GetPairForUpdateTx locks two quant rows in one statement, ordered by
// ascending id so that concurrent reverse transfers cannot deadlock.
func (r *SQL) GetPairForUpdateTx(ctx context.Context, tx *sqlx.Tx, idA, idB uint64) ([]model.QuantEntity, error) {
	query := "SELECT " + quantColumns + " FROM quant WHERE id IN (?, ?) ORDER BY id FOR UPDATE"
	rows, err := tx.QueryxContext(ctx, query, idA, idB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quants := make([]model.QuantEntity, 0, 2)
	for rows.Next() {
		var q model.QuantEntity
		if err := rows.StructScan(&q); err != nil {
			return nil, err
		}
		quants = append(quants, q)
	}
	return quants, rows.Err()
}

// GetOrCreateForUpdateTx locks the quant matching the unique business key,
// inserting a zero-qty row first when none exists. MySQL's null-safe equality
// (<=>) matches quants without a lot. Two first receipts may race between the
// empty SELECT and the INSERT; the loser hits the unique key and retries the
// locked SELECT, which then blocks on the winner's row lock.
func (r *SQL) GetOrCreateForUpdateTx(ctx context.Context, tx *sqlx.Tx, key *model.QuantKey) (*model.QuantEntity, error) {
	query := "SELECT " + quantColumns + ` FROM quant
		WHERE item_id = ? AND bin_id = ? AND lot_id <=> ? AND stock_category = ? AND owner_id = ? FOR UPDATE`

	lockByKey := func() (*model.QuantEntity, error) {
		var q model.QuantEntity
		err := tx.QueryRowxContext(ctx, query, key.ItemID, key.BinID, key.LotID, key.StockCategory, key.OwnerID).StructScan(&q)
		if err != nil {
			return nil, err
		}
		return &q, nil
	}

	q, err := lockByKey()
	if err == nil {
		return q, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO quant (item_id, bin_id, lot_id, stock_category, owner_id, qty, qty_reserved, received_at) VALUES (?, ?, ?, ?, ?, 0, 0, NOW())",
		key.ItemID, key.BinID, key.LotID, key.StockCategory, key.OwnerID)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return lockByKey()
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetForUpdateTx(ctx, tx, uint64(id))
}

// ListCandidatesForUpdateTx locks the full candidate set for one line
// allocation with a single ordered query. Only UNRESTRICTED stock owned by
// the document's company inside the document's warehouse qualifies.
// FIFO orders by receipt time; FEFO restricts to lotted quants and orders by
// lot expiry first.
func (r *SQL) ListCandidatesForUpdateTx(ctx context.Context, tx *sqlx.Tx, itemID, warehouseID, ownerID uint64, strategy constant.AllocationStrategy) ([]model.QuantEntity, error) {
	query := `SELECT q.id, q.item_id, q.bin_id, q.lot_id, q.stock_category, q.owner_id, q.qty, q.qty_reserved, q.received_at
		FROM quant q
		JOIN bin b ON q.bin_id = b.id`
	if strategy == constant.StrategyFEFO {
		query += ` JOIN lot l ON q.lot_id = l.id`
	}
	query += ` WHERE q.item_id = ? AND b.warehouse_id = ? AND q.owner_id = ? AND q.stock_category = ?`
	if strategy == constant.StrategyFEFO {
		query += ` ORDER BY l.expiry_date ASC, q.received_at ASC, q.id ASC FOR UPDATE`
	} else {
		query += ` ORDER BY q.received_at ASC, q.id ASC FOR UPDATE`
	}

	rows, err := tx.QueryxContext(ctx, query, itemID, warehouseID, ownerID, constant.StockCategoryUnrestricted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quants := make([]model.QuantEntity, 0)
	for rows.Next() {
		var q model.QuantEntity
		if err := rows.StructScan(&q); err != nil {
			return nil, err
		}
		quants = append(quants, q)
	}
	return quants, rows.Err()
}

func (r *SQL) UpdateCountersTx(ctx context.Context, tx *sqlx.Tx, id uint64, qty, qtyReserved int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE quant SET qty = ?, qty_reserved = ? WHERE id = ?", qty, qtyReserved, id)
	return err
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM quant WHERE id = ?", id)
	return err
}

func (r *SQL) WarehouseOfBinTx(ctx context.Context, tx *sqlx.Tx, binID uint64) (uint64, error) {
	var warehouseID uint64
	err := tx.GetContext(ctx, &warehouseID, "SELECT warehouse_id FROM bin WHERE id = ?", binID)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return warehouseID, err
}

func (r *SQL) GetBin(ctx context.Context, id uint64) (*model.BinEntity, error) {
	var bin model.BinEntity
	err := r.conn.QueryRowxContext(ctx, "SELECT id, warehouse_id, location_code, created_at FROM bin WHERE id = ?", id).StructScan(&bin)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &bin, nil
}

const listByItemQuery = `SELECT q.bin_id, b.location_code, l.lot_code, q.stock_category, q.qty, q.qty_reserved, (q.qty - q.qty_reserved) AS available
FROM quant q
JOIN bin b ON q.bin_id = b.id
LEFT JOIN lot l ON q.lot_id = l.id
WHERE q.owner_id = ? AND q.item_id = ?`

func (r *SQL) ListByItem(ctx context.Context, ownerID, itemID, warehouseID uint64) ([]model.BinStock, error) {
	query := listByItemQuery
	args := []any{ownerID, itemID}
	if warehouseID != 0 {
		query += " AND b.warehouse_id = ?"
		args = append(args, warehouseID)
	}
	query += " ORDER BY q.received_at ASC, q.id ASC"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stocks := make([]model.BinStock, 0)
	for rows.Next() {
		var s model.BinStock
		if err := rows.StructScan(&s); err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

const listByBinQuery = `SELECT i.sku, i.name, l.lot_code, q.stock_category, q.qty, q.qty_reserved, (q.qty - q.qty_reserved) AS available
FROM quant q
JOIN item i ON q.item_id = i.id
LEFT JOIN lot l ON q.lot_id = l.id
WHERE q.owner_id = ? AND q.bin_id = ?
ORDER BY i.sku ASC, q.id ASC`

func (r *SQL) ListByBin(ctx context.Context, ownerID, binID uint64) ([]model.BinItemStock, error) {
	rows, err := r.conn.QueryxContext(ctx, listByBinQuery, ownerID, binID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BinItemStock, 0)
	for rows.Next() {
		var it model.BinItemStock
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
