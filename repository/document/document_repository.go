package document

import (
	"context"
	"database/sql"

	"github.com/adityapras/wms/constant"
	"github.com/adityapras/wms/model"
	"github.com/jmoiron/sqlx"
)

// DocumentRepository owns documents, document lines and reservations.
// Mutation methods take the enclosing transaction; the document row is locked
// before any of its quants to keep a stable lock order across operations.
type DocumentRepository interface {
	InsertDocumentTx(ctx context.Context, tx *sqlx.Tx, doc *model.DocumentEntity) (uint64, error)
	GetDocumentForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.DocumentEntity, error)
	GetDocument(ctx context.Context, id uint64) (*model.DocumentEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.DocStatus) error

	InsertLineTx(ctx context.Context, tx *sqlx.Tx, line *model.DocumentLineEntity) (uint64, error)
	GetLineForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.DocumentLineEntity, error)
	ListLinesForUpdateTx(ctx context.Context, tx *sqlx.Tx, documentID uint64) ([]model.DocumentLineEntity, error)
	UpdateLineCountersTx(ctx context.Context, tx *sqlx.Tx, id uint64, qtyAllocated, qtyPicked int64) error
	GetTotalsTx(ctx context.Context, tx *sqlx.Tx, documentID uint64) (*model.DocumentTotals, error)

	InsertReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.ReservationEntity) (uint64, error)
	GetReservation(ctx context.Context, id uint64) (*model.ReservationEntity, error)
	GetReservationForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ReservationEntity, error)
	ListReservationsByLineForUpdateTx(ctx context.Context, tx *sqlx.Tx, lineID uint64) ([]model.ReservationEntity, error)
	UpdateReservationPickedTx(ctx context.Context, tx *sqlx.Tx, id uint64, qtyPicked int64) error
	DeleteReservationTx(ctx context.Context, tx *sqlx.Tx, id uint64) error

	GetPickingList(ctx context.Context, documentID uint64) ([]model.PickingListEntry, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewDocumentRepository(conn *sqlx.DB) DocumentRepository {
	return &SQL{conn: conn}
}

const (
	documentColumns = "id, doc_number, doc_type, status, warehouse_id, warehouse_to_id, owner_id, erp_doc_number, created_by, created_at, updated_at"
	lineColumns     = "id, document_id, item_id, qty_requested, qty_allocated, qty_picked, created_at"
	resColumns      = "id, line_id, quant_id, qty, qty_picked, created_at"
)

func (r *SQL) InsertDocumentTx(ctx context.Context, tx *sqlx.Tx, doc *model.DocumentEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO document (doc_number, doc_type, status, warehouse_id, warehouse_to_id, owner_id, erp_doc_number, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		doc.DocNumber, doc.DocType, doc.Status, doc.WarehouseID, doc.WarehouseToID, doc.OwnerID, doc.ERPDocNumber, doc.CreatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetDocumentForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.DocumentEntity, error) {
	var doc model.DocumentEntity
	query := "SELECT " + documentColumns + " FROM document WHERE id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, query, id).StructScan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *SQL) GetDocument(ctx context.Context, id uint64) (*model.DocumentEntity, error) {
	var doc model.DocumentEntity
	query := "SELECT " + documentColumns + " FROM document WHERE id = ?"
	if err := r.conn.QueryRowxContext(ctx, query, id).StructScan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.DocStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE document SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
	return err
}

func (r *SQL) InsertLineTx(ctx context.Context, tx *sqlx.Tx, line *model.DocumentLineEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO document_line (document_id, item_id, qty_requested, qty_allocated, qty_picked, created_at) VALUES (?, ?, ?, 0, 0, NOW())",
		line.DocumentID, line.ItemID, line.QtyRequested)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetLineForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.DocumentLineEntity, error) {
	var line model.DocumentLineEntity
	query := "SELECT " + lineColumns + " FROM document_line WHERE id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, query, id).StructScan(&line); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *SQL) ListLinesForUpdateTx(ctx context.Context, tx *sqlx.Tx, documentID uint64) ([]model.DocumentLineEntity, error) {
	query := "SELECT " + lineColumns + " FROM document_line WHERE document_id = ? ORDER BY id FOR UPDATE"
	rows, err := tx.QueryxContext(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]model.DocumentLineEntity, 0)
	for rows.Next() {
		var line model.DocumentLineEntity
		if err := rows.StructScan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *SQL) UpdateLineCountersTx(ctx context.Context, tx *sqlx.Tx, id uint64, qtyAllocated, qtyPicked int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE document_line SET qty_allocated = ?, qty_picked = ? WHERE id = ?", qtyAllocated, qtyPicked, id)
	return err
}

func (r *SQL) GetTotalsTx(ctx context.Context, tx *sqlx.Tx, documentID uint64) (*model.DocumentTotals, error) {
	var totals model.DocumentTotals
	query := `SELECT COALESCE(SUM(qty_requested),0) AS qty_requested, COALESCE(SUM(qty_allocated),0) AS qty_allocated, COALESCE(SUM(qty_picked),0) AS qty_picked
FROM document_line WHERE document_id = ?`
	if err := tx.QueryRowxContext(ctx, query, documentID).StructScan(&totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *SQL) InsertReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.ReservationEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx,
		"INSERT INTO reservation (line_id, quant_id, qty, qty_picked, created_at) VALUES (?, ?, ?, 0, NOW())",
		res.LineID, res.QuantID, res.Qty)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetReservation is a plain read used to discover the owning line/document
// before locks are taken in document-first order.
func (r *SQL) GetReservation(ctx context.Context, id uint64) (*model.ReservationEntity, error) {
	var res model.ReservationEntity
	query := "SELECT " + resColumns + " FROM reservation WHERE id = ?"
	if err := r.conn.QueryRowxContext(ctx, query, id).StructScan(&res); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *SQL) GetReservationForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ReservationEntity, error) {
	var res model.ReservationEntity
	query := "SELECT " + resColumns + " FROM reservation WHERE id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, query, id).StructScan(&res); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *SQL) ListReservationsByLineForUpdateTx(ctx context.Context, tx *sqlx.Tx, lineID uint64) ([]model.ReservationEntity, error) {
	query := "SELECT " + resColumns + " FROM reservation WHERE line_id = ? ORDER BY id FOR UPDATE"
	rows, err := tx.QueryxContext(ctx, query, lineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]model.ReservationEntity, 0)
	for rows.Next() {
		var res model.ReservationEntity
		if err := rows.StructScan(&res); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *SQL) UpdateReservationPickedTx(ctx context.Context, tx *sqlx.Tx, id uint64, qtyPicked int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE reservation SET qty_picked = ? WHERE id = ?", qtyPicked, id)
	return err
}

func (r *SQL) DeleteReservationTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM reservation WHERE id = ?", id)
	return err
}

const pickingListQuery = `SELECT r.id AS reservation_id, r.line_id, i.sku, i.name, b.location_code, l.lot_code, r.qty, r.qty_picked, (r.qty - r.qty_picked) AS qty_remaining
FROM reservation r
JOIN document_line dl ON r.line_id = dl.id
JOIN item i ON dl.item_id = i.id
JOIN quant q ON r.quant_id = q.id
JOIN bin b ON q.bin_id = b.id
LEFT JOIN lot l ON q.lot_id = l.id
WHERE dl.document_id = ? AND r.qty > r.qty_picked
ORDER BY b.location_code ASC, r.id ASC`

func (r *SQL) GetPickingList(ctx context.Context, documentID uint64) ([]model.PickingListEntry, error) {
	rows, err := r.conn.QueryxContext(ctx, pickingListQuery, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.PickingListEntry, 0)
	for rows.Next() {
		var e model.PickingListEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
