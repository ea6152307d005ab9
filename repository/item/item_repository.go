package item

import (
	"context"
	"database/sql"

	"github.com/adityapras/wms/model"
	"github.com/jmoiron/sqlx"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.ItemEntity) (*model.ItemEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error)
	GetBySKU(ctx context.Context, sku string) (*model.ItemEntity, error)
	CreateLot(ctx context.Context, lot *model.LotEntity) (*model.LotEntity, error)
	GetLotByID(ctx context.Context, id uint64) (*model.LotEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewItemRepository(conn *sqlx.DB) ItemRepository {
	return &SQL{conn: conn}
}

const (
	insertItemQuery = `INSERT INTO item (sku, name, description, length_mm, width_mm, height_mm, weight_grams, fragile, hazardous, active, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, true, NOW())`
	getItemBase = `SELECT id, sku, name, description, length_mm, width_mm, height_mm, weight_grams, fragile, hazardous, active, created_at, updated_at FROM item`

	insertLotQuery = `INSERT INTO lot (item_id, lot_code, expiry_date, manufacture_date, created_at) VALUES (?, ?, ?, ?, NOW())`
	getLotBase     = `SELECT id, item_id, lot_code, expiry_date, manufacture_date, created_at FROM lot`
)

func (r *SQL) Create(ctx context.Context, data *model.ItemEntity) (*model.ItemEntity, error) {
	res, err := r.conn.ExecContext(ctx, insertItemQuery,
		data.SKU, data.Name, data.Description, data.LengthMM, data.WidthMM, data.HeightMM,
		data.WeightGrams, data.Fragile, data.Hazardous)
	if err != nil {
		return nil, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(lastID)
	return data, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error) {
	var entity model.ItemEntity
	if err := r.conn.QueryRowxContext(ctx, getItemBase+" WHERE id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetBySKU(ctx context.Context, sku string) (*model.ItemEntity, error) {
	var entity model.ItemEntity
	if err := r.conn.QueryRowxContext(ctx, getItemBase+" WHERE sku = ?", sku).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) CreateLot(ctx context.Context, data *model.LotEntity) (*model.LotEntity, error) {
	res, err := r.conn.ExecContext(ctx, insertLotQuery, data.ItemID, data.LotCode, data.ExpiryDate, data.ManufactureDate)
	if err != nil {
		return nil, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(lastID)
	return data, nil
}

func (r *SQL) GetLotByID(ctx context.Context, id uint64) (*model.LotEntity, error) {
	var entity model.LotEntity
	if err := r.conn.QueryRowxContext(ctx, getLotBase+" WHERE id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
