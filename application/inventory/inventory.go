package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adityapras/wms/constant"
	"github.com/adityapras/wms/model"
	documentrepo "github.com/adityapras/wms/repository/document"
	itemrepo "github.com/adityapras/wms/repository/item"
	movementrepo "github.com/adityapras/wms/repository/movement"
	quantrepo "github.com/adityapras/wms/repository/quant"
	redisrepo "github.com/adityapras/wms/repository/redis"
	"github.com/adityapras/wms/utils/errors"
	"github.com/adityapras/wms/utils/logger"
	"go.uber.org/zap"
)

const snapshotTTL = 30 * time.Second

// InventoryApp serves read-only projections over the current quant and
// reservation state. Item snapshots are cached in redis with a short TTL;
// writers invalidate the cache after ledger mutations commit.
type InventoryApp interface {
	CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.ItemEntity, error)
	CreateLot(ctx context.Context, req *model.CreateLotRequest) (*model.LotEntity, error)
	InventoryByItem(ctx context.Context, companyID uint64, sku string, warehouseID uint64) (*model.ItemInventory, error)
	InventoryByBin(ctx context.Context, companyID, binID uint64) (*model.BinInventory, error)
	PickingList(ctx context.Context, companyID, documentID uint64) (*model.PickingList, error)
	Movements(ctx context.Context, filter *model.MovementFilter) ([]model.MovementEntity, error)
	InvalidateItemSnapshot(ctx context.Context, companyID, itemID uint64)
}

type inventoryAppImpl struct {
	quantRepo    quantrepo.QuantRepository
	itemRepo     itemrepo.ItemRepository
	documentRepo documentrepo.DocumentRepository
	movementRepo movementrepo.MovementRepository
	redisRepo    redisrepo.Repository
}

func NewInventoryApp(quantRepo quantrepo.QuantRepository, itemRepo itemrepo.ItemRepository, documentRepo documentrepo.DocumentRepository, movementRepo movementrepo.MovementRepository, redisRepo redisrepo.Repository) InventoryApp {
	return &inventoryAppImpl{
		quantRepo:    quantRepo,
		itemRepo:     itemRepo,
		documentRepo: documentRepo,
		movementRepo: movementRepo,
		redisRepo:    redisRepo,
	}
}

func snapshotKey(companyID uint64, sku string, warehouseID uint64) string {
	return fmt.Sprintf("inventory:item:%d:%s:%d", companyID, sku, warehouseID)
}

func (s *inventoryAppImpl) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.ItemEntity, error) {
	existing, err := s.itemRepo.GetBySKU(ctx, req.SKU)
	if err != nil {
		logger.Error("[CreateItem] get by sku", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidOperation)
	}

	item, err := s.itemRepo.Create(ctx, &model.ItemEntity{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		LengthMM:    req.LengthMM,
		WidthMM:     req.WidthMM,
		HeightMM:    req.HeightMM,
		WeightGrams: req.WeightGrams,
		Fragile:     req.Fragile,
		Hazardous:   req.Hazardous,
		Active:      true,
	})
	if err != nil {
		logger.Error("[CreateItem] insert item", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return item, nil
}

func (s *inventoryAppImpl) CreateLot(ctx context.Context, req *model.CreateLotRequest) (*model.LotEntity, error) {
	item, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		logger.Error("[CreateLot] get item", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	lot, err := s.itemRepo.CreateLot(ctx, &model.LotEntity{
		ItemID:          req.ItemID,
		LotCode:         req.LotCode,
		ExpiryDate:      req.ExpiryDate,
		ManufactureDate: req.ManufactureDate,
	})
	if err != nil {
		logger.Error("[CreateLot] insert lot", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return lot, nil
}

func (s *inventoryAppImpl) InventoryByItem(ctx context.Context, companyID uint64, sku string, warehouseID uint64) (*model.ItemInventory, error) {
	key := snapshotKey(companyID, sku, warehouseID)
	if cached, err := s.redisRepo.Get(ctx, key); err == nil && cached != "" {
		var inv model.ItemInventory
		if err := json.Unmarshal([]byte(cached), &inv); err == nil {
			return &inv, nil
		}
	}

	item, err := s.itemRepo.GetBySKU(ctx, sku)
	if err != nil {
		logger.Error("[InventoryByItem] get item", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	byBin, err := s.quantRepo.ListByItem(ctx, companyID, item.ID, warehouseID)
	if err != nil {
		logger.Error("[InventoryByItem] list quants", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	inv := &model.ItemInventory{
		ItemSKU: item.SKU,
		ByBin:   byBin,
	}
	for _, b := range byBin {
		inv.TotalQty += b.Qty
		inv.TotalReserved += b.Reserved
		inv.TotalAvailable += b.Available
	}

	if raw, err := json.Marshal(inv); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(raw), snapshotTTL); err != nil {
			logger.Warn("[InventoryByItem] cache set", zap.Error(err))
		}
	}

	return inv, nil
}

func (s *inventoryAppImpl) InventoryByBin(ctx context.Context, companyID, binID uint64) (*model.BinInventory, error) {
	bin, err := s.quantRepo.GetBin(ctx, binID)
	if err != nil {
		logger.Error("[InventoryByBin] get bin", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if bin == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.quantRepo.ListByBin(ctx, companyID, binID)
	if err != nil {
		logger.Error("[InventoryByBin] list quants", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.BinInventory{
		BinID:        bin.ID,
		LocationCode: bin.LocationCode,
		Items:        items,
	}, nil
}

func (s *inventoryAppImpl) PickingList(ctx context.Context, companyID, documentID uint64) (*model.PickingList, error) {
	doc, err := s.documentRepo.GetDocument(ctx, documentID)
	if err != nil {
		logger.Error("[PickingList] get document", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if doc == nil || doc.OwnerID != companyID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entries, err := s.documentRepo.GetPickingList(ctx, documentID)
	if err != nil {
		logger.Error("[PickingList] get picking list", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PickingList{
		DocumentID: doc.ID,
		DocNumber:  doc.DocNumber,
		Entries:    entries,
	}, nil
}

func (s *inventoryAppImpl) Movements(ctx context.Context, filter *model.MovementFilter) ([]model.MovementEntity, error) {
	movements, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Movements] list movements", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return movements, nil
}

// InvalidateItemSnapshot drops the cached projection after a write. Cache
// misses just rebuild from the store, so failures only get logged.
func (s *inventoryAppImpl) InvalidateItemSnapshot(ctx context.Context, companyID, itemID uint64) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil || item == nil {
		logger.Warn("[InvalidateItemSnapshot] resolve item", zap.Uint64("item_id", itemID), zap.Error(err))
		return
	}

	// Warehouse-scoped keys share the zero-warehouse key's data source; both
	// expire within snapshotTTL anyway, the aggregate key is the hot one.
	if err := s.redisRepo.Delete(ctx, snapshotKey(companyID, item.SKU, 0)); err != nil {
		logger.Warn("[InvalidateItemSnapshot] cache delete", zap.Error(err))
	}
}
