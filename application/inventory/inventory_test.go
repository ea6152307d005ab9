package inventory_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	appinventory "github.com/adityapras/wms/application/inventory"
	"github.com/adityapras/wms/constant"
	documentmocks "github.com/adityapras/wms/mocks/repository/document"
	itemmocks "github.com/adityapras/wms/mocks/repository/item"
	movementmocks "github.com/adityapras/wms/mocks/repository/movement"
	quantmocks "github.com/adityapras/wms/mocks/repository/quant"
	redismocks "github.com/adityapras/wms/mocks/repository/redis"
	"github.com/adityapras/wms/model"
	cerr "github.com/adityapras/wms/utils/errors"
)

type fields struct {
	quantRepo    *quantmocks.QuantRepository
	itemRepo     *itemmocks.ItemRepository
	documentRepo *documentmocks.DocumentRepository
	movementRepo *movementmocks.MovementRepository
	redisRepo    *redismocks.Repository
}

func newFields(t *testing.T) fields {
	return fields{
		quantRepo:    quantmocks.NewQuantRepository(t),
		itemRepo:     itemmocks.NewItemRepository(t),
		documentRepo: documentmocks.NewDocumentRepository(t),
		movementRepo: movementmocks.NewMovementRepository(t),
		redisRepo:    redismocks.NewRepository(t),
	}
}

func newApp(f fields) appinventory.InventoryApp {
	return appinventory.NewInventoryApp(f.quantRepo, f.itemRepo, f.documentRepo, f.movementRepo, f.redisRepo)
}

func TestInventoryApp_CreateItem(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateItemRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.CreateItemRequest{SKU: "SKU-1", Name: "Widget"},
			mockCall: func(f fields) {
				f.itemRepo.On("GetBySKU", mock.Anything, "SKU-1").Return(nil, nil).Once()
				f.itemRepo.On("Create", mock.Anything, mock.MatchedBy(func(i *model.ItemEntity) bool {
					return i.SKU == "SKU-1" && i.Active
				})).Return(&model.ItemEntity{ID: 1, SKU: "SKU-1", Name: "Widget", Active: true}, nil).Once()
			},
		},
		{
			name: "error: duplicate sku",
			req:  &model.CreateItemRequest{SKU: "SKU-1", Name: "Widget"},
			mockCall: func(f fields) {
				f.itemRepo.On("GetBySKU", mock.Anything, "SKU-1").Return(&model.ItemEntity{ID: 1, SKU: "SKU-1"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOperation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.CreateItem(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateItem() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.ID == 0 || !got.Active {
				t.Fatalf("CreateItem() = %+v, want active item with id", got)
			}
		})
	}
}

func TestInventoryApp_InventoryByItem(t *testing.T) {
	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newFields(t)

		cached, _ := json.Marshal(&model.ItemInventory{ItemSKU: "SKU-1", TotalQty: 35})
		f.redisRepo.On("Get", mock.Anything, "inventory:item:9:SKU-1:3").Return(string(cached), nil).Once()

		app := newApp(f)
		inv, err := app.InventoryByItem(context.Background(), 9, "SKU-1", 3)
		if err != nil {
			t.Fatalf("InventoryByItem() error = %v", err)
		}
		if inv.TotalQty != 35 {
			t.Fatalf("TotalQty = %d, want 35 from cache", inv.TotalQty)
		}
	})

	t.Run("cache miss aggregates quants and stores the snapshot", func(t *testing.T) {
		f := newFields(t)

		f.redisRepo.On("Get", mock.Anything, "inventory:item:9:SKU-1:3").Return("", nil).Once()
		f.itemRepo.On("GetBySKU", mock.Anything, "SKU-1").Return(&model.ItemEntity{ID: 1, SKU: "SKU-1"}, nil).Once()
		f.quantRepo.On("ListByItem", mock.Anything, uint64(9), uint64(1), uint64(3)).Return([]model.BinStock{
			{BinID: 2, Qty: 40, Reserved: 10, Available: 30},
			{BinID: 5, Qty: 20, Reserved: 0, Available: 20},
		}, nil).Once()
		f.redisRepo.On("SetWithTTL", mock.Anything, "inventory:item:9:SKU-1:3", mock.Anything, mock.Anything).Return(nil).Once()

		app := newApp(f)
		inv, err := app.InventoryByItem(context.Background(), 9, "SKU-1", 3)
		if err != nil {
			t.Fatalf("InventoryByItem() error = %v", err)
		}
		if inv.TotalQty != 60 || inv.TotalReserved != 10 || inv.TotalAvailable != 50 {
			t.Fatalf("totals = %d/%d/%d, want 60/10/50", inv.TotalQty, inv.TotalReserved, inv.TotalAvailable)
		}
		if len(inv.ByBin) != 2 {
			t.Fatalf("ByBin length = %d, want 2", len(inv.ByBin))
		}
	})

	t.Run("error: unknown sku", func(t *testing.T) {
		f := newFields(t)

		f.redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil).Once()
		f.itemRepo.On("GetBySKU", mock.Anything, "NOPE").Return(nil, nil).Once()

		app := newApp(f)
		_, err := app.InventoryByItem(context.Background(), 9, "NOPE", 0)
		if !cerr.Is(err, constant.ErrNotFound) {
			t.Fatalf("InventoryByItem() error = %v, want not found", err)
		}
	})
}

func TestInventoryApp_PickingList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFields(t)

		f.documentRepo.On("GetDocument", mock.Anything, uint64(1)).Return(&model.DocumentEntity{
			ID: 1, DocNumber: "DOC-1", OwnerID: 9,
		}, nil).Once()
		f.documentRepo.On("GetPickingList", mock.Anything, uint64(1)).Return([]model.PickingListEntry{
			{ReservationID: 21, LineID: 11, ItemSKU: "SKU-1", LocationCode: "A-01-02", Qty: 40, QtyPicked: 10, QtyRemaining: 30},
		}, nil).Once()

		app := newApp(f)
		list, err := app.PickingList(context.Background(), 9, 1)
		if err != nil {
			t.Fatalf("PickingList() error = %v", err)
		}
		if list.DocNumber != "DOC-1" || len(list.Entries) != 1 {
			t.Fatalf("PickingList() = %+v, want DOC-1 with one entry", list)
		}
	})

	t.Run("error: other tenant's document is not found", func(t *testing.T) {
		f := newFields(t)

		f.documentRepo.On("GetDocument", mock.Anything, uint64(1)).Return(&model.DocumentEntity{
			ID: 1, DocNumber: "DOC-1", OwnerID: 8,
		}, nil).Once()

		app := newApp(f)
		_, err := app.PickingList(context.Background(), 9, 1)
		if !cerr.Is(err, constant.ErrNotFound) {
			t.Fatalf("PickingList() error = %v, want not found", err)
		}
	})
}

func TestInventoryApp_InvalidateItemSnapshot(t *testing.T) {
	f := newFields(t)

	f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ItemEntity{ID: 1, SKU: "SKU-1"}, nil).Once()
	f.redisRepo.On("Delete", mock.Anything, "inventory:item:9:SKU-1:0").Return(nil).Once()

	app := newApp(f)
	app.InvalidateItemSnapshot(context.Background(), 9, 1)
}
