package model

import "github.com/adityapras/wms/constant"

// BinStock is one quant projected for inventory snapshots.
type BinStock struct {
	BinID        uint64                 `db:"bin_id" json:"bin_id"`
	LocationCode string                 `db:"location_code" json:"location_code"`
	LotCode      *string                `db:"lot_code" json:"lot_code,omitempty"`
	Category     constant.StockCategory `db:"stock_category" json:"category"`
	Qty          int64                  `db:"qty" json:"qty"`
	Reserved     int64                  `db:"qty_reserved" json:"reserved"`
	Available    int64                  `db:"available" json:"available"`
}

// ItemInventory is the aggregate snapshot of one item for one owner.
type ItemInventory struct {
	ItemSKU        string     `json:"item_sku"`
	TotalQty       int64      `json:"total_qty"`
	TotalReserved  int64      `json:"total_reserved"`
	TotalAvailable int64      `json:"total_available"`
	ByBin          []BinStock `json:"by_bin"`
}

// BinItemStock is one item's stock inside a single bin.
type BinItemStock struct {
	ItemSKU   string                 `db:"sku" json:"item_sku"`
	ItemName  string                 `db:"name" json:"item_name"`
	LotCode   *string                `db:"lot_code" json:"lot_code,omitempty"`
	Category  constant.StockCategory `db:"stock_category" json:"category"`
	Qty       int64                  `db:"qty" json:"qty"`
	Reserved  int64                  `db:"qty_reserved" json:"reserved"`
	Available int64                  `db:"available" json:"available"`
}

// BinInventory lists everything stored in one bin.
type BinInventory struct {
	BinID        uint64         `json:"bin_id"`
	LocationCode string         `json:"location_code"`
	Items        []BinItemStock `json:"items"`
}

// PickingListEntry is one pick instruction derived from an open reservation.
type PickingListEntry struct {
	ReservationID uint64  `db:"reservation_id" json:"reservation_id"`
	LineID        uint64  `db:"line_id" json:"line_id"`
	ItemSKU       string  `db:"sku" json:"item_sku"`
	ItemName      string  `db:"name" json:"item_name"`
	LocationCode  string  `db:"location_code" json:"location_code"`
	LotCode       *string `db:"lot_code" json:"lot_code,omitempty"`
	Qty           int64   `db:"qty" json:"qty"`
	QtyPicked     int64   `db:"qty_picked" json:"qty_picked"`
	QtyRemaining  int64   `db:"qty_remaining" json:"qty_remaining"`
}

// PickingList groups the open pick instructions of one document.
type PickingList struct {
	DocumentID uint64             `json:"document_id"`
	DocNumber  string             `json:"doc_number"`
	Entries    []PickingListEntry `json:"entries"`
}
