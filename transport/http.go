package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	allocationapp "github.com/adityapras/wms/application/allocation"
	inventoryapp "github.com/adityapras/wms/application/inventory"
	ledgerapp "github.com/adityapras/wms/application/ledger"
	userapp "github.com/adityapras/wms/application/user"
	"github.com/adityapras/wms/constant"
	"github.com/adityapras/wms/model"
	utilsContext "github.com/adityapras/wms/utils/context"
	"github.com/adityapras/wms/utils/errors"
	validatorx "github.com/adityapras/wms/utils/validator"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	Ledger       ledgerapp.StockLedger
	Allocation   allocationapp.AllocationEngine
	InventoryApp inventoryapp.InventoryApp
}

func NewTransport(UserApp userapp.UserApp, Ledger ledgerapp.StockLedger, Allocation allocationapp.AllocationEngine, InventoryApp inventoryapp.InventoryApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:      UserApp,
		Ledger:       Ledger,
		Allocation:   Allocation,
		InventoryApp: InventoryApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Catalog
	mux.HandleFunc("/items", rh.CreateItem).Methods(http.MethodPost)
	mux.HandleFunc("/lots", rh.CreateLot).Methods(http.MethodPost)

	// Ledger
	mux.HandleFunc("/stock/receive", rh.Receive).Methods(http.MethodPost)
	mux.HandleFunc("/stock/transfer", rh.Transfer).Methods(http.MethodPost)

	// Documents and allocation
	mux.HandleFunc("/documents", rh.CreateDocument).Methods(http.MethodPost)
	mux.HandleFunc("/documents/{id}/lines", rh.AddLine).Methods(http.MethodPost)
	mux.HandleFunc("/documents/{id}/reserve", rh.ReserveDocument).Methods(http.MethodPost)
	mux.HandleFunc("/documents/{id}/cancel", rh.CancelDocument).Methods(http.MethodPost)
	mux.HandleFunc("/documents/{id}/picking-list", rh.PickingList).Methods(http.MethodGet)
	mux.HandleFunc("/reservations/{id}/pick", rh.PickReservation).Methods(http.MethodPost)
	mux.HandleFunc("/reservations/{id}/unreserve", rh.UnreserveReservation).Methods(http.MethodPost)

	// Projections
	mux.HandleFunc("/inventory/items/{sku}", rh.InventoryByItem).Methods(http.MethodGet)
	mux.HandleFunc("/inventory/bins/{id}", rh.InventoryByBin).Methods(http.MethodGet)
	mux.HandleFunc("/movements", rh.Movements).Methods(http.MethodGet)

	// Internal routes (static API key, used by the ERP receipt consumer)
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/stock/receive", rh.InternalReceive).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new warehouse user under a company
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateItem handler
// @Summary Create item
// @Description Register a new SKU in the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.CreateItemRequest true "Create Item Request"
// @Success 200 {object} model.ItemEntity
// @Failure 400 {object} errors.CustomError
// @Router /items [post]
func (s *RestHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.CreateItem(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateLot handler
// @Summary Create lot
// @Description Register a production batch of an existing item
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.CreateLotRequest true "Create Lot Request"
// @Success 200 {object} model.LotEntity
// @Failure 400 {object} errors.CustomError
// @Router /lots [post]
func (s *RestHandler) CreateLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.CreateLot(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Receive handler
// @Summary Receive stock
// @Description Receive goods into a bin for the caller's company
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.ReceiveRequest true "Receive Request"
// @Success 200 {object} model.QuantEntity
// @Failure 400 {object} errors.CustomError
// @Router /stock/receive [post]
func (s *RestHandler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	category := req.StockCategory
	if category == "" {
		category = constant.StockCategoryUnrestricted
	}
	if !category.Valid() {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	quant, err := s.Ledger.Receive(ctx, &model.QuantKey{
		ItemID:        req.ItemID,
		BinID:         req.BinID,
		LotID:         req.LotID,
		StockCategory: category,
		OwnerID:       companyID,
	}, req.Qty, userID, req.Reference)
	if err != nil {
		writeError(w, err)
		return
	}

	s.InventoryApp.InvalidateItemSnapshot(ctx, companyID, req.ItemID)

	writeSuccess(w, quant)
}

// Transfer handler
// @Summary Transfer stock
// @Description Move a quantity between two quants of the same item
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.TransferRequest true "Transfer Request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.CustomError
// @Router /stock/transfer [post]
func (s *RestHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)

	ok, err := s.Ledger.Transfer(ctx, req.SourceQuantID, req.TargetQuantID, req.Qty, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"transferred": ok})
}

// CreateDocument handler
// @Summary Create document
// @Description Create a draft fulfillment document
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body model.CreateDocumentRequest true "Create Document Request"
// @Success 200 {object} model.DocumentEntity
// @Failure 400 {object} errors.CustomError
// @Router /documents [post]
func (s *RestHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	doc, err := s.Allocation.CreateDocument(ctx, companyID, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, doc)
}

// AddLine handler
// @Summary Add document line
// @Description Append an item line to a draft document
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param request body model.AddLineRequest true "Add Line Request"
// @Success 200 {object} model.DocumentLineEntity
// @Failure 400 {object} errors.CustomError
// @Router /documents/{id}/lines [post]
func (s *RestHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AddLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	line, err := s.Allocation.AddLine(ctx, companyID, documentID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, line)
}

// ReserveDocument handler
// @Summary Reserve document lines
// @Description Allocate stock against every open line of the document
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param request body model.ReserveDocumentRequest true "Reserve Request"
// @Success 200 {object} model.AllocationResult
// @Failure 400 {object} errors.CustomError
// @Router /documents/{id}/reserve [post]
func (s *RestHandler) ReserveDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ReserveDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if !req.Strategy.Valid() {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	result, err := s.Allocation.ReserveAllLines(ctx, companyID, documentID, req.Strategy, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, result)
}

// CancelDocument handler
// @Summary Cancel document
// @Description Release every open reservation and cancel the document
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.CustomError
// @Router /documents/{id}/cancel [post]
func (s *RestHandler) CancelDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.Allocation.CancelDocument(ctx, companyID, documentID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"canceled": true})
}

// PickingList handler
// @Summary Picking list
// @Description Per-reservation pick instructions for a document
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} model.PickingList
// @Failure 404 {object} errors.CustomError
// @Router /documents/{id}/picking-list [get]
func (s *RestHandler) PickingList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	list, err := s.InventoryApp.PickingList(ctx, companyID, documentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, list)
}

// PickReservation handler
// @Summary Pick reservation
// @Description Physically pick against a reservation; qty 0 picks the full remainder
// @Tags Reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body model.PickRequest true "Pick Request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.CustomError
// @Router /reservations/{id}/pick [post]
func (s *RestHandler) PickReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reservationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.PickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	picked, err := s.Allocation.PickReservation(ctx, companyID, reservationID, req.Qty, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"picked": picked})
}

// UnreserveReservation handler
// @Summary Unreserve reservation
// @Description Release the unpicked remainder of a reservation
// @Tags Reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.CustomError
// @Router /reservations/{id}/unreserve [post]
func (s *RestHandler) UnreserveReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reservationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.Allocation.UnreserveReservation(ctx, companyID, reservationID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"released": true})
}

// InventoryByItem handler
// @Summary Item inventory
// @Description Stock totals and per-bin breakdown for a SKU
// @Tags Inventory
// @Produce json
// @Param sku path string true "Item SKU"
// @Param warehouse_id query int false "Warehouse filter"
// @Success 200 {object} model.ItemInventory
// @Failure 404 {object} errors.CustomError
// @Router /inventory/items/{sku} [get]
func (s *RestHandler) InventoryByItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sku := mux.Vars(r)["sku"]
	if sku == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var warehouseID uint64
	if raw := r.URL.Query().Get("warehouse_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		warehouseID = id
	}

	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	inv, err := s.InventoryApp.InventoryByItem(ctx, companyID, sku, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, inv)
}

// InventoryByBin handler
// @Summary Bin inventory
// @Description All stock currently sitting in one bin
// @Tags Inventory
// @Produce json
// @Param id path int true "Bin ID"
// @Success 200 {object} model.BinInventory
// @Failure 404 {object} errors.CustomError
// @Router /inventory/bins/{id} [get]
func (s *RestHandler) InventoryByBin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	binID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	companyID, ok := utilsContext.GetCompanyID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	inv, err := s.InventoryApp.InventoryByBin(ctx, companyID, binID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, inv)
}

// Movements handler
// @Summary Movement audit trail
// @Description List stock movements filtered by item, warehouse and time window
// @Tags Inventory
// @Produce json
// @Param item_id query int false "Item filter"
// @Param warehouse_id query int false "Warehouse filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.MovementEntity
// @Failure 400 {object} errors.CustomError
// @Router /movements [get]
func (s *RestHandler) Movements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.MovementFilter{}
	q := r.URL.Query()
	if raw := q.Get("item_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.ItemID = id
	}
	if raw := q.Get("warehouse_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.WarehouseID = id
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.Offset = offset
	}

	movements, err := s.InventoryApp.Movements(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, movements)
}

// InternalReceive handler
// @Summary Internal receive
// @Description ERP-driven receive; authenticated by static API key
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.InternalReceiveRequest true "Internal Receive Request"
// @Success 200 {object} model.QuantEntity
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/stock/receive [post]
func (s *RestHandler) InternalReceive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.InternalReceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	category := req.StockCategory
	if category == "" {
		category = constant.StockCategoryUnrestricted
	}
	if !category.Valid() {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	quant, err := s.Ledger.Receive(ctx, &model.QuantKey{
		ItemID:        req.ItemID,
		BinID:         req.BinID,
		LotID:         req.LotID,
		StockCategory: category,
		OwnerID:       req.OwnerID,
	}, req.Qty, 0, req.ERPDocNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	s.InventoryApp.InvalidateItemSnapshot(ctx, req.OwnerID, req.ItemID)

	writeSuccess(w, quant)
}

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}
