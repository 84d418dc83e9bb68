// Package servers holds the wire types and echo routing for api/openapi.yml.
//
// It follows the layout of oapi-codegen's echo-server output but is kept by
// hand. TestRoutesMatchDocument fails when a path or method in the document
// has no route here, or the other way round.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	SessionScopes = "session.Scopes"
)

// Defines values for ActiveOrderSource.
const (
	ActiveOrderSourceKiosk ActiveOrderSource = "kiosk"
	ActiveOrderSourceStaff ActiveOrderSource = "staff"
)

// Defines values for InventoryCategory.
const (
	InventoryCategoryCarCare InventoryCategory = "car_care"
	InventoryCategoryDrinks  InventoryCategory = "drinks"
	InventoryCategorySnacks  InventoryCategory = "snacks"
)

// Defines values for OrderLineType.
const (
	OrderLineTypeInventory OrderLineType = "inventory"
	OrderLineTypeService   OrderLineType = "service"
)

// Defines values for OrderStatus.
const (
	OrderStatusCancelled           OrderStatus = "cancelled"
	OrderStatusPaid                OrderStatus = "paid"
	OrderStatusPendingVerification OrderStatus = "pending_verification"
	OrderStatusQueued              OrderStatus = "queued"
	OrderStatusReady               OrderStatus = "ready"
	OrderStatusWorking             OrderStatus = "working"
)

// Defines values for StaffRole.
const (
	StaffRoleAdmin   StaffRole = "admin"
	StaffRoleBarista StaffRole = "barista"
	StaffRoleCashier StaffRole = "cashier"
	StaffRoleGreeter StaffRole = "greeter"
	StaffRoleWasher  StaffRole = "washer"
)

// Defines values for TokenBoardEntryStatus.
const (
	TokenBoardEntryStatusActive    TokenBoardEntryStatus = "active"
	TokenBoardEntryStatusAvailable TokenBoardEntryStatus = "available"
)

// ActiveOrder defines model for ActiveOrder.
type ActiveOrder struct {
	CreatedAt    time.Time          `json:"createdAt"`
	CustomerName string             `json:"customerName"`
	Id           openapi_types.UUID `json:"id"`
	IsVerified   bool               `json:"isVerified"`
	PlateNumber  string             `json:"plateNumber"`
	ServiceName  string             `json:"serviceName"`
	Source       ActiveOrderSource  `json:"source"`
	Status       OrderStatus        `json:"status"`
	TokenNumber  int                `json:"tokenNumber"`
	TotalAmount  Money              `json:"totalAmount"`
	VehicleType  string             `json:"vehicleType"`
}

// ActiveOrderSource defines model for ActiveOrder.Source.
type ActiveOrderSource string

// AdvanceOrder defines model for AdvanceOrder.
type AdvanceOrder struct {
	Status OrderStatus `json:"status"`
}

// CafeOrderItem defines model for CafeOrderItem.
type CafeOrderItem struct {
	InventoryItemId openapi_types.UUID `json:"inventoryItemId"`
	Quantity        int                `json:"quantity"`
}

// Catalog defines model for Catalog.
type Catalog struct {
	Inventory    []InventoryItem `json:"inventory"`
	Prices       []ServicePrice  `json:"prices"`
	Services     []Service       `json:"services"`
	VehicleTypes []VehicleType   `json:"vehicleTypes"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// DailySummary defines model for DailySummary.
type DailySummary struct {
	Commission Money              `json:"commission"`
	Date       openapi_types.Date `json:"date"`
	Expenses   Money              `json:"expenses"`

	// Net Revenue minus expenses. May be negative.
	Net        string `json:"net"`
	PaidOrders int    `json:"paidOrders"`
	Revenue    Money  `json:"revenue"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InventoryCategory defines model for InventoryCategory.
type InventoryCategory string

// InventoryItem defines model for InventoryItem.
type InventoryItem struct {
	Category InventoryCategory  `json:"category"`
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Price    Money              `json:"price"`
	StockQty int                `json:"stockQty"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Pin string `json:"pin"`
}

// Money defines model for Money.
type Money = string

// NewCafeOrder defines model for NewCafeOrder.
type NewCafeOrder struct {
	Items       []CafeOrderItem `json:"items"`
	TokenNumber int             `json:"tokenNumber"`
}

// NewExpense defines model for NewExpense.
type NewExpense struct {
	Amount      Money  `json:"amount"`
	Description string `json:"description"`
}

// NewInventoryItem defines model for NewInventoryItem.
type NewInventoryItem struct {
	Category InventoryCategory `json:"category"`
	Name     string            `json:"name"`
	Price    Money             `json:"price"`
	StockQty *int              `json:"stockQty,omitempty"`
}

// NewKioskOrder defines model for NewKioskOrder.
type NewKioskOrder struct {
	ServiceId   openapi_types.UUID `json:"serviceId"`
	TokenNumber int                `json:"tokenNumber"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	InventoryItemId openapi_types.UUID `json:"inventoryItemId"`
	Quantity        *int               `json:"quantity,omitempty"`
}

// NewService defines model for NewService.
type NewService struct {
	Description *string `json:"description,omitempty"`
	Name        string  `json:"name"`
}

// NewStaffMember defines model for NewStaffMember.
type NewStaffMember struct {
	Name string    `json:"name"`
	Pin  *string   `json:"pin,omitempty"`
	Role StaffRole `json:"role"`
}

// NewStaffOrder defines model for NewStaffOrder.
type NewStaffOrder struct {
	CustomerName  *string            `json:"customerName,omitempty"`
	PlateNumber   *string            `json:"plateNumber,omitempty"`
	Price         Money              `json:"price"`
	ServiceId     openapi_types.UUID `json:"serviceId"`
	TokenNumber   int                `json:"tokenNumber"`
	VehicleTypeId openapi_types.UUID `json:"vehicleTypeId"`
}

// NewVehicleType defines model for NewVehicleType.
type NewVehicleType struct {
	Name      string `json:"name"`
	SortOrder *int   `json:"sortOrder,omitempty"`
}

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	ClosedBy         string              `json:"closedBy"`
	CommissionAmount Money               `json:"commissionAmount"`
	CreatedAt        time.Time           `json:"createdAt"`
	CreatedBy        string              `json:"createdBy"`
	CustomerName     string              `json:"customerName"`
	Id               openapi_types.UUID  `json:"id"`
	IsVerified       bool                `json:"isVerified"`
	Items            []OrderLine         `json:"items"`
	PaidAt           *time.Time          `json:"paidAt,omitempty"`
	PlateNumber      string              `json:"plateNumber"`
	RunningTotal     Money               `json:"runningTotal"`
	ServiceId        openapi_types.UUID  `json:"serviceId"`
	ServiceName      string              `json:"serviceName"`
	Source           ActiveOrderSource   `json:"source"`
	Status           OrderStatus         `json:"status"`
	TokenNumber      int                 `json:"tokenNumber"`
	TotalAmount      Money               `json:"totalAmount"`
	VehicleType      string              `json:"vehicleType"`
	VehicleTypeId    *openapi_types.UUID `json:"vehicleTypeId,omitempty"`
	WasherName       string              `json:"washerName"`
}

// OrderLine defines model for OrderLine.
type OrderLine struct {
	CatalogId openapi_types.UUID `json:"catalogId"`
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Quantity  int                `json:"quantity"`
	Subtotal  Money              `json:"subtotal"`
	Type      OrderLineType      `json:"type"`
	UnitPrice Money              `json:"unitPrice"`
}

// OrderLineType defines model for OrderLine.Type.
type OrderLineType string

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// PayOrder defines model for PayOrder.
type PayOrder struct {
	WasherName string `json:"washerName"`
}

// PayrollReport defines model for PayrollReport.
type PayrollReport struct {
	From            time.Time       `json:"from"`
	To              time.Time       `json:"to"`
	TotalCommission Money           `json:"totalCommission"`
	TotalJobs       int             `json:"totalJobs"`
	TotalSales      Money           `json:"totalSales"`
	Washers         []WasherPayroll `json:"washers"`
}

// QueueEntry defines model for QueueEntry.
type QueueEntry struct {
	CustomerName string      `json:"customerName"`
	ServiceName  string      `json:"serviceName"`
	Status       OrderStatus `json:"status"`
	TokenNumber  int         `json:"tokenNumber"`
}

// RevenuePoint defines model for RevenuePoint.
type RevenuePoint struct {
	Date       openapi_types.Date `json:"date"`
	PaidOrders int                `json:"paidOrders"`
	Revenue    Money              `json:"revenue"`
}

// ResizeTokenPool defines model for ResizeTokenPool.
type ResizeTokenPool struct {
	Size int `json:"size"`
}

// Sale defines model for Sale.
type Sale struct {
	ClosedBy     string             `json:"closedBy"`
	CustomerName string             `json:"customerName"`
	Id           openapi_types.UUID `json:"id"`
	PaidAt       time.Time          `json:"paidAt"`
	PlateNumber  string             `json:"plateNumber"`
	ServiceName  string             `json:"serviceName"`
	TokenNumber  int                `json:"tokenNumber"`
	TotalAmount  Money              `json:"totalAmount"`
	VehicleType  string             `json:"vehicleType"`
	WasherName   string             `json:"washerName"`
}

// SalesReport defines model for SalesReport.
type SalesReport struct {
	PaidOrders int    `json:"paidOrders"`
	Revenue    Money  `json:"revenue"`
	Sales      []Sale `json:"sales"`
}

// Service defines model for Service.
type Service struct {
	Description string             `json:"description"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
}

// ServiceMixEntry defines model for ServiceMixEntry.
type ServiceMixEntry struct {
	Orders      int    `json:"orders"`
	ServiceName string `json:"serviceName"`
}

// ServicePrice defines model for ServicePrice.
type ServicePrice struct {
	Price         Money              `json:"price"`
	ServiceId     openapi_types.UUID `json:"serviceId"`
	VehicleTypeId openapi_types.UUID `json:"vehicleTypeId"`
}

// Session defines model for Session.
type Session struct {
	ExpiresAt time.Time          `json:"expiresAt"`
	Name      string             `json:"name"`
	Role      StaffRole          `json:"role"`
	StaffId   openapi_types.UUID `json:"staffId"`
	Token     string             `json:"token"`
}

// Setting defines model for Setting.
type Setting struct {
	Description string `json:"description"`
	Key         string `json:"key"`
	Value       string `json:"value"`
}

// SetStaffActive defines model for SetStaffActive.
type SetStaffActive struct {
	Active bool `json:"active"`
}

// StaffMember defines model for StaffMember.
type StaffMember struct {
	Active bool               `json:"active"`
	HasPin bool               `json:"hasPin"`
	Id     openapi_types.UUID `json:"id"`
	Name   string             `json:"name"`
	Role   StaffRole          `json:"role"`
}

// StaffRole defines model for StaffRole.
type StaffRole string

// TokenBoardEntry defines model for TokenBoardEntry.
type TokenBoardEntry struct {
	CustomerName *string               `json:"customerName,omitempty"`
	Number       int                   `json:"number"`
	OrderId      *openapi_types.UUID   `json:"orderId,omitempty"`
	OrderStatus  *OrderStatus          `json:"orderStatus,omitempty"`
	PlateNumber  *string               `json:"plateNumber,omitempty"`
	Status       TokenBoardEntryStatus `json:"status"`
}

// TokenBoardEntryStatus defines model for TokenBoardEntry.Status.
type TokenBoardEntryStatus string

// UpdateInventoryItem defines model for UpdateInventoryItem.
type UpdateInventoryItem struct {
	Category InventoryCategory `json:"category"`
	Name     string            `json:"name"`
	Price    Money             `json:"price"`
	StockQty int               `json:"stockQty"`
}

// UpdateService defines model for UpdateService.
type UpdateService struct {
	Description string `json:"description"`
	Name        string `json:"name"`
}

// UpdateSetting defines model for UpdateSetting.
type UpdateSetting struct {
	Value string `json:"value"`
}

// UpdateStaffMember defines model for UpdateStaffMember.
type UpdateStaffMember struct {
	Name string `json:"name"`

	// Pin A new PIN. Omit to keep the current one.
	Pin  *string   `json:"pin,omitempty"`
	Role StaffRole `json:"role"`
}

// VehicleType defines model for VehicleType.
type VehicleType struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	SortOrder int                `json:"sortOrder"`
}

// VerifyOrder defines model for VerifyOrder.
type VerifyOrder struct {
	VehicleTypeId openapi_types.UUID `json:"vehicleTypeId"`
}

// WasherPayroll defines model for WasherPayroll.
type WasherPayroll struct {
	Commission Money  `json:"commission"`
	Jobs       int    `json:"jobs"`
	Name       string `json:"name"`
	Sales      Money  `json:"sales"`
}

// OrderId defines model for orderId.
type OrderId = openapi_types.UUID

// ItemId defines model for itemId.
type ItemId = openapi_types.UUID

// StaffId defines model for staffId.
type StaffId = openapi_types.UUID

// ServiceId defines model for serviceId.
type ServiceId = openapi_types.UUID

// InventoryItemId defines model for inventoryItemId.
type InventoryItemId = openapi_types.UUID

// SettingKey defines model for settingKey.
type SettingKey = string

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Status *[]OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// GetDailyReportParams defines parameters for GetDailyReport.
type GetDailyReportParams struct {
	Date *openapi_types.Date `form:"date,omitempty" json:"date,omitempty"`
}

// GetPayrollReportParams defines parameters for GetPayrollReport.
type GetPayrollReportParams struct {
	From *openapi_types.Date `form:"from,omitempty" json:"from,omitempty"`
	To   *openapi_types.Date `form:"to,omitempty" json:"to,omitempty"`
}

// GetRevenueReportParams defines parameters for GetRevenueReport.
type GetRevenueReportParams struct {
	Days *int `form:"days,omitempty" json:"days,omitempty"`
}

// GetSalesReportParams defines parameters for GetSalesReport.
type GetSalesReportParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetStaffParams defines parameters for GetStaff.
type GetStaffParams struct {
	ActiveOnly *bool        `form:"activeOnly,omitempty" json:"activeOnly,omitempty"`
	Role       *[]StaffRole `form:"role,omitempty" json:"role,omitempty"`
}

// CreateSessionJSONRequestBody defines body for CreateSession for application/json ContentType.
type CreateSessionJSONRequestBody = LoginRequest

// CreateInventoryItemJSONRequestBody defines body for CreateInventoryItem for application/json ContentType.
type CreateInventoryItemJSONRequestBody = NewInventoryItem

// SetServicePriceJSONRequestBody defines body for SetServicePrice for application/json ContentType.
type SetServicePriceJSONRequestBody = ServicePrice

// CreateServiceJSONRequestBody defines body for CreateService for application/json ContentType.
type CreateServiceJSONRequestBody = NewService

// CreateVehicleTypeJSONRequestBody defines body for CreateVehicleType for application/json ContentType.
type CreateVehicleTypeJSONRequestBody = NewVehicleType

// CreateExpenseJSONRequestBody defines body for CreateExpense for application/json ContentType.
type CreateExpenseJSONRequestBody = NewExpense

// CreateKioskOrderJSONRequestBody defines body for CreateKioskOrder for application/json ContentType.
type CreateKioskOrderJSONRequestBody = NewKioskOrder

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewStaffOrder

// AdvanceOrderJSONRequestBody defines body for AdvanceOrder for application/json ContentType.
type AdvanceOrderJSONRequestBody = AdvanceOrder

// AddOrderItemJSONRequestBody defines body for AddOrderItem for application/json ContentType.
type AddOrderItemJSONRequestBody = NewOrderItem

// PayOrderJSONRequestBody defines body for PayOrder for application/json ContentType.
type PayOrderJSONRequestBody = PayOrder

// VerifyOrderJSONRequestBody defines body for VerifyOrder for application/json ContentType.
type VerifyOrderJSONRequestBody = VerifyOrder

// CreateStaffJSONRequestBody defines body for CreateStaff for application/json ContentType.
type CreateStaffJSONRequestBody = NewStaffMember

// SetStaffActiveJSONRequestBody defines body for SetStaffActive for application/json ContentType.
type SetStaffActiveJSONRequestBody = SetStaffActive

// ResizeTokenPoolJSONRequestBody defines body for ResizeTokenPool for application/json ContentType.
type ResizeTokenPoolJSONRequestBody = ResizeTokenPool

// UpdateInventoryItemJSONRequestBody defines body for UpdateInventoryItem for application/json ContentType.
type UpdateInventoryItemJSONRequestBody = UpdateInventoryItem

// UpdateServiceJSONRequestBody defines body for UpdateService for application/json ContentType.
type UpdateServiceJSONRequestBody = UpdateService

// CreateCafeOrderJSONRequestBody defines body for CreateCafeOrder for application/json ContentType.
type CreateCafeOrderJSONRequestBody = NewCafeOrder

// UpdateSettingJSONRequestBody defines body for UpdateSetting for application/json ContentType.
type UpdateSettingJSONRequestBody = UpdateSetting

// UpdateStaffJSONRequestBody defines body for UpdateStaff for application/json ContentType.
type UpdateStaffJSONRequestBody = UpdateStaffMember

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Vehicle types, services, price matrix and inventory
	// (GET /api/v1/catalog)
	GetCatalog(ctx echo.Context) error

	// (POST /api/v1/catalog/inventory)
	CreateInventoryItem(ctx echo.Context) error

	// (PUT /api/v1/catalog/inventory/{inventoryItemId})
	UpdateInventoryItem(ctx echo.Context, inventoryItemId InventoryItemId) error

	// (PUT /api/v1/catalog/prices)
	SetServicePrice(ctx echo.Context) error

	// (POST /api/v1/catalog/services)
	CreateService(ctx echo.Context) error

	// (PUT /api/v1/catalog/services/{serviceId})
	UpdateService(ctx echo.Context, serviceId ServiceId) error

	// (POST /api/v1/catalog/vehicle-types)
	CreateVehicleType(ctx echo.Context) error

	// Consumables a customer can order, in stock only
	// (GET /api/v1/cafe/menu)
	GetCafeMenu(ctx echo.Context) error
	// Customer adds cafe items to the order on their token
	// (POST /api/v1/cafe/orders)
	CreateCafeOrder(ctx echo.Context) error

	// (POST /api/v1/expenses)
	CreateExpense(ctx echo.Context) error
	// Self-service order, waits for staff verification
	// (POST /api/v1/kiosk/orders)
	CreateKioskOrder(ctx echo.Context) error

	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error

	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/advance)
	AdvanceOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/items)
	AddOrderItem(ctx echo.Context, orderId OrderId) error

	// (DELETE /api/v1/orders/{orderId}/items/{itemId})
	RemoveOrderItem(ctx echo.Context, orderId OrderId, itemId ItemId) error

	// (POST /api/v1/orders/{orderId}/pay)
	PayOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/reject)
	RejectOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/verify)
	VerifyOrder(ctx echo.Context, orderId OrderId) error
	// Queue display for the waiting area
	// (GET /api/v1/queue)
	GetQueue(ctx echo.Context) error

	// (GET /api/v1/reports/daily)
	GetDailyReport(ctx echo.Context, params GetDailyReportParams) error

	// (GET /api/v1/reports/payroll)
	GetPayrollReport(ctx echo.Context, params GetPayrollReportParams) error

	// (GET /api/v1/reports/revenue)
	GetRevenueReport(ctx echo.Context, params GetRevenueReportParams) error

	// (GET /api/v1/reports/sales)
	GetSalesReport(ctx echo.Context, params GetSalesReportParams) error

	// (GET /api/v1/reports/service-mix)
	GetServiceMixReport(ctx echo.Context) error
	// Log in with a staff PIN
	// (POST /api/v1/sessions)
	CreateSession(ctx echo.Context) error
	// Shop settings, also read by the kiosk and receipts
	// (GET /api/v1/settings)
	GetSettings(ctx echo.Context) error

	// (PUT /api/v1/settings/{settingKey})
	UpdateSetting(ctx echo.Context, settingKey SettingKey) error

	// (GET /api/v1/staff)
	GetStaff(ctx echo.Context, params GetStaffParams) error

	// (POST /api/v1/staff)
	CreateStaff(ctx echo.Context) error

	// (DELETE /api/v1/staff/{staffId})
	DeleteStaff(ctx echo.Context, staffId StaffId) error

	// (PUT /api/v1/staff/{staffId})
	UpdateStaff(ctx echo.Context, staffId StaffId) error

	// (PUT /api/v1/staff/{staffId}/active)
	SetStaffActive(ctx echo.Context, staffId StaffId) error

	// (GET /api/v1/tokens)
	GetTokens(ctx echo.Context) error

	// (PUT /api/v1/tokens/pool)
	ResizeTokenPool(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCatalog converts echo context to params.
func (w *ServerInterfaceWrapper) GetCatalog(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCatalog(ctx)
	return err
}

// CreateInventoryItem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateInventoryItem(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateInventoryItem(ctx)
	return err
}

// UpdateInventoryItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateInventoryItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "inventoryItemId" -------------
	var inventoryItemId InventoryItemId

	err = runtime.BindStyledParameterWithOptions("simple", "inventoryItemId", ctx.Param("inventoryItemId"), &inventoryItemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter inventoryItemId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateInventoryItem(ctx, inventoryItemId)
	return err
}

// SetServicePrice converts echo context to params.
func (w *ServerInterfaceWrapper) SetServicePrice(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetServicePrice(ctx)
	return err
}

// CreateService converts echo context to params.
func (w *ServerInterfaceWrapper) CreateService(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateService(ctx)
	return err
}

// UpdateService converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateService(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "serviceId" -------------
	var serviceId ServiceId

	err = runtime.BindStyledParameterWithOptions("simple", "serviceId", ctx.Param("serviceId"), &serviceId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateService(ctx, serviceId)
	return err
}

// CreateVehicleType converts echo context to params.
func (w *ServerInterfaceWrapper) CreateVehicleType(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateVehicleType(ctx)
	return err
}

// GetCafeMenu converts echo context to params.
func (w *ServerInterfaceWrapper) GetCafeMenu(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCafeMenu(ctx)
	return err
}

// CreateCafeOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCafeOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateCafeOrder(ctx)
	return err
}

// CreateExpense converts echo context to params.
func (w *ServerInterfaceWrapper) CreateExpense(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateExpense(ctx)
	return err
}

// CreateKioskOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateKioskOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateKioskOrder(ctx)
	return err
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// AdvanceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdvanceOrder(ctx, orderId)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOrder(ctx, orderId)
	return err
}

// AddOrderItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddOrderItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddOrderItem(ctx, orderId)
	return err
}

// RemoveOrderItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveOrderItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// ------------- Path parameter "itemId" -------------
	var itemId ItemId

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveOrderItem(ctx, orderId, itemId)
	return err
}

// PayOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PayOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PayOrder(ctx, orderId)
	return err
}

// RejectOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RejectOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RejectOrder(ctx, orderId)
	return err
}

// VerifyOrder converts echo context to params.
func (w *ServerInterfaceWrapper) VerifyOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.VerifyOrder(ctx, orderId)
	return err
}

// GetQueue converts echo context to params.
func (w *ServerInterfaceWrapper) GetQueue(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetQueue(ctx)
	return err
}

// GetDailyReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetDailyReport(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetDailyReportParams
	// ------------- Optional query parameter "date" -------------

	err = runtime.BindQueryParameter("form", true, false, "date", ctx.QueryParams(), &params.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDailyReport(ctx, params)
	return err
}

// GetPayrollReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetPayrollReport(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetPayrollReportParams
	// ------------- Optional query parameter "from" -------------

	err = runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	// ------------- Optional query parameter "to" -------------

	err = runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPayrollReport(ctx, params)
	return err
}

// GetRevenueReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetRevenueReport(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetRevenueReportParams
	// ------------- Optional query parameter "days" -------------

	err = runtime.BindQueryParameter("form", true, false, "days", ctx.QueryParams(), &params.Days)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter days: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetRevenueReport(ctx, params)
	return err
}

// GetSalesReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetSalesReport(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetSalesReportParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSalesReport(ctx, params)
	return err
}

// GetServiceMixReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetServiceMixReport(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetServiceMixReport(ctx)
	return err
}

// CreateSession converts echo context to params.
func (w *ServerInterfaceWrapper) CreateSession(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateSession(ctx)
	return err
}

// GetSettings converts echo context to params.
func (w *ServerInterfaceWrapper) GetSettings(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSettings(ctx)
	return err
}

// UpdateSetting converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateSetting(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "settingKey" -------------
	var settingKey SettingKey

	err = runtime.BindStyledParameterWithOptions("simple", "settingKey", ctx.Param("settingKey"), &settingKey, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter settingKey: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateSetting(ctx, settingKey)
	return err
}

// GetStaff converts echo context to params.
func (w *ServerInterfaceWrapper) GetStaff(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetStaffParams
	// ------------- Optional query parameter "activeOnly" -------------

	err = runtime.BindQueryParameter("form", true, false, "activeOnly", ctx.QueryParams(), &params.ActiveOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter activeOnly: %s", err))
	}

	// ------------- Optional query parameter "role" -------------

	err = runtime.BindQueryParameter("form", true, false, "role", ctx.QueryParams(), &params.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStaff(ctx, params)
	return err
}

// CreateStaff converts echo context to params.
func (w *ServerInterfaceWrapper) CreateStaff(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateStaff(ctx)
	return err
}

// DeleteStaff converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteStaff(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "staffId" -------------
	var staffId StaffId

	err = runtime.BindStyledParameterWithOptions("simple", "staffId", ctx.Param("staffId"), &staffId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter staffId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteStaff(ctx, staffId)
	return err
}

// UpdateStaff converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateStaff(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "staffId" -------------
	var staffId StaffId

	err = runtime.BindStyledParameterWithOptions("simple", "staffId", ctx.Param("staffId"), &staffId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter staffId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateStaff(ctx, staffId)
	return err
}

// SetStaffActive converts echo context to params.
func (w *ServerInterfaceWrapper) SetStaffActive(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "staffId" -------------
	var staffId StaffId

	err = runtime.BindStyledParameterWithOptions("simple", "staffId", ctx.Param("staffId"), &staffId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter staffId: %s", err))
	}

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetStaffActive(ctx, staffId)
	return err
}

// GetTokens converts echo context to params.
func (w *ServerInterfaceWrapper) GetTokens(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTokens(ctx)
	return err
}

// ResizeTokenPool converts echo context to params.
func (w *ServerInterfaceWrapper) ResizeTokenPool(ctx echo.Context) error {
	var err error

	ctx.Set(SessionScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ResizeTokenPool(ctx)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/catalog", wrapper.GetCatalog)
	router.POST(baseURL+"/api/v1/catalog/inventory", wrapper.CreateInventoryItem)
	router.PUT(baseURL+"/api/v1/catalog/inventory/:inventoryItemId", wrapper.UpdateInventoryItem)
	router.PUT(baseURL+"/api/v1/catalog/prices", wrapper.SetServicePrice)
	router.POST(baseURL+"/api/v1/catalog/services", wrapper.CreateService)
	router.PUT(baseURL+"/api/v1/catalog/services/:serviceId", wrapper.UpdateService)
	router.POST(baseURL+"/api/v1/catalog/vehicle-types", wrapper.CreateVehicleType)
	router.GET(baseURL+"/api/v1/cafe/menu", wrapper.GetCafeMenu)
	router.POST(baseURL+"/api/v1/cafe/orders", wrapper.CreateCafeOrder)
	router.POST(baseURL+"/api/v1/expenses", wrapper.CreateExpense)
	router.POST(baseURL+"/api/v1/kiosk/orders", wrapper.CreateKioskOrder)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/advance", wrapper.AdvanceOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/items", wrapper.AddOrderItem)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/items/:itemId", wrapper.RemoveOrderItem)
	router.POST(baseURL+"/api/v1/orders/:orderId/pay", wrapper.PayOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/reject", wrapper.RejectOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/verify", wrapper.VerifyOrder)
	router.GET(baseURL+"/api/v1/queue", wrapper.GetQueue)
	router.GET(baseURL+"/api/v1/reports/daily", wrapper.GetDailyReport)
	router.GET(baseURL+"/api/v1/reports/payroll", wrapper.GetPayrollReport)
	router.GET(baseURL+"/api/v1/reports/revenue", wrapper.GetRevenueReport)
	router.GET(baseURL+"/api/v1/reports/sales", wrapper.GetSalesReport)
	router.GET(baseURL+"/api/v1/reports/service-mix", wrapper.GetServiceMixReport)
	router.POST(baseURL+"/api/v1/sessions", wrapper.CreateSession)
	router.GET(baseURL+"/api/v1/settings", wrapper.GetSettings)
	router.PUT(baseURL+"/api/v1/settings/:settingKey", wrapper.UpdateSetting)
	router.GET(baseURL+"/api/v1/staff", wrapper.GetStaff)
	router.POST(baseURL+"/api/v1/staff", wrapper.CreateStaff)
	router.DELETE(baseURL+"/api/v1/staff/:staffId", wrapper.DeleteStaff)
	router.PUT(baseURL+"/api/v1/staff/:staffId", wrapper.UpdateStaff)
	router.PUT(baseURL+"/api/v1/staff/:staffId/active", wrapper.SetStaffActive)
	router.GET(baseURL+"/api/v1/tokens", wrapper.GetTokens)
	router.PUT(baseURL+"/api/v1/tokens/pool", wrapper.ResizeTokenPool)
}
