// Package http exposes the use cases over the REST contract in api/openapi.yml.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/in/http/servers"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/queries"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	// CommandHandler is satisfied by every command handler in usecases/commands.
	CommandHandler[C any] interface {
		Handle(ctx context.Context, command C) error
	}

	// CreatingCommandHandler returns what the command created.
	CreatingCommandHandler[C, R any] interface {
		Handle(ctx context.Context, command C) (R, error)
	}

	// QueryHandler is satisfied by every query handler in usecases/queries.
	QueryHandler[Q, R any] interface {
		Handle(ctx context.Context, query Q) (R, error)
	}

	CatalogCommands interface {
		HandleCreateVehicleType(ctx context.Context, command commands.CreateVehicleTypeCommand) error
		HandleCreateService(ctx context.Context, command commands.CreateServiceCommand) error
		HandleSetServicePrice(ctx context.Context, command commands.SetServicePriceCommand) error
		HandleCreateInventoryItem(ctx context.Context, command commands.CreateInventoryItemCommand) error
		HandleUpdateService(ctx context.Context, command commands.UpdateServiceCommand) error
		HandleUpdateInventoryItem(ctx context.Context, command commands.UpdateInventoryItemCommand) error
	}
)

// Handlers are the use cases the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateStaffOrder CommandHandler[commands.CreateStaffOrderCommand]
	CreateKioskOrder CommandHandler[commands.CreateKioskOrderCommand]
	VerifyKioskOrder CommandHandler[commands.VerifyKioskOrderCommand]
	RejectKioskOrder CommandHandler[commands.RejectKioskOrderCommand]
	AddConsumable    CommandHandler[commands.AddConsumableCommand]
	RemoveConsumable CommandHandler[commands.RemoveConsumableCommand]
	AdvanceOrder     CommandHandler[commands.AdvanceOrderCommand]
	MarkOrderPaid    CommandHandler[commands.MarkOrderPaidCommand]
	CancelOrder      CommandHandler[commands.CancelOrderCommand]
	LogExpense       CommandHandler[commands.LogExpenseCommand]
	ResizeTokenPool  CommandHandler[commands.ResizeTokenPoolCommand]
	CreateStaff      CommandHandler[commands.CreateStaffCommand]
	SetStaffActive   CommandHandler[commands.SetStaffActiveCommand]
	UpdateStaff      CommandHandler[commands.UpdateStaffCommand]
	DeleteStaff      CommandHandler[commands.DeleteStaffCommand]
	UpdateSetting    CommandHandler[commands.UpdateSettingCommand]
	CreateCafeOrder  CreatingCommandHandler[commands.CreateCafeOrderCommand, kernel.UUID]
	Catalog          CatalogCommands

	// Query handlers
	GetActiveOrders   QueryHandler[queries.GetActiveOrdersQuery, []queries.ActiveOrder]
	GetOrder          QueryHandler[queries.GetOrderQuery, queries.OrderDetails]
	GetTokenBoard     QueryHandler[queries.GetTokenBoardQuery, []queries.TokenBoardEntry]
	GetCatalog        QueryHandler[queries.GetCatalogQuery, queries.Catalog]
	GetDailySummary   QueryHandler[queries.GetDailySummaryQuery, queries.DailySummary]
	GetPayroll        QueryHandler[queries.GetPayrollQuery, queries.PayrollReport]
	ListStaff         QueryHandler[queries.ListStaffQuery, []queries.StaffMember]
	AuthenticateStaff QueryHandler[queries.AuthenticateStaffQuery, staff.Session]
	GetCafeMenu       QueryHandler[queries.GetCafeMenuQuery, []queries.InventoryEntry]
	ListSettings      QueryHandler[queries.ListSettingsQuery, []queries.SettingEntry]
	GetRevenueSeries  QueryHandler[queries.GetRevenueSeriesQuery, []queries.RevenuePoint]
	GetServiceMix     QueryHandler[queries.GetServiceMixQuery, []queries.ServiceMixEntry]
	GetSales          QueryHandler[queries.GetSalesQuery, queries.SalesReport]
}

// Server implements servers.ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	sessions *SessionIssuer
	logger   *slog.Logger

	// Reports default to the current day and month in location.
	location *time.Location
	now      func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, sessions *SessionIssuer, location *time.Location, logger *slog.Logger) (*Server, error) {
	if sessions == nil {
		return nil, errors.New("session issuer is required")
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		handlers: handlers,
		sessions: sessions,
		logger:   logger.With("component", "http_server"),
		location: location,
		now:      time.Now,
	}, nil
}

// CreateSession handles POST /api/v1/sessions - exchanges a staff PIN for a session token.
func (s *Server) CreateSession(ctx echo.Context) error {
	body, err := bindBody[loginRequest](ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewAuthenticateStaffQuery(body.Pin)
	if err != nil {
		return err
	}

	session, err := s.handlers.AuthenticateStaff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	signed, expiresAt, err := s.sessions.Issue(session)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Session{
		Token:     signed,
		ExpiresAt: expiresAt,
		StaffId:   session.StaffID.Bytes(),
		Name:      session.Name,
		Role:      servers.StaffRole(session.Role.String()),
	})
}

// GetCatalog handles GET /api/v1/catalog - vehicle types, services, prices and inventory.
func (s *Server) GetCatalog(ctx echo.Context) error {
	result, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, catalogResponse(result))
}

// CreateVehicleType handles POST /api/v1/catalog/vehicle-types.
func (s *Server) CreateVehicleType(ctx echo.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[newVehicleTypeRequest](ctx)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleTypeCommand(session, id, body.Name, valueOr(body.SortOrder, 0))
	if err != nil {
		return err
	}
	if err = s.handlers.Catalog.HandleCreateVehicleType(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// CreateService handles POST /api/v1/catalog/services.
func (s *Server) CreateService(ctx echo.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[newServiceRequest](ctx)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceCommand(session, id, body.Name, valueOr(body.Description, ""))
	if err != nil {
		return err
	}
	if err = s.handlers.Catalog.HandleCreateService(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// SetServicePrice handles PUT /api/v1/catalog/prices - sets one cell of the price matrix.
func (s *Server) SetServicePrice(ctx echo.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[servicePriceRequest](ctx)
	if err != nil {
		return err
	}

	serviceID, serviceErr := kernel.UUIDFromGoogle(body.ServiceId)
	vehicleTypeID, vehicleTypeErr := kernel.UUIDFromGoogle(body.VehicleTypeId)
	price, priceErr := kernel.MoneyFromString(body.Price)
	if err = errors.Join(serviceErr, vehicleTypeErr, priceErr); err != nil {
		return err
	}

	cmd, err := commands.NewSetServicePriceCommand(session, serviceID, vehicleTypeID, price)
	if err != nil {
		return err
	}
	if err = s.handlers.Catalog.HandleSetServicePrice(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateInventoryItem handles POST /api/v1/catalog/inventory.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[newInventoryItemRequest](ctx)
	if err != nil {
		return err
	}

	price, priceErr := kernel.MoneyFromString(body.Price)
	category, categoryErr := catalog.ParseCategory(string(body.Category))
	if err = errors.Join(priceErr, categoryErr); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryItemCommand(session, id, body.Name, price, valueOr(body.StockQty, 0), category)
	if err != nil {
		return err
	}
	if err = s.handlers.Catalog.HandleCreateInventoryItem(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// UpdateService handles PUT /api/v1/catalog/services/{serviceId} - renames a service.
func (s *Server) UpdateService(ctx echo.Context, serviceId servers.ServiceId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[updateServiceRequest](ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(serviceId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateServiceCommand(session, id, body.Name, body.Description)
	if err != nil {
		return err
	}
	if err = s.handlers.Catalog.HandleUpdateService(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateInventoryItem handles PUT /api/v1/catalog/inventory/{inventoryItemId} - overwrites an item, stock included.
func (s *Server) UpdateInventoryItem(ctx echo.Context, inventoryItemId servers.InventoryItemId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[updateInventoryItemRequest](ctx)
	if err != nil {
		return err
	}

	id, idErr := kernel.UUIDFromGoogle(inventoryItemId)
	price, priceErr := kernel.MoneyFromString(body.Price)
	category, categoryErr := catalog.ParseCategory(string(body.Category))
	if err = errors.Join(idErr, priceErr, categoryErr); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateInventoryItemCommand(session, id, body.Name, price, body.StockQty, category)
	if err != nil {
		return err
	}
	if err = s.handlers.Catalog.HandleUpdateInventoryItem(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCafeMenu handles GET /api/v1/cafe/menu - what a customer can order from their phone.
func (s *Server) GetCafeMenu(ctx echo.Context) error {
	menu, err := s.handlers.GetCafeMenu.Handle(ctx.Request().Context(), queries.NewGetCafeMenuQuery())
	if err != nil {
		return err
	}

	response := make([]servers.InventoryItem, len(menu))
	for i, item := range menu {
		response[i] = inventoryItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCafeOrder handles POST /api/v1/cafe/orders - charges a cart to the
// order on the customer's token. The response carries that order's id.
func (s *Server) CreateCafeOrder(ctx echo.Context) error {
	body, err := bindBody[newCafeOrderRequest](ctx)
	if err != nil {
		return err
	}

	lines := make([]commands.CafeLine, len(body.Items))
	for i, item := range body.Items {
		itemID, err := kernel.UUIDFromGoogle(item.InventoryItemId)
		if err != nil {
			return err
		}
		lines[i] = commands.CafeLine{InventoryItemID: itemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateCafeOrderCommand(body.TokenNumber, lines)
	if err != nil {
		return err
	}
	orderID, err := s.handlers.CreateCafeOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// CreateKioskOrder handles POST /api/v1/kiosk/orders - a self-service order awaiting verification.
func (s *Server) CreateKioskOrder(ctx echo.Context) error {
	body, err := bindBody[newKioskOrderRequest](ctx)
	if err != nil {
		return err
	}

	serviceID, err := kernel.UUIDFromGoogle(body.ServiceId)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateKioskOrderCommand(orderID, body.TokenNumber, serviceID)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateKioskOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// GetQueue handles GET /api/v1/queue - the waiting-area display.
func (s *Server) GetQueue(ctx echo.Context) error {
	query, err := queries.NewGetActiveOrdersQuery(order.Queued, order.Working, order.Ready)
	if err != nil {
		return err
	}

	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.QueueEntry, len(orders))
	for i, o := range orders {
		response[i] = servers.QueueEntry{
			TokenNumber:  o.TokenNumber,
			CustomerName: o.CustomerName,
			ServiceName:  o.ServiceName,
			Status:       servers.OrderStatus(o.Status.String()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTokens handles GET /api/v1/tokens - the token board.
func (s *Server) GetTokens(ctx echo.Context) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	board, err := s.handlers.GetTokenBoard.Handle(ctx.Request().Context(), queries.NewGetTokenBoardQuery())
	if err != nil {
		return err
	}

	response := make([]servers.TokenBoardEntry, len(board))
	for i, entry := range board {
		response[i] = tokenBoardEntryResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ResizeTokenPool handles PUT /api/v1/tokens/pool.
func (s *Server) ResizeTokenPool(ctx echo.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[resizeTokenPoolRequest](ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewResizeTokenPoolCommand(session, body.Size)
	if err != nil {
		return err
	}
	if err = s.handlers.ResizeTokenPool.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - live orders, oldest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	var statuses []order.Status
	if params.Status != nil {
		for _, raw := range *params.Status {
			status, err := order.ParseStatus(string(raw))
			if err != nil {
				return err
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewGetActiveOrdersQuery(statuses...)
	if err != nil {
		return err
	}

	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = activeOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - a greeter checks a vehicle in on a token.
func (s *Server) CreateOrder(ctx echo.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[newStaffOrderRequest](ctx)
	if err != nil {
		return err
	}

	vehicleTypeID, vehicleTypeErr := kernel.UUIDFromGoogle(body.VehicleTypeId)
	serviceID, serviceErr := kernel.UUIDFromGoogle(body.ServiceId)
	price, priceErr := kernel.MoneyFromString(body.Price)
	if err = errors.Join(vehicleTypeErr, serviceErr, priceErr); err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateStaffOrderCommand(
		session,
		orderID,
		body.TokenNumber,
		order.Customer{Name: valueOr(body.CustomerName, ""), PlateNumber: valueOr(body.PlateNumber, "")},
		vehicleTypeID,
		serviceID,
		price,
	)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateStaffOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId} - the order with its lines.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	details, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderDetailsResponse(details))
}

// VerifyOrder handles POST /api/v1/orders/{orderId}/verify - prices a kiosk order and queues it.
func (s *Server) VerifyOrder(ctx echo.Context, orderId servers.OrderId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[verifyOrderRequest](ctx)
	if err != nil {
		return err
	}

	id, idErr := kernel.UUIDFromGoogle(orderId)
	vehicleTypeID, vehicleTypeErr := kernel.UUIDFromGoogle(body.VehicleTypeId)
	if err = errors.Join(idErr, vehicleTypeErr); err != nil {
		return err
	}

	cmd, err := commands.NewVerifyKioskOrderCommand(session, id, vehicleTypeID)
	if err != nil {
		return err
	}
	if err = s.handlers.VerifyKioskOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderId servers.OrderId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRejectKioskOrderCommand(session, id)
	if err != nil {
		return err
	}
	if err = s.handlers.RejectKioskOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items - sells a consumable on the order.
func (s *Server) AddOrderItem(ctx echo.Context, orderId servers.OrderId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[newOrderItemRequest](ctx)
	if err != nil {
		return err
	}

	id, idErr := kernel.UUIDFromGoogle(orderId)
	itemID, itemErr := kernel.UUIDFromGoogle(body.InventoryItemId)
	if err = errors.Join(idErr, itemErr); err != nil {
		return err
	}

	cmd, err := commands.NewAddConsumableCommand(session, id, itemID, valueOr(body.Quantity, 0))
	if err != nil {
		return err
	}
	if err = s.handlers.AddConsumable.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderId servers.OrderId, itemId servers.ItemId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}

	id, idErr := kernel.UUIDFromGoogle(orderId)
	lineID, lineErr := kernel.UUIDFromGoogle(itemId)
	if err = errors.Join(idErr, lineErr); err != nil {
		return err
	}

	cmd, err := commands.NewRemoveConsumableCommand(session, id, lineID)
	if err != nil {
		return err
	}
	if err = s.handlers.RemoveConsumable.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance - queued, working, ready.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId servers.OrderId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[advanceOrderRequest](ctx)
	if err != nil {
		return err
	}

	id, idErr := kernel.UUIDFromGoogle(orderId)
	to, statusErr := order.ParseStatus(string(body.Status))
	if err = errors.Join(idErr, statusErr); err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(session, id, to)
	if err != nil {
		return err
	}
	if err = s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /api/v1/orders/{orderId}/pay - closes the order and frees its token.
func (s *Server) PayOrder(ctx echo.Context, orderId servers.OrderId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[payOrderRequest](ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderPaidCommand(session, id, body.WasherName)
	if err != nil {
		return err
	}
	if err = s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(session, id)
	if err != nil {
		return err
	}
	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateExpense handles POST /api/v1/expenses.
func (s *Server) CreateExpense(ctx echo.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[newExpenseRequest](ctx)
	if err != nil {
		return err
	}

	amount, err := kernel.MoneyFromString(body.Amount)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewLogExpenseCommand(session, id, body.Description, amount)
	if err != nil {
		return err
	}
	if err = s.handlers.LogExpense.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// GetDailyReport handles GET /api/v1/reports/daily - takings for one day, today by default.
func (s *Server) GetDailyReport(ctx echo.Context, params servers.GetDailyReportParams) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	day := s.now().In(s.location)
	if params.Date != nil {
		day = s.localDate(*params.Date)
	}

	query, err := queries.NewGetDailySummaryQuery(day)
	if err != nil {
		return err
	}

	summary, err := s.handlers.GetDailySummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dailySummaryResponse(summary))
}

// GetPayrollReport handles GET /api/v1/reports/payroll. Without bounds it
// covers the current month; "to" is inclusive.
func (s *Server) GetPayrollReport(ctx echo.Context, params servers.GetPayrollReportParams) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	var (
		query queries.GetPayrollQuery
		err   error
	)
	switch {
	case params.From == nil && params.To == nil:
		query, err = queries.NewCurrentMonthPayrollQuery(s.now().In(s.location))
	case params.From == nil:
		err = errs.NewValueIsRequiredError("from")
	case params.To == nil:
		err = errs.NewValueIsRequiredError("to")
	default:
		query, err = queries.NewGetPayrollQuery(s.localDate(*params.From), s.localDate(*params.To).AddDate(0, 0, 1))
	}
	if err != nil {
		return err
	}

	report, err := s.handlers.GetPayroll.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, payrollResponse(report))
}

// GetRevenueReport handles GET /api/v1/reports/revenue - paid revenue per day
// for the last week by default, ending today.
func (s *Server) GetRevenueReport(ctx echo.Context, params servers.GetRevenueReportParams) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	query, err := queries.NewGetRevenueSeriesQuery(s.now().In(s.location), valueOr(params.Days, 0))
	if err != nil {
		return err
	}

	points, err := s.handlers.GetRevenueSeries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.RevenuePoint, len(points))
	for i, p := range points {
		response[i] = servers.RevenuePoint{
			Date:       openapi_types.Date{Time: p.Day},
			PaidOrders: p.PaidOrders,
			Revenue:    money(p.Revenue),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetServiceMixReport handles GET /api/v1/reports/service-mix.
func (s *Server) GetServiceMixReport(ctx echo.Context) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	mix, err := s.handlers.GetServiceMix.Handle(ctx.Request().Context(), queries.NewGetServiceMixQuery())
	if err != nil {
		return err
	}

	response := make([]servers.ServiceMixEntry, len(mix))
	for i, entry := range mix {
		response[i] = servers.ServiceMixEntry{ServiceName: entry.ServiceName, Orders: entry.Orders}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSalesReport handles GET /api/v1/reports/sales - the transaction history.
func (s *Server) GetSalesReport(ctx echo.Context, params servers.GetSalesReportParams) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	query, err := queries.NewGetSalesQuery(valueOr(params.Limit, 0))
	if err != nil {
		return err
	}

	report, err := s.handlers.GetSales.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, salesReportResponse(report))
}

// GetSettings handles GET /api/v1/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	entries, err := s.handlers.ListSettings.Handle(ctx.Request().Context(), queries.NewListSettingsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Setting, len(entries))
	for i, e := range entries {
		response[i] = servers.Setting{Key: e.Key, Value: e.Value, Description: e.Description}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateSetting handles PUT /api/v1/settings/{settingKey}.
func (s *Server) UpdateSetting(ctx echo.Context, settingKey servers.SettingKey) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[updateSettingRequest](ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSettingCommand(session, settingKey, body.Value)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateSetting.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStaff handles GET /api/v1/staff.
func (s *Server) GetStaff(ctx echo.Context, params servers.GetStaffParams) error {
	if _, err := sessionFrom(ctx); err != nil {
		return err
	}

	var roles []staff.Role
	if params.Role != nil {
		for _, raw := range *params.Role {
			role, err := staff.ParseRole(string(raw))
			if err != nil {
				return err
			}
			roles = append(roles, role)
		}
	}

	query, err := queries.NewListStaffQuery(valueOr(params.ActiveOnly, false), roles...)
	if err != nil {
		return err
	}

	members, err := s.handlers.ListStaff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.StaffMember, len(members))
	for i, m := range members {
		response[i] = servers.StaffMember{
			Id:     m.ID.Bytes(),
			Name:   m.Name,
			Role:   servers.StaffRole(m.Role.String()),
			Active: m.Active,
			HasPin: m.HasPIN,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStaff handles POST /api/v1/staff.
func (s *Server) CreateStaff(ctx echo.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[newStaffMemberRequest](ctx)
	if err != nil {
		return err
	}

	role, err := staff.ParseRole(string(body.Role))
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateStaffCommand(session, id, body.Name, role, valueOr(body.Pin, ""))
	if err != nil {
		return err
	}
	if err = s.handlers.CreateStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// SetStaffActive handles PUT /api/v1/staff/{staffId}/active.
func (s *Server) SetStaffActive(ctx echo.Context, staffId servers.StaffId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[setStaffActiveRequest](ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(staffId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetStaffActiveCommand(session, id, body.Active)
	if err != nil {
		return err
	}
	if err = s.handlers.SetStaffActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStaff handles PUT /api/v1/staff/{staffId}.
func (s *Server) UpdateStaff(ctx echo.Context, staffId servers.StaffId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	body, err := bindBody[updateStaffMemberRequest](ctx)
	if err != nil {
		return err
	}

	id, idErr := kernel.UUIDFromGoogle(staffId)
	role, roleErr := staff.ParseRole(string(body.Role))
	if err = errors.Join(idErr, roleErr); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStaffCommand(session, id, body.Name, role, valueOr(body.Pin, ""))
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteStaff handles DELETE /api/v1/staff/{staffId}.
func (s *Server) DeleteStaff(ctx echo.Context, staffId servers.StaffId) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(staffId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteStaffCommand(session, id)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// localDate is midnight of d in the shop's time zone.
func (s *Server) localDate(d openapi_types.Date) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, s.location)
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
