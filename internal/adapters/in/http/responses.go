package http

import (
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/in/http/servers"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/queries"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func money(m kernel.Money) servers.Money {
	return m.String()
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	value := id.Bytes()
	return &value
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func activeOrderResponse(o queries.ActiveOrder) servers.ActiveOrder {
	return servers.ActiveOrder{
		Id:           o.ID.Bytes(),
		TokenNumber:  o.TokenNumber,
		CustomerName: o.CustomerName,
		PlateNumber:  o.PlateNumber,
		ServiceName:  o.ServiceName,
		VehicleType:  o.VehicleType,
		Status:       servers.OrderStatus(o.Status.String()),
		Source:       servers.ActiveOrderSource(o.Source.String()),
		IsVerified:   o.IsVerified,
		TotalAmount:  money(o.TotalAmount),
		CreatedAt:    o.CreatedAt,
	}
}

func orderDetailsResponse(d queries.OrderDetails) servers.OrderDetails {
	items := make([]servers.OrderLine, len(d.Items))
	for i, line := range d.Items {
		items[i] = servers.OrderLine{
			Id:        line.ID.Bytes(),
			Type:      servers.OrderLineType(line.Type.String()),
			CatalogId: line.CatalogID.Bytes(),
			Name:      line.Name,
			UnitPrice: money(line.UnitPrice),
			Quantity:  line.Quantity,
			Subtotal:  money(line.Subtotal),
		}
	}

	return servers.OrderDetails{
		Id:               d.ID.Bytes(),
		TokenNumber:      d.TokenNumber,
		CustomerName:     d.CustomerName,
		PlateNumber:      d.PlateNumber,
		ServiceName:      d.ServiceName,
		VehicleType:      d.VehicleType,
		Status:           servers.OrderStatus(d.Status.String()),
		Source:           servers.ActiveOrderSource(d.Source.String()),
		IsVerified:       d.IsVerified,
		TotalAmount:      money(d.TotalAmount),
		CreatedAt:        d.CreatedAt,
		VehicleTypeId:    optionalUUID(d.VehicleTypeID),
		ServiceId:        d.ServiceID.Bytes(),
		WasherName:       d.WasherName,
		CommissionAmount: money(d.CommissionAmount),
		CreatedBy:        d.CreatedBy,
		ClosedBy:         d.ClosedBy,
		PaidAt:           d.PaidAt,
		Items:            items,
		RunningTotal:     money(d.RunningTotal),
	}
}

func tokenBoardEntryResponse(e queries.TokenBoardEntry) servers.TokenBoardEntry {
	entry := servers.TokenBoardEntry{
		Number: e.Number,
		Status: servers.TokenBoardEntryStatus(e.Status.String()),
	}
	if e.OrderID != nil {
		status := servers.OrderStatus(e.OrderStatus.String())
		entry.OrderId = optionalUUID(e.OrderID)
		entry.OrderStatus = &status
		entry.CustomerName = optionalString(e.CustomerName)
		entry.PlateNumber = optionalString(e.PlateNumber)
	}
	return entry
}

func catalogResponse(c queries.Catalog) servers.Catalog {
	response := servers.Catalog{
		VehicleTypes: make([]servers.VehicleType, len(c.VehicleTypes)),
		Services:     make([]servers.Service, len(c.Services)),
		Prices:       make([]servers.ServicePrice, len(c.Prices)),
		Inventory:    make([]servers.InventoryItem, len(c.Inventory)),
	}
	for i, v := range c.VehicleTypes {
		response.VehicleTypes[i] = servers.VehicleType{Id: v.ID.Bytes(), Name: v.Name, SortOrder: v.SortOrder}
	}
	for i, svc := range c.Services {
		response.Services[i] = servers.Service{Id: svc.ID.Bytes(), Name: svc.Name, Description: svc.Description}
	}
	for i, p := range c.Prices {
		response.Prices[i] = servers.ServicePrice{
			ServiceId:     p.ServiceID.Bytes(),
			VehicleTypeId: p.VehicleTypeID.Bytes(),
			Price:         money(p.Price),
		}
	}
	for i, item := range c.Inventory {
		response.Inventory[i] = inventoryItemResponse(item)
	}
	return response
}

func inventoryItemResponse(item queries.InventoryEntry) servers.InventoryItem {
	return servers.InventoryItem{
		Id:       item.ID.Bytes(),
		Name:     item.Name,
		Price:    money(item.Price),
		StockQty: item.StockQty,
		Category: servers.InventoryCategory(item.Category.String()),
	}
}

func dailySummaryResponse(d queries.DailySummary) servers.DailySummary {
	return servers.DailySummary{
		Date:       openapi_types.Date{Time: d.Day},
		PaidOrders: d.PaidOrders,
		Revenue:    money(d.Revenue),
		Commission: money(d.Commission),
		Expenses:   money(d.Expenses),
		Net:        d.Net.StringFixed(kernel.MoneyScale),
	}
}

func payrollResponse(r queries.PayrollReport) servers.PayrollReport {
	washers := make([]servers.WasherPayroll, len(r.Washers))
	for i, w := range r.Washers {
		washers[i] = servers.WasherPayroll{
			Name:       w.Name,
			Jobs:       w.Jobs,
			Sales:      money(w.Sales),
			Commission: money(w.Commission),
		}
	}

	return servers.PayrollReport{
		From:            r.From,
		To:              r.To,
		Washers:         washers,
		TotalJobs:       r.TotalJobs,
		TotalSales:      money(r.TotalSales),
		TotalCommission: money(r.TotalCommission),
	}
}

func salesReportResponse(r queries.SalesReport) servers.SalesReport {
	sales := make([]servers.Sale, len(r.Sales))
	for i, sale := range r.Sales {
		sales[i] = servers.Sale{
			Id:           sale.ID.Bytes(),
			TokenNumber:  sale.TokenNumber,
			CustomerName: sale.CustomerName,
			PlateNumber:  sale.PlateNumber,
			ServiceName:  sale.ServiceName,
			VehicleType:  sale.VehicleType,
			WasherName:   sale.WasherName,
			ClosedBy:     sale.ClosedBy,
			TotalAmount:  money(sale.TotalAmount),
			PaidAt:       sale.PaidAt,
		}
	}

	return servers.SalesReport{
		Sales:      sales,
		PaidOrders: r.PaidOrders,
		Revenue:    money(r.Revenue),
	}
}
