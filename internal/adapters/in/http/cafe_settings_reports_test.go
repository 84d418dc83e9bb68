package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/in/http/servers"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/queries"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

func (suite *ServerTestSuite) TestGetCafeMenu_IsPublic() {
	cokeID := kernel.NewUUID()
	suite.getCafeMenu.On("Handle", mock.Anything, mock.Anything).Return([]queries.InventoryEntry{
		{ID: cokeID, Name: "Coke", Price: kernel.MustMoney("25"), StockQty: 24, Category: catalog.CategoryDrinks},
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/cafe/menu", "", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.JSONEq(fmt.Sprintf(`[{"id":%q,"name":"Coke","price":"25.00","stockQty":24,"category":"drinks"}]`, cokeID), rec.Body.String())
}

func (suite *ServerTestSuite) TestCreateCafeOrder_IsPublic() {
	orderID, cokeID, chipsID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	suite.createCafeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.CreateCafeOrderCommand) bool {
		lines := c.Lines()
		return c.TokenNumber() == 7 && len(lines) == 2 &&
			lines[0].InventoryItemID.IsEqual(cokeID) && lines[0].Quantity == 2 &&
			lines[1].InventoryItemID.IsEqual(chipsID) && lines[1].Quantity == 1
	})).Return(orderID, nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/cafe/orders", "", fmt.Sprintf(
		`{"tokenNumber":7,"items":[{"inventoryItemId":%q,"quantity":2},{"inventoryItemId":%q,"quantity":1}]}`, cokeID, chipsID))

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created servers.Created
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	suite.Equal(orderID.Bytes(), created.Id)
	suite.createCafeOrder.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestCreateCafeOrder_IdleToken() {
	suite.createCafeOrder.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.UUID{}, fmt.Errorf("token 7: %w", token.ErrTokenIdle)).Once()

	rec := suite.do(http.MethodPost, "/api/v1/cafe/orders", "", fmt.Sprintf(
		`{"tokenNumber":7,"items":[{"inventoryItemId":%q,"quantity":1}]}`, kernel.NewUUID()))

	suite.Equal(http.StatusConflict, rec.Code)
	suite.Equal(token.ErrTokenIdle.Error(), suite.errorBody(rec).Message)
}

func (suite *ServerTestSuite) TestCreateCafeOrder_OutOfStock() {
	suite.createCafeOrder.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.UUID{}, fmt.Errorf("%w: Coke", catalog.ErrOutOfStock)).Once()

	rec := suite.do(http.MethodPost, "/api/v1/cafe/orders", "", fmt.Sprintf(
		`{"tokenNumber":7,"items":[{"inventoryItemId":%q,"quantity":1}]}`, kernel.NewUUID()))

	suite.Equal(http.StatusConflict, rec.Code)
	suite.Contains(suite.errorBody(rec).Message, "Coke")
}

func (suite *ServerTestSuite) TestCreateCafeOrder_InvalidCart() {
	for name, body := range map[string]string{
		"empty cart":    `{"tokenNumber":7,"items":[]}`,
		"zero quantity": fmt.Sprintf(`{"tokenNumber":7,"items":[{"inventoryItemId":%q,"quantity":0}]}`, kernel.NewUUID()),
		"no token":      fmt.Sprintf(`{"items":[{"inventoryItemId":%q,"quantity":1}]}`, kernel.NewUUID()),
	} {
		suite.Run(name, func() {
			rec := suite.do(http.MethodPost, "/api/v1/cafe/orders", "", body)

			suite.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
	suite.createCafeOrder.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestUpdateService() {
	serviceID := kernel.NewUUID()
	suite.catalogCommands.On("HandleUpdateService", mock.Anything, mock.MatchedBy(func(c commands.UpdateServiceCommand) bool {
		return c.ServiceID().IsEqual(serviceID) && c.Name() == "Deluxe Wash" && c.Description() == "Wash, wax and vacuum"
	})).Return(nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/catalog/services/"+serviceID.String(), suite.bearer(staff.RoleAdmin),
		`{"name":"Deluxe Wash","description":"Wash, wax and vacuum"}`)

	suite.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.catalogCommands.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestUpdateService_NameTaken() {
	suite.catalogCommands.On("HandleUpdateService", mock.Anything, mock.Anything).
		Return(errs.NewObjectAlreadyExistsError("service", "Basic Wash")).Once()

	rec := suite.do(http.MethodPut, "/api/v1/catalog/services/"+kernel.NewUUID().String(), suite.bearer(staff.RoleAdmin),
		`{"name":"Basic Wash","description":""}`)

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *ServerTestSuite) TestUpdateInventoryItem_Restock() {
	itemID := kernel.NewUUID()
	suite.catalogCommands.On("HandleUpdateInventoryItem", mock.Anything, mock.MatchedBy(func(c commands.UpdateInventoryItemCommand) bool {
		return c.ItemID().IsEqual(itemID) && c.StockQty() == 0 &&
			c.Price().IsEqual(kernel.MustMoney("30")) && c.Category() == catalog.CategorySnacks
	})).Return(nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/catalog/inventory/"+itemID.String(), suite.bearer(staff.RoleBarista),
		`{"name":"Chips","price":"30","stockQty":0,"category":"snacks"}`)

	suite.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.catalogCommands.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestUpdateInventoryItem_NegativeStock() {
	rec := suite.do(http.MethodPut, "/api/v1/catalog/inventory/"+kernel.NewUUID().String(), suite.bearer(staff.RoleBarista),
		`{"name":"Chips","price":"30","stockQty":-1,"category":"snacks"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.errorBody(rec).Message, "stockQty")
}

func (suite *ServerTestSuite) TestUpdateStaff_KeepsPINWhenOmitted() {
	staffID := kernel.NewUUID()
	suite.updateStaff.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.UpdateStaffCommand) bool {
		return c.StaffID().IsEqual(staffID) && c.Name() == "Pedro" && c.Role() == staff.RoleWasher && c.PIN() == ""
	})).Return(nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/staff/"+staffID.String(), suite.bearer(staff.RoleAdmin), `{"name":"Pedro","role":"washer"}`)

	suite.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.updateStaff.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestUpdateStaff_PINTaken() {
	suite.updateStaff.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectAlreadyExistsError("staff pin", "Carla")).Once()

	rec := suite.do(http.MethodPut, "/api/v1/staff/"+kernel.NewUUID().String(), suite.bearer(staff.RoleAdmin),
		`{"name":"Pedro","role":"washer","pin":"1234"}`)

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *ServerTestSuite) TestDeleteStaff() {
	staffID := kernel.NewUUID()
	suite.deleteStaff.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.DeleteStaffCommand) bool {
		return c.StaffID().IsEqual(staffID) && c.Session().Role == staff.RoleAdmin
	})).Return(nil).Once()

	rec := suite.do(http.MethodDelete, "/api/v1/staff/"+staffID.String(), suite.bearer(staff.RoleAdmin), "")

	suite.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.deleteStaff.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestDeleteStaff_RequiresSession() {
	rec := suite.do(http.MethodDelete, "/api/v1/staff/"+kernel.NewUUID().String(), "", "")

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.deleteStaff.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestGetSettings_IsPublic() {
	suite.listSettings.On("Handle", mock.Anything, mock.Anything).Return([]queries.SettingEntry{
		{Key: "shop_name", Value: "JETZ Carwash", Description: "Name on receipts and screens"},
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/settings", "", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.JSONEq(`[{"key":"shop_name","value":"JETZ Carwash","description":"Name on receipts and screens"}]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestUpdateSetting() {
	suite.updateSetting.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.UpdateSettingCommand) bool {
		return c.Key() == "receipt_footer" && c.Value() == "See you soon!"
	})).Return(nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/settings/receipt_footer", suite.bearer(staff.RoleAdmin), `{"value":"See you soon!"}`)

	suite.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.updateSetting.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestUpdateSetting_UnknownKey() {
	suite.updateSetting.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("setting", "wifi_password")).Once()

	rec := suite.do(http.MethodPut, "/api/v1/settings/wifi_password", suite.bearer(staff.RoleAdmin), `{"value":"hunter2"}`)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestUpdateSetting_EmptyValue() {
	rec := suite.do(http.MethodPut, "/api/v1/settings/shop_name", suite.bearer(staff.RoleAdmin), `{"value":""}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.updateSetting.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestGetRevenueReport() {
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	suite.getRevenueSeries.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetRevenueSeriesQuery) bool {
		return q.Days() == 2
	})).Return([]queries.RevenuePoint{
		{Day: day.AddDate(0, 0, -1), PaidOrders: 0, Revenue: kernel.MustMoney("0")},
		{Day: day, PaidOrders: 2, Revenue: kernel.MustMoney("400")},
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/reports/revenue?days=2", suite.bearer(staff.RoleAdmin), "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.JSONEq(`[
		{"date":"2026-10-15","paidOrders":0,"revenue":"0.00"},
		{"date":"2026-10-16","paidOrders":2,"revenue":"400.00"}
	]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestGetRevenueReport_TooManyDays() {
	rec := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/reports/revenue?days=%d", queries.MaxRevenueDays+1), suite.bearer(staff.RoleAdmin), "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.getRevenueSeries.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestGetServiceMixReport() {
	suite.getServiceMix.On("Handle", mock.Anything, mock.Anything).Return([]queries.ServiceMixEntry{
		{ServiceName: "Basic Wash", Orders: 12},
		{ServiceName: "Unknown", Orders: 1},
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/reports/service-mix", suite.bearer(staff.RoleAdmin), "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.JSONEq(`[{"serviceName":"Basic Wash","orders":12},{"serviceName":"Unknown","orders":1}]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestGetServiceMixReport_RequiresSession() {
	rec := suite.do(http.MethodGet, "/api/v1/reports/service-mix", "", "")

	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ServerTestSuite) TestGetSalesReport() {
	saleID := kernel.NewUUID()
	paidAt := time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC)
	suite.getSales.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetSalesQuery) bool {
		return q.Limit() == 1
	})).Return(queries.SalesReport{
		Sales: []queries.Sale{{
			ID: saleID, TokenNumber: 7, CustomerName: "Ana", PlateNumber: "ABC 123",
			ServiceName: "Premium Wash", VehicleType: "SUV", WasherName: "Pedro", ClosedBy: "Carla",
			TotalAmount: kernel.MustMoney("250"), PaidAt: paidAt,
		}},
		PaidOrders: 2,
		Revenue:    kernel.MustMoney("350"),
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/reports/sales?limit=1", suite.bearer(staff.RoleAdmin), "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body servers.SalesReport
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal(2, body.PaidOrders)
	suite.Equal("350.00", body.Revenue)
	suite.Require().Len(body.Sales, 1)
	suite.Equal(saleID.Bytes(), body.Sales[0].Id)
	suite.Equal("250.00", body.Sales[0].TotalAmount)
	suite.True(paidAt.Equal(body.Sales[0].PaidAt))
}

func (suite *ServerTestSuite) TestGetSalesReport_MalformedLimit() {
	rec := suite.do(http.MethodGet, "/api/v1/reports/sales?limit=all", suite.bearer(staff.RoleAdmin), "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.errorBody(rec).Message, "limit")
}
