package http

import (
	"fmt"
	"regexp"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/in/http/servers"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/setting"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/labstack/echo/v4"
)

var (
	moneyPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	orderStatuses = []any{
		servers.OrderStatusPendingVerification, servers.OrderStatusQueued, servers.OrderStatusWorking,
		servers.OrderStatusReady, servers.OrderStatusPaid, servers.OrderStatusCancelled,
	}
	staffRoles = []any{
		servers.StaffRoleAdmin, servers.StaffRoleCashier, servers.StaffRoleGreeter,
		servers.StaffRoleBarista, servers.StaffRoleWasher,
	}
	inventoryCategories = []any{
		servers.InventoryCategoryDrinks, servers.InventoryCategorySnacks, servers.InventoryCategoryCarCare,
	}
)

type validatable interface {
	validate() error
}

// bindBody decodes the JSON body into dst and runs its rules. Both failures
// are validation errors.
func bindBody[T any, P interface {
	*T
	validatable
}](c echo.Context) (T, error) {
	var body T
	if err := c.Bind(&body); err != nil {
		return body, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := P(&body).validate(); err != nil {
		return body, err
	}
	return body, nil
}

type loginRequest servers.LoginRequest

func (r *loginRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Pin, validation.Required, validation.Length(4, 4), is.Digit),
	)
}

type newStaffOrderRequest servers.NewStaffOrder

func (r *newStaffOrderRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TokenNumber, validation.Required, validation.Min(1)),
		validation.Field(&r.CustomerName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.PlateNumber, validation.NilOrNotEmpty, validation.Length(1, 20)),
		validation.Field(&r.Price, validation.Required, validation.Match(moneyPattern)),
	)
}

type newKioskOrderRequest servers.NewKioskOrder

func (r *newKioskOrderRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TokenNumber, validation.Required, validation.Min(1)),
	)
}

type verifyOrderRequest servers.VerifyOrder

// Identifiers are checked when they are converted to kernel.UUID.
func (r *verifyOrderRequest) validate() error {
	return nil
}

type newOrderItemRequest servers.NewOrderItem

func (r *newOrderItemRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Quantity, validation.Min(1), validation.Max(order.MaxLineQuantity)),
	)
}

type advanceOrderRequest servers.AdvanceOrder

func (r *advanceOrderRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.Required, validation.In(orderStatuses...)),
	)
}

type payOrderRequest servers.PayOrder

func (r *payOrderRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.WasherName, validation.Required, validation.Length(1, 100)),
	)
}

type newExpenseRequest servers.NewExpense

func (r *newExpenseRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Description, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Amount, validation.Required, validation.Match(moneyPattern)),
	)
}

type resizeTokenPoolRequest servers.ResizeTokenPool

func (r *resizeTokenPoolRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Size, validation.Required, validation.Min(1)),
	)
}

type newStaffMemberRequest servers.NewStaffMember

func (r *newStaffMemberRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Role, validation.Required, validation.In(staffRoles...)),
		validation.Field(&r.Pin, validation.NilOrNotEmpty, validation.Length(4, 4), is.Digit),
	)
}

type setStaffActiveRequest servers.SetStaffActive

func (r *setStaffActiveRequest) validate() error {
	return nil
}

type newVehicleTypeRequest servers.NewVehicleType

func (r *newVehicleTypeRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.SortOrder, validation.Min(0)),
	)
}

type newServiceRequest servers.NewService

func (r *newServiceRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 500)),
	)
}

type servicePriceRequest servers.ServicePrice

func (r *servicePriceRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Price, validation.Required, validation.Match(moneyPattern)),
	)
}

type newInventoryItemRequest servers.NewInventoryItem

func (r *newInventoryItemRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Price, validation.Required, validation.Match(moneyPattern)),
		validation.Field(&r.StockQty, validation.Min(0)),
		validation.Field(&r.Category, validation.Required, validation.In(inventoryCategories...)),
	)
}

type updateServiceRequest servers.UpdateService

func (r *updateServiceRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 500)),
	)
}

type updateInventoryItemRequest servers.UpdateInventoryItem

func (r *updateInventoryItemRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Price, validation.Required, validation.Match(moneyPattern)),
		validation.Field(&r.StockQty, validation.Min(0)),
		validation.Field(&r.Category, validation.Required, validation.In(inventoryCategories...)),
	)
}

type updateStaffMemberRequest servers.UpdateStaffMember

func (r *updateStaffMemberRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Role, validation.Required, validation.In(staffRoles...)),
		validation.Field(&r.Pin, validation.NilOrNotEmpty, validation.Length(4, 4), is.Digit),
	)
}

type updateSettingRequest servers.UpdateSetting

func (r *updateSettingRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value, validation.Required, validation.RuneLength(1, setting.MaxValueLength)),
	)
}

type newCafeOrderRequest servers.NewCafeOrder

func (r *newCafeOrderRequest) validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.TokenNumber, validation.Required, validation.Min(1)),
		validation.Field(&r.Items, validation.Required, validation.Length(1, commands.MaxCafeLines)),
	); err != nil {
		return err
	}

	for i := range r.Items {
		item := &r.Items[i]
		if err := validation.ValidateStruct(item,
			validation.Field(&item.Quantity, validation.Required, validation.Min(1), validation.Max(order.MaxLineQuantity)),
		); err != nil {
			return validation.Errors{fmt.Sprintf("items[%d]", i): err}
		}
	}
	return nil
}
