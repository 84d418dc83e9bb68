package commands_test

import (
	"context"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/expense"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/setting"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTokenRepository struct{ mock.Mock }

func (m *MockTokenRepository) Add(ctx context.Context, tk *token.Token) error {
	return m.Called(ctx, tk).Error(0)
}

func (m *MockTokenRepository) Update(ctx context.Context, tk *token.Token) error {
	return m.Called(ctx, tk).Error(0)
}

func (m *MockTokenRepository) Remove(ctx context.Context, number int) error {
	return m.Called(ctx, number).Error(0)
}

func (m *MockTokenRepository) Get(ctx context.Context, number int) (*token.Token, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Token), args.Error(1)
}

func (m *MockTokenRepository) GetForUpdate(ctx context.Context, number int) (*token.Token, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Token), args.Error(1)
}

func (m *MockTokenRepository) GetAll(ctx context.Context) ([]*token.Token, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*token.Token), args.Error(1)
}

func (m *MockTokenRepository) CompareAndSwapStatus(
	ctx context.Context,
	number int,
	expected, next token.Status,
	jobID *kernel.UUID,
) error {
	return m.Called(ctx, number, expected, next, jobID).Error(0)
}

func (m *MockTokenRepository) Release(ctx context.Context, number int, jobID kernel.UUID) error {
	return m.Called(ctx, number, jobID).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Item), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLiveByTokenNumber(ctx context.Context, number int) ([]*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddVehicleType(ctx context.Context, v *catalog.VehicleType) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockCatalogRepository) GetVehicleType(ctx context.Context, id kernel.UUID) (*catalog.VehicleType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.VehicleType), args.Error(1)
}

func (m *MockCatalogRepository) AddService(ctx context.Context, s *catalog.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCatalogRepository) GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockCatalogRepository) SetServicePrice(ctx context.Context, p *catalog.ServicePrice) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogRepository) GetServicePrice(
	ctx context.Context,
	serviceID, vehicleTypeID kernel.UUID,
) (*catalog.ServicePrice, error) {
	args := m.Called(ctx, serviceID, vehicleTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ServicePrice), args.Error(1)
}

func (m *MockCatalogRepository) AddInventoryItem(ctx context.Context, i *catalog.InventoryItem) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockCatalogRepository) GetInventoryItem(ctx context.Context, id kernel.UUID) (*catalog.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.InventoryItem), args.Error(1)
}

func (m *MockCatalogRepository) UpdateService(ctx context.Context, s *catalog.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCatalogRepository) UpdateInventoryItem(ctx context.Context, i *catalog.InventoryItem) error {
	return m.Called(ctx, i).Error(0)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStaffRepository) GetActiveByName(ctx context.Context, name string) (*staff.Staff, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetAllActiveWithPIN(ctx context.Context) ([]*staff.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetAllWithPIN(ctx context.Context) ([]*staff.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.Staff), args.Error(1)
}

type MockExpenseRepository struct{ mock.Mock }

func (m *MockExpenseRepository) Add(ctx context.Context, e *expense.Expense) error {
	return m.Called(ctx, e).Error(0)
}

type MockSettingRepository struct{ mock.Mock }

func (m *MockSettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*setting.Setting), args.Error(1)
}

func (m *MockSettingRepository) Update(ctx context.Context, s *setting.Setting) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSettingRepository) AddMissing(ctx context.Context, settings []*setting.Setting) (int, error) {
	args := m.Called(ctx, settings)
	return args.Int(0), args.Error(1)
}

type MockChangeFeedRepository struct{ mock.Mock }

func (m *MockChangeFeedRepository) LockUnpublished(ctx context.Context, limit int) ([]change.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]change.Event), args.Error(1)
}

func (m *MockChangeFeedRepository) MarkPublished(ctx context.Context, events []change.Event) error {
	return m.Called(ctx, events).Error(0)
}

func (m *MockChangeFeedRepository) PurgePublished(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockChangePublisher struct{ mock.Mock }

func (m *MockChangePublisher) Publish(ctx context.Context, event change.Event) error {
	return m.Called(ctx, event).Error(0)
}

// MockUoW satisfies every unit of work interface the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) TokenRepository() ports.TokenRepository {
	return m.Called().Get(0).(ports.TokenRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}

func (m *MockUoW) ExpenseRepository() ports.ExpenseRepository {
	return m.Called().Get(0).(ports.ExpenseRepository)
}

func (m *MockUoW) SettingRepository() ports.SettingRepository {
	return m.Called().Get(0).(ports.SettingRepository)
}

func (m *MockUoW) ChangeFeedRepository() ports.ChangeFeedRepository {
	return m.Called().Get(0).(ports.ChangeFeedRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockTokenUoWFactory struct{ mock.Mock }

func (m *MockTokenUoWFactory) Create() commands.TokenUoW {
	return m.Called().Get(0).(commands.TokenUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	return m.Called().Get(0).(commands.StaffUoW)
}

type MockExpenseUoWFactory struct{ mock.Mock }

func (m *MockExpenseUoWFactory) Create() commands.ExpenseUoW {
	return m.Called().Get(0).(commands.ExpenseUoW)
}

type MockSettingUoWFactory struct{ mock.Mock }

func (m *MockSettingUoWFactory) Create() commands.SettingUoW {
	return m.Called().Get(0).(commands.SettingUoW)
}

type MockChangeFeedUoWFactory struct{ mock.Mock }

func (m *MockChangeFeedUoWFactory) Create() commands.ChangeFeedUoW {
	return m.Called().Get(0).(commands.ChangeFeedUoW)
}

// repos bundles one mock of each repository behind a single unit of work.
type repos struct {
	uow      *MockUoW
	tokens   *MockTokenRepository
	orders   *MockOrderRepository
	catalog  *MockCatalogRepository
	staff    *MockStaffRepository
	expenses *MockExpenseRepository
	settings *MockSettingRepository
	feed     *MockChangeFeedRepository
}

func newRepos() repos {
	r := repos{
		uow:      new(MockUoW),
		tokens:   new(MockTokenRepository),
		orders:   new(MockOrderRepository),
		catalog:  new(MockCatalogRepository),
		staff:    new(MockStaffRepository),
		expenses: new(MockExpenseRepository),
		settings: new(MockSettingRepository),
		feed:     new(MockChangeFeedRepository),
	}
	r.uow.On("TokenRepository").Return(r.tokens).Maybe()
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	r.uow.On("CatalogRepository").Return(r.catalog).Maybe()
	r.uow.On("StaffRepository").Return(r.staff).Maybe()
	r.uow.On("ExpenseRepository").Return(r.expenses).Maybe()
	r.uow.On("SettingRepository").Return(r.settings).Maybe()
	r.uow.On("ChangeFeedRepository").Return(r.feed).Maybe()
	return r
}

func (r repos) assertExpectations(t mock.TestingT) {
	r.uow.AssertExpectations(t)
	r.tokens.AssertExpectations(t)
	r.orders.AssertExpectations(t)
	r.catalog.AssertExpectations(t)
	r.staff.AssertExpectations(t)
	r.expenses.AssertExpectations(t)
	r.settings.AssertExpectations(t)
	r.feed.AssertExpectations(t)
}

func (r repos) orderFactory() *MockOrderUoWFactory {
	f := new(MockOrderUoWFactory)
	f.On("Create").Return(r.uow)
	return f
}

func (r repos) tokenFactory() *MockTokenUoWFactory {
	f := new(MockTokenUoWFactory)
	f.On("Create").Return(r.uow)
	return f
}

func session(name string, role staff.Role) staff.Session {
	return staff.Session{StaffID: kernel.NewUUID(), Name: name, Role: role}
}
