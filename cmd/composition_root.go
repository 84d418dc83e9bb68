package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpin "github.com/jetzoperations-gif/JETZ-Final/internal/adapters/in/http"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/in/ws"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/fanout"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/natsbus"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/changefeed"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/rabbitmq"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/queries"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/setting"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// systemSession acts for start-up tasks that run before anyone has logged in.
var systemSession = staff.Session{Name: "system", Role: staff.RoleAdmin}

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	hub       *ws.Hub
	nats      *natsbus.Publisher
	rabbit    *rabbitmq.Publisher
	publisher *fanout.Publisher
}

// NewCompositionRoot connects the configured change targets. The screen hub is
// always a target; NATS and RabbitMQ join when their URLs are set.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hub:        ws.NewHub(logger),
	}

	targets := []fanout.Target{{Name: "screens", Publisher: c.hub}}

	if config.NatsURL != "" {
		p, err := natsbus.NewPublisher(ctx, natsbus.DefaultConfig(config.NatsURL))
		if err != nil {
			c.Close()
			return nil, err
		}
		c.nats = p
		targets = append(targets, fanout.Target{Name: "nats", Publisher: p, Required: true})
	}

	if config.RabbitMQURL != "" {
		p, err := rabbitmq.Dial(config.RabbitMQURL)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.rabbit = p
		targets = append(targets, fanout.Target{Name: "rabbitmq", Publisher: p, Required: true})
	}

	publisher, err := fanout.NewPublisher(logger, targets...)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.publisher = publisher
	logger.Info("change targets configured", "targets", publisher.Targets())

	return c, nil
}

// Close disconnects the change targets and the screens.
func (c *CompositionRoot) Close() {
	if c.rabbit != nil {
		c.rabbit.Close()
	}
	if c.nats != nil {
		c.nats.Close()
	}
	c.hub.Close()
}

func (c *CompositionRoot) CreateCreateStaffOrderCommandHandler() commands.CreateStaffOrderCommandHandler {
	return commands.NewCreateStaffOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateKioskOrderCommandHandler() commands.CreateKioskOrderCommandHandler {
	return commands.NewCreateKioskOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateVerifyKioskOrderCommandHandler() commands.VerifyKioskOrderCommandHandler {
	return commands.NewVerifyKioskOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectKioskOrderCommandHandler() commands.RejectKioskOrderCommandHandler {
	return commands.NewRejectKioskOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddConsumableCommandHandler() commands.AddConsumableCommandHandler {
	return commands.NewAddConsumableCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveConsumableCommandHandler() commands.RemoveConsumableCommandHandler {
	return commands.NewRemoveConsumableCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCafeOrderCommandHandler() commands.CreateCafeOrderCommandHandler {
	return commands.NewCreateCafeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResizeTokenPoolCommandHandler() commands.ResizeTokenPoolCommandHandler {
	return commands.NewResizeTokenPoolCommandHandler(c.tokenUoWFactory())
}

func (c *CompositionRoot) CreateReconcileTokensCommandHandler() commands.ReconcileTokensCommandHandler {
	return commands.NewReconcileTokensCommandHandler(c.tokenUoWFactory())
}

func (c *CompositionRoot) CreateCatalogCommandHandler() commands.CatalogCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCatalogCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	return commands.NewCreateStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateSetStaffActiveCommandHandler() commands.SetStaffActiveCommandHandler {
	return commands.NewSetStaffActiveCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStaffCommandHandler() commands.UpdateStaffCommandHandler {
	return commands.NewUpdateStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStaffCommandHandler() commands.DeleteStaffCommandHandler {
	return commands.NewDeleteStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSettingCommandHandler() commands.UpdateSettingCommandHandler {
	return commands.NewUpdateSettingCommandHandler(c.settingUoWFactory())
}

func (c *CompositionRoot) CreateSeedSettingsCommandHandler() commands.SeedSettingsCommandHandler {
	return commands.NewSeedSettingsCommandHandler(c.settingUoWFactory())
}

func (c *CompositionRoot) CreateLogExpenseCommandHandler() commands.LogExpenseCommandHandler {
	var f commands.ExpenseUoWFactory = FuncExpenseUoWFactory(func() commands.ExpenseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogExpenseCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayChangesCommandHandler() commands.RelayChangesCommandHandler {
	return commands.NewRelayChangesCommandHandler(c.changeFeedUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreatePurgeChangesCommandHandler() commands.PurgeChangesCommandHandler {
	return commands.NewPurgeChangesCommandHandler(c.changeFeedUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTokenBoardQueryHandler() queries.GetTokenBoardQueryHandler {
	return queries.NewGetTokenBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySummaryQueryHandler() queries.GetDailySummaryQueryHandler {
	return queries.NewGetDailySummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPayrollQueryHandler() queries.GetPayrollQueryHandler {
	return queries.NewGetPayrollQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStaffQueryHandler() queries.ListStaffQueryHandler {
	return queries.NewListStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateStaffQueryHandler() queries.AuthenticateStaffQueryHandler {
	return queries.NewAuthenticateStaffQueryHandler(c.uowFactory.Create().StaffRepository())
}

func (c *CompositionRoot) CreateGetCafeMenuQueryHandler() queries.GetCafeMenuQueryHandler {
	return queries.NewGetCafeMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListSettingsQueryHandler() queries.ListSettingsQueryHandler {
	return queries.NewListSettingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueSeriesQueryHandler() queries.GetRevenueSeriesQueryHandler {
	return queries.NewGetRevenueSeriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServiceMixQueryHandler() queries.GetServiceMixQueryHandler {
	return queries.NewGetServiceMixQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesQueryHandler() queries.GetSalesQueryHandler {
	return queries.NewGetSalesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateRelayChangesCommandHandler(),
		c.CreateReconcileTokensCommandHandler(),
		c.CreatePurgeChangesCommandHandler(),
		c.config.Jobs,
		c.logger,
	)
}

func (c *CompositionRoot) CreateChangeListener() *changefeed.Listener {
	return changefeed.NewListener(c.config.DSN(), c.logger)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	location, err := c.config.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.config.Timezone, err)
	}

	sessions, err := httpin.NewSessionIssuer(c.config.JWTSecret, c.config.SessionTTL)
	if err != nil {
		return nil, err
	}

	server, err := httpin.NewServer(httpin.Handlers{
		CreateStaffOrder:  c.CreateCreateStaffOrderCommandHandler(),
		CreateKioskOrder:  c.CreateCreateKioskOrderCommandHandler(),
		VerifyKioskOrder:  c.CreateVerifyKioskOrderCommandHandler(),
		RejectKioskOrder:  c.CreateRejectKioskOrderCommandHandler(),
		AddConsumable:     c.CreateAddConsumableCommandHandler(),
		RemoveConsumable:  c.CreateRemoveConsumableCommandHandler(),
		AdvanceOrder:      c.CreateAdvanceOrderCommandHandler(),
		MarkOrderPaid:     c.CreateMarkOrderPaidCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		LogExpense:        c.CreateLogExpenseCommandHandler(),
		ResizeTokenPool:   c.CreateResizeTokenPoolCommandHandler(),
		CreateStaff:       c.CreateCreateStaffCommandHandler(),
		SetStaffActive:    c.CreateSetStaffActiveCommandHandler(),
		UpdateStaff:       c.CreateUpdateStaffCommandHandler(),
		DeleteStaff:       c.CreateDeleteStaffCommandHandler(),
		UpdateSetting:     c.CreateUpdateSettingCommandHandler(),
		CreateCafeOrder:   c.CreateCreateCafeOrderCommandHandler(),
		Catalog:           c.CreateCatalogCommandHandler(),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetTokenBoard:     c.CreateGetTokenBoardQueryHandler(),
		GetCatalog:        c.CreateGetCatalogQueryHandler(),
		GetDailySummary:   c.CreateGetDailySummaryQueryHandler(),
		GetPayroll:        c.CreateGetPayrollQueryHandler(),
		ListStaff:         c.CreateListStaffQueryHandler(),
		AuthenticateStaff: c.CreateAuthenticateStaffQueryHandler(),
		GetCafeMenu:       c.CreateGetCafeMenuQueryHandler(),
		ListSettings:      c.CreateListSettingsQueryHandler(),
		GetRevenueSeries:  c.CreateGetRevenueSeriesQueryHandler(),
		GetServiceMix:     c.CreateGetServiceMixQueryHandler(),
		GetSales:          c.CreateGetSalesQueryHandler(),
	}, sessions, location, c.logger)
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(httpin.RouterConfig{
		Server:   server,
		Sessions: sessions,
		Screens:  http.Handler(c.hub),
		Health:   c.ping,
		Logger:   c.logger,
	})
}

// Bootstrap fills an empty token pool, adds missing default settings and
// creates the first admin when the staff table is empty and ADMIN_PIN is set.
// Existing data is left alone.
func (c *CompositionRoot) Bootstrap(ctx context.Context) error {
	seed, err := commands.NewSeedSettingsCommand(systemSession, setting.Defaults())
	if err != nil {
		return err
	}
	added, err := c.CreateSeedSettingsCommandHandler().Handle(ctx, seed)
	if err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if added > 0 {
		c.logger.Info("default settings added", "count", added)
	}

	board, err := c.CreateGetTokenBoardQueryHandler().Handle(ctx, queries.NewGetTokenBoardQuery())
	if err != nil {
		return fmt.Errorf("read token pool: %w", err)
	}
	if len(board) == 0 {
		command, err := commands.NewResizeTokenPoolCommand(systemSession, c.config.TokenPoolSize)
		if err != nil {
			return err
		}
		if err := c.CreateResizeTokenPoolCommandHandler().Handle(ctx, command); err != nil {
			return fmt.Errorf("create token pool: %w", err)
		}
		c.logger.Info("token pool created", "size", c.config.TokenPoolSize)
	}

	if c.config.AdminPIN == "" {
		return nil
	}

	query, err := queries.NewListStaffQuery(false)
	if err != nil {
		return err
	}
	members, err := c.CreateListStaffQueryHandler().Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("read staff: %w", err)
	}
	if len(members) > 0 {
		return nil
	}

	command, err := commands.NewCreateStaffCommand(systemSession, kernel.NewUUID(), c.config.AdminName, staff.RoleAdmin, c.config.AdminPIN)
	if err != nil {
		return err
	}
	if err := c.CreateCreateStaffCommandHandler().Handle(ctx, command); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	c.logger.Info("admin created", "name", c.config.AdminName)
	return nil
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Join(errors.New("database unreachable"), err)
	}
	if c.rabbit != nil {
		if err := c.rabbit.Ping(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tokenUoWFactory() commands.TokenUoWFactory {
	return FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settingUoWFactory() commands.SettingUoWFactory {
	return FuncSettingUoWFactory(func() commands.SettingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) changeFeedUoWFactory() commands.ChangeFeedUoWFactory {
	return FuncChangeFeedUoWFactory(func() commands.ChangeFeedUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTokenUoWFactory func() commands.TokenUoW

func (f FuncTokenUoWFactory) Create() commands.TokenUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncExpenseUoWFactory func() commands.ExpenseUoW

func (f FuncExpenseUoWFactory) Create() commands.ExpenseUoW {
	return f()
}

type FuncChangeFeedUoWFactory func() commands.ChangeFeedUoW

func (f FuncChangeFeedUoWFactory) Create() commands.ChangeFeedUoW {
	return f()
}

type FuncSettingUoWFactory func() commands.SettingUoW

func (f FuncSettingUoWFactory) Create() commands.SettingUoW {
	return f()
}
