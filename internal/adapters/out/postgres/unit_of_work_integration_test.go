package postgres_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	postgres_adapter "github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/changefeed"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/logging"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.dsn = dsn

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, tokens, row_changes").Error
	suite.Require().NoError(err)

	tk, err := token.NewToken(1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Exec("INSERT INTO tokens (id, status) VALUES (?, ?)", tk.Number(), tk.Status().String()).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func newOrder(tokenNumber int) *order.Order {
	o, err := order.NewStaffOrder(
		kernel.NewUUID(),
		tokenNumber,
		kernel.NewUUID(),
		order.Customer{Name: "Ana", PlateNumber: "ABC 123"},
		order.ServiceSelection{ServiceID: kernel.NewUUID(), Name: "Basic Wash", Price: kernel.MustMoney("250")},
		"Greta",
		time.Now(),
	)
	if err != nil {
		panic(err)
	}
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(table string) int64 {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
}

// The token claim, the order and the outbox rows commit together.
func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesOutboxAtomically() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := newOrder(1)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TokenRepository().CompareAndSwapStatus(ctx, 1, token.Available, token.Active, o.ID().Ptr()))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	// Nothing is visible outside the transaction yet.
	suite.Equal(int64(0), suite.countRows("row_changes"))

	suite.Require().NoError(uow.Commit(ctx))

	// token update, order insert, service line insert
	suite.Equal(int64(3), suite.countRows("row_changes"))

	feed := suite.factory.Create()
	suite.Require().NoError(feed.Begin(ctx))
	events, err := feed.ChangeFeedRepository().LockUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)

	tables := map[string]change.Kind{}
	for _, e := range events {
		tables[e.Table] = e.EventType
		suite.NotEmpty(e.Row)
	}
	suite.Equal(change.Update, tables[change.TableTokens])
	suite.Equal(change.Insert, tables[change.TableOrders])
	suite.Equal(change.Insert, tables[change.TableOrderItems])

	suite.Require().NoError(feed.ChangeFeedRepository().MarkPublished(ctx, events))
	suite.Require().NoError(feed.Commit(ctx))

	var pending int64
	suite.Require().NoError(suite.db.Table("row_changes").Where("published_at IS NULL").Count(&pending).Error)
	suite.Equal(int64(0), pending)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := newOrder(1)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TokenRepository().CompareAndSwapStatus(ctx, 1, token.Available, token.Active, o.ID().Ptr()))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows("orders"))
	suite.Equal(int64(0), suite.countRows("row_changes"))

	tk, err := suite.factory.Create().TokenRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.True(tk.IsAvailable())
}

// Two relays draining the outbox at once never receive the same row.
func (suite *UnitOfWorkIntegrationTestSuite) TestLockUnpublished_SkipsLockedRows() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder(2)))
	suite.Require().NoError(uow.Commit(ctx))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	defer first.Rollback(ctx) //nolint:errcheck // test cleanup

	locked, err := first.ChangeFeedRepository().LockUnpublished(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	defer second.Rollback(ctx) //nolint:errcheck // test cleanup

	rest, err := second.ChangeFeedRepository().LockUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.False(rest[0].ID.IsEqual(locked[0].ID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_NotifiesListener() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notified atomic.Int32
	listener := changefeed.NewListener(suite.dsn, logging.New("error"))
	go func() {
		_ = listener.Listen(ctx, func() { notified.Add(1) })
	}()

	// Give the listener time to subscribe.
	time.Sleep(500 * time.Millisecond)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder(3)))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Eventually(func() bool { return notified.Load() > 0 }, 5*time.Second, 50*time.Millisecond)
}

// The live-token index backs the token claim: a token number can carry one
// live order, however the insert got there.
func (suite *UnitOfWorkIntegrationTestSuite) TestLiveTokenIndex_OneLiveOrderPerToken() {
	ctx := context.Background()

	first := newOrder(5)
	paid := newOrder(5)
	suite.Require().NoError(paid.MarkPaid("Wally", "Cass", time.Now()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, paid))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.OrderRepository().Add(ctx, newOrder(5))
	suite.Require().ErrorIs(err, token.ErrTokenUnavailable)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(2), suite.countRows("orders"))

	// Once the first order is closed the token takes a new one.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(first.Cancel("Cass"))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, first))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder(5)))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsRepeatable() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.db))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
