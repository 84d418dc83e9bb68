package settingrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/settingrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/setting"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockChangeTracker struct {
	mock.Mock
}

func (m *MockChangeTracker) Track(kind change.Kind, table string, row any) {
	m.Called(kind, table, row)
}

type SettingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *settingrepo.GormSettingRepository
	tracker    *MockChangeTracker
}

func (suite *SettingRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&settingrepo.SettingDTO{}))
}

func (suite *SettingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE system_settings").Error)

	suite.tracker = new(MockChangeTracker)
	suite.tracker.On("Track", mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.repository = settingrepo.NewGormSettingRepository(suite.db, suite.tracker)
}

func (suite *SettingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SettingRepositoryIntegrationTestSuite) TestAddMissing_KeepsChangedValues() {
	ctx := context.Background()

	inserted, err := suite.repository.AddMissing(ctx, setting.Defaults())
	suite.Require().NoError(err)
	suite.Equal(len(setting.Defaults()), inserted)

	shopName, err := suite.repository.Get(ctx, "shop_name")
	suite.Require().NoError(err)
	suite.Require().NoError(shopName.Change("JETZ Makati"))
	suite.Require().NoError(suite.repository.Update(ctx, shopName))

	inserted, err = suite.repository.AddMissing(ctx, setting.Defaults())
	suite.Require().NoError(err)
	suite.Zero(inserted)

	got, err := suite.repository.Get(ctx, "shop_name")
	suite.Require().NoError(err)
	suite.Equal("JETZ Makati", got.Value())
	suite.NotEmpty(got.Description())

	suite.tracker.AssertCalled(suite.T(), "Track", change.Update, "system_settings", mock.Anything)
}

func (suite *SettingRepositoryIntegrationTestSuite) TestUnknownKey() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, "no_such_key")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	orphan, err := setting.NewSetting("no_such_key", "1", "")
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Update(ctx, orphan), errs.ErrObjectNotFound)
}

func TestSettingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SettingRepositoryIntegrationTestSuite))
}
