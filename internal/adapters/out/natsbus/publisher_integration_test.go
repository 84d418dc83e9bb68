package natsbus_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/natsbus"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PublisherIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	publisher *natsbus.Publisher
}

func (suite *PublisherIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2.10-alpine",
			Cmd:          []string{"-js"},
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForLog("Server is ready").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.PortEndpoint(ctx, "4222/tcp", "nats")
	suite.Require().NoError(err)

	suite.publisher, err = natsbus.NewPublisher(ctx, natsbus.DefaultConfig(endpoint))
	suite.Require().NoError(err)
}

func (suite *PublisherIntegrationTestSuite) TearDownSuite() {
	if suite.publisher != nil {
		suite.publisher.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PublisherIntegrationTestSuite) SetupTest() {
	stream, err := suite.publisher.Stream(context.Background())
	suite.Require().NoError(err)
	suite.Require().NoError(stream.Purge(context.Background()))
}

func (suite *PublisherIntegrationTestSuite) TestPublish_ReplayIsDeduplicated() {
	ctx := context.Background()
	event := change.Event{
		ID:         kernel.NewUUID(),
		Table:      change.TableTokens,
		EventType:  change.Update,
		Row:        json.RawMessage(`{"id":7,"status":"active"}`),
		OccurredAt: time.Now().UTC(),
	}

	suite.Require().NoError(suite.publisher.Publish(ctx, event))
	suite.Require().NoError(suite.publisher.Publish(ctx, event))

	stream, err := suite.publisher.Stream(ctx)
	suite.Require().NoError(err)
	info, err := stream.Info(ctx)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), info.State.Msgs)

	msg, err := stream.GetLastMsgForSubject(ctx, natsbus.Subject(change.TableTokens))
	suite.Require().NoError(err)
	suite.Equal("carwash.changes.tokens", msg.Subject)

	var decoded change.Event
	suite.Require().NoError(json.Unmarshal(msg.Data, &decoded))
	suite.Equal(event.ID, decoded.ID)
	suite.Equal(change.Update, decoded.EventType)
	suite.JSONEq(`{"id":7,"status":"active"}`, string(decoded.Row))
}

func (suite *PublisherIntegrationTestSuite) TestPublish_DistinctEventsAreKept() {
	ctx := context.Background()
	for _, table := range []string{change.TableOrders, change.TableOrderItems} {
		suite.Require().NoError(suite.publisher.Publish(ctx, change.Event{
			ID:         kernel.NewUUID(),
			Table:      table,
			EventType:  change.Insert,
			Row:        json.RawMessage(`{}`),
			OccurredAt: time.Now().UTC(),
		}))
	}

	stream, err := suite.publisher.Stream(ctx)
	suite.Require().NoError(err)
	info, err := stream.Info(ctx, jetstream.WithSubjectFilter(natsbus.SubjectPrefix+".>"))
	suite.Require().NoError(err)
	suite.Equal(uint64(2), info.State.Msgs)
	suite.Len(info.State.Subjects, 2)
}

func TestPublisherIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherIntegrationTestSuite))
}
