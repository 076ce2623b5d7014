package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	redisstore "commerce/internal/adapters/out/redis"
	"commerce/internal/core/domain/model/kernel"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SessionStoreIntegrationTestSuite provides integration tests for the Redis
// session store using a real Redis container.
type SessionStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
	store     *redisstore.RedisSessionStore
}

func (suite *SessionStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379")
	suite.Require().NoError(err)

	suite.client = goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
}

func (suite *SessionStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())

	store, err := redisstore.NewRedisSessionStore(suite.client, time.Hour)
	suite.Require().NoError(err)
	suite.store = store
}

func (suite *SessionStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SessionStoreIntegrationTestSuite) TestGet_UnknownSession_ReturnsEmptySession() {
	ctx := context.Background()

	session, err := suite.store.Get(ctx, "fresh-session")
	suite.Require().NoError(err)

	suite.Equal("fresh-session", session.ID())
	suite.Nil(session.ActiveOrderID())
}

func (suite *SessionStoreIntegrationTestSuite) TestSetActiveOrder_ThenGet_ReturnsBoundSession() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	err := suite.store.SetActiveOrder(ctx, "session-1", orderID)
	suite.Require().NoError(err)

	session, err := suite.store.Get(ctx, "session-1")
	suite.Require().NoError(err)

	suite.Require().NotNil(session.ActiveOrderID())
	suite.True(orderID.IsEqual(*session.ActiveOrderID()))
}

func (suite *SessionStoreIntegrationTestSuite) TestUnsetActiveOrder_RemovesBinding() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.store.SetActiveOrder(ctx, "session-1", orderID))
	suite.Require().NoError(suite.store.UnsetActiveOrder(ctx, "session-1"))

	session, err := suite.store.Get(ctx, "session-1")
	suite.Require().NoError(err)
	suite.Nil(session.ActiveOrderID())
}

func (suite *SessionStoreIntegrationTestSuite) TestGet_CorruptBinding_ReturnsEmptySession() {
	ctx := context.Background()

	err := suite.client.Set(ctx, "session:session-1:active_order", "not-a-uuid", time.Hour).Err()
	suite.Require().NoError(err)

	session, err := suite.store.Get(ctx, "session-1")
	suite.Require().NoError(err)
	suite.Nil(session.ActiveOrderID())
}

func (suite *SessionStoreIntegrationTestSuite) TestSessionsAreIsolated() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.store.SetActiveOrder(ctx, "session-1", orderID))

	other, err := suite.store.Get(ctx, "session-2")
	suite.Require().NoError(err)
	suite.Nil(other.ActiveOrderID())
}

func TestSessionStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreIntegrationTestSuite))
}
