package database

import (
	"context"
	"net/http"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestMongoConnector_MissingURI(t *testing.T) {
	connector := NewMongoConnector(config.MongoDB{DbName: "pod_tracker"}, zap.NewNop())

	client, err := connector.Client(context.Background())

	assert.Nil(t, client)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	assert.Contains(t, customErr.DevMessage, "MONGO_URI")
}

func TestMongoConnector_ReturnsCachedClient(t *testing.T) {
	connector := NewMongoConnector(config.MongoDB{URI: "mongodb://localhost:27017", DbName: "pod_tracker"}, zap.NewNop())
	cached := unconnectedClient(t)
	connector.client = cached
	connector.active = 1
	connector.attempts = 1

	client, err := connector.Client(context.Background())
	require.NoError(t, err)
	assert.Same(t, cached, client)

	db, err := connector.Database(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pod_tracker", db.Name())
}

func TestMongoConnector_Invalidate(t *testing.T) {
	connector := NewMongoConnector(config.MongoDB{URI: "mongodb://localhost:27017"}, zap.NewNop())
	connector.client = unconnectedClient(t)
	connector.active = 2
	connector.attempts = 2

	t.Run("Stale Attempt Is Ignored", func(t *testing.T) {
		connector.invalidate(1)
		assert.NotNil(t, connector.client)
	})

	t.Run("Active Attempt Clears Cache", func(t *testing.T) {
		connector.invalidate(2)
		assert.Nil(t, connector.client)
	})
}

func TestMongoConnector_DisconnectWithoutClient(t *testing.T) {
	connector := NewMongoConnector(config.MongoDB{}, zap.NewNop())
	assert.NoError(t, connector.Disconnect(context.Background()))
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 5*time.Second, seconds(0, 5))
	assert.Equal(t, 3*time.Second, seconds(3, 5))
}

// unconnectedClient builds a client without dialing; the driver connects
// lazily on the first operation.
func unconnectedClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Disconnect(context.Background())
	})
	return client
}
