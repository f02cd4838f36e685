package database

import (
	"context"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoConnector lazily opens one client and hands it to every caller until
// the driver reports the topology closed. Warm function invocations reuse it.
type MongoConnector struct {
	config config.MongoDB
	log    *zap.Logger

	mu       sync.Mutex
	client   *mongo.Client
	attempts uint64
	active   uint64
}

func NewMongoConnector(mongoConfig config.MongoDB, log *zap.Logger) *MongoConnector {
	return &MongoConnector{
		config: mongoConfig,
		log:    log,
	}
}

func (c *MongoConnector) Client(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.config.URI == "" {
		return nil, exceptions.ErrMongoDBMissingURI()
	}

	c.attempts++
	attempt := c.attempts

	client, err := mongo.Connect(ctx, c.clientOptions(attempt))
	if err != nil {
		return nil, exceptions.ErrMongoDBConnection(err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Disconnect fires the topology closed event, which takes the lock.
		go client.Disconnect(context.Background())
		return nil, exceptions.ErrMongoDBConnection(err)
	}

	c.client = client
	c.active = attempt
	c.log.Info("Successfully connected to mongo database",
		zap.String(constvars.LoggingDatabaseKey, c.config.DbName),
	)
	return client, nil
}

func (c *MongoConnector) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := c.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(c.config.DbName), nil
}

func (c *MongoConnector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func (c *MongoConnector) clientOptions(attempt uint64) *options.ClientOptions {
	monitor := &event.ServerMonitor{
		TopologyClosed: func(*event.TopologyClosedEvent) {
			c.invalidate(attempt)
		},
	}
	return options.Client().
		ApplyURI(c.config.URI).
		SetConnectTimeout(seconds(c.config.ConnectTimeoutInSeconds, 10)).
		SetServerSelectionTimeout(seconds(c.config.ServerSelectionTimeoutInSeconds, 5)).
		SetSocketTimeout(seconds(c.config.SocketTimeoutInSeconds, 45)).
		SetServerMonitor(monitor)
}

// invalidate drops the cached client if it still belongs to attempt, so the
// next caller reconnects.
func (c *MongoConnector) invalidate(attempt uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil || c.active != attempt {
		return
	}
	c.client = nil
	c.log.Warn("Mongo database connection closed, client cache cleared",
		zap.String(constvars.LoggingDatabaseKey, c.config.DbName),
	)
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}
