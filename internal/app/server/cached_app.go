package server

import (
	"context"
	"net/http"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/utils"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MongoClientProvider interface {
	Client(ctx context.Context) (*mongo.Client, error)
}

// CachedApp builds the application on first use and keeps it for later
// invocations of the same process. The app is rebuilt whenever the provider
// hands out a different client, which happens after the old one closed.
type CachedApp struct {
	Provider       MongoClientProvider
	Log            *zap.Logger
	DriverConfig   *config.DriverConfig
	InternalConfig *config.InternalConfig
	Prepare        func(ctx context.Context, app *App)

	mu     sync.Mutex
	client *mongo.Client
	app    *App
}

func NewCachedApp(
	provider MongoClientProvider,
	logger *zap.Logger,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
) *CachedApp {
	cached := &CachedApp{
		Provider:       provider,
		Log:            logger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	cached.Prepare = func(ctx context.Context, app *App) {
		EnsureIndexes(ctx, app, logger)
	}
	return cached
}

func (c *CachedApp) App(ctx context.Context) (*App, error) {
	client, err := c.Provider.Client(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.app != nil && c.client == client {
		return c.app, nil
	}

	coldStart := c.app == nil
	app := BuildApp(config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        client.Database(c.DriverConfig.MongoDB.DbName),
		Logger:         c.Log,
		DriverConfig:   c.DriverConfig,
		InternalConfig: c.InternalConfig,
	})
	if c.Prepare != nil {
		c.Prepare(ctx, app)
	}

	c.client = client
	c.app = app
	c.Log.Info("Application built",
		zap.Bool(constvars.LoggingColdStartKey, coldStart),
		zap.String(constvars.LoggingDatabaseKey, c.DriverConfig.MongoDB.DbName),
	)
	return app, nil
}

// ServeHTTP answers with the error envelope when the app cannot be built,
// for instance when MONGO_URI is missing or the database is unreachable.
func (c *CachedApp) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app, err := c.App(r.Context())
	if err != nil {
		c.Log.Error("Failed to build application",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Error(err),
		)
		utils.BuildErrorResponse(c.Log, w, err, c.InternalConfig.App.IsProduction())
		return
	}
	app.Handler.ServeHTTP(w, r)
}
