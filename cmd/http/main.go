package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/app/drivers/database"
	"pod-tracker-service/internal/app/drivers/logger"
	"pod-tracker-service/internal/app/server"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		logrus.Fatalf("Error while initializing zap logger: %v", err)
	}
	defer log.Sync()

	connector := database.NewMongoConnector(driverConfig.MongoDB, log)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	mongoDB, err := connector.Database(connectCtx)
	cancelConnect()
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}

	app := server.BuildApp(config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})
	server.EnsureIndexes(context.Background(), app, log)

	httpServer := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           app.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started",
			zap.String("port", internalConfig.App.Port),
			zap.String("environment", internalConfig.App.Env),
			zap.String("version", internalConfig.App.Version),
		)
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = httpServer.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = connector.Disconnect(shutdownCtx)
	if err != nil {
		log.Error("Failed to disconnect from mongo database", zap.Error(err))
	}

	logrus.Println("Server exiting")
}
