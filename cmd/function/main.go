package main

import (
	"context"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/app/drivers/database"
	"pod-tracker-service/internal/app/drivers/logger"
	"pod-tracker-service/internal/app/server"
	"pod-tracker-service/internal/pkg/constvars"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
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

	// Both live for the lifetime of the execution environment, so warm
	// invocations reuse the connection and the router.
	connector := database.NewMongoConnector(driverConfig.MongoDB, log)
	cachedApp := server.NewCachedApp(connector, log, driverConfig, internalConfig)
	adapter := httpadapter.New(cachedApp)

	lambda.Start(func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		if lambdaCtx, ok := lambdacontext.FromContext(ctx); ok {
			log.Debug("Function invoked",
				zap.String(constvars.LoggingRequestIDKey, lambdaCtx.AwsRequestID),
				zap.String(constvars.LoggingMethodKey, event.HTTPMethod),
				zap.String(constvars.LoggingEndpointKey, event.Path),
			)
		}
		return adapter.ProxyWithContext(ctx, event)
	})
}
