package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"github.com/MikeMC777/amcmart-api/internal/app"
	"github.com/MikeMC777/amcmart-api/internal/config"
	"github.com/MikeMC777/amcmart-api/internal/logging"
)

func main() {
	cfg := config.Load()
	// No long-lived worker on Lambda: orders are written before responding.
	cfg.IntakeMode = "sync"
	cfg.GRPCHealthAddr = ""
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	a, err := app.New(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("startup failed")
	}

	adapter := ginadapter.New(a.Router)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
