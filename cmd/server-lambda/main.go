package main

import (
	"context"
	"log"

	"github.com/HegryLuis/Voice-to-Text/app"
	"github.com/HegryLuis/Voice-to-Text/app/config"
	"github.com/HegryLuis/Voice-to-Text/transcribe"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

var ginLambda *ginadapter.GinLambda

// init runs once per Lambda container (cold start)
func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := app.MustOpenDB(cfg)

	a := app.New(
		cfg,
		app.NewPostgresStore(db),
		transcribe.NewAssemblyAIClient(cfg.AssemblyAI.APIKey),
		app.NewStripeClient(cfg.Stripe),
	)

	router, err := app.NewRouter(a)
	if err != nil {
		log.Fatalf("failed to initialize router: %v", err)
	}

	ginLambda = ginadapter.New(router)
}

// Handler is the Lambda entrypoint for API Gateway REST/HTTP API (proxy integration)
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(Handler)
}
