package main

import (
	"log"

	"github.com/HegryLuis/Voice-to-Text/app"
	"github.com/HegryLuis/Voice-to-Text/app/config"
	"github.com/HegryLuis/Voice-to-Text/transcribe"
)

func main() {
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
	router.Run("0.0.0.0:8080")
}
