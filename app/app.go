package app

import (
	"github.com/HegryLuis/Voice-to-Text/app/config"
	"github.com/HegryLuis/Voice-to-Text/transcribe"
)

// App bundles the injected collaborators the HTTP handlers depend on:
// the entitlement store, the transcription provider, and the payment
// client. Tests substitute fakes for any of them.
type App struct {
	cfg         *config.Config
	store       Store
	transcriber transcribe.Provider
	payments    PaymentClient
}

func New(cfg *config.Config, store Store, transcriber transcribe.Provider, payments PaymentClient) *App {
	return &App{
		cfg:         cfg,
		store:       store,
		transcriber: transcriber,
		payments:    payments,
	}
}
