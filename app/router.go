// Package app wires shared HTTP routes for both local and Lambda execution.
package app

import (
	"time"

	"github.com/HegryLuis/Voice-to-Text/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the shared HTTP router for both local and Lambda execution.
func NewRouter(a *App) (*gin.Engine, error) {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", Health)
	// The payment provider authenticates itself with a signature header,
	// not a bearer token, so the webhook stays outside the auth group.
	router.POST("/webhook/payment", a.StripeWebhook)

	verifier, err := auth.NewVerifierFromEnv()
	if err != nil && !auth.AuthDisabled() {
		return nil, err
	}

	protected := router.Group("/")
	protected.Use(auth.Middleware(verifier, auth.MiddlewareConfig{}))
	protected.GET("/me", a.Me)
	protected.GET("/dashboard", a.Dashboard)
	protected.POST("/transcribe", a.Transcribe)
	protected.GET("/checkout", a.CreateCheckoutSession)

	return router, nil
}
