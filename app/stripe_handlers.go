package app

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/HegryLuis/Voice-to-Text/auth"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// CreateCheckoutSession starts a hosted payment session for the
// authenticated user. Users who already hold premium are redirected to
// the dashboard instead of being sold a second upgrade.
func (a *App) CreateCheckoutSession(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
		return
	}

	user, err := a.store.GetUser(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("checkout user lookup failed user=%s err=%v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	if user.IsPremium {
		c.Redirect(http.StatusTemporaryRedirect, a.cfg.Stripe.PublicBaseURL+"/dashboard")
		return
	}

	url, err := a.payments.CreateCheckoutSession(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("stripe checkout session failed user=%s err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		return
	}
	if url == "" {
		log.Printf("stripe checkout session missing url user=%s", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment session URL not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// StripeWebhook verifies inbound payment events and grants premium when
// a checkout completes. Event types other than checkout completion are
// acknowledged and ignored.
func (a *App) StripeWebhook(c *gin.Context) {
	const maxBodyBytes = int64(65536)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		log.Printf("stripe webhook read failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	endpointSecret := a.cfg.Stripe.WebhookSecret
	if endpointSecret == "" {
		log.Printf("stripe webhook secret missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook not configured"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		body,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		log.Printf("stripe webhook signature failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("stripe session unmarshal failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session payload"})
			return
		}

		userID := sess.Metadata["userId"]
		if userID == "" {
			log.Printf("stripe session missing userId metadata")
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id in session metadata"})
			return
		}

		// Setting the flag again on redelivery is a no-op, so the same
		// event can be processed more than once.
		if err := a.store.SetPremium(c.Request.Context(), userID); err != nil {
			log.Printf("premium upgrade failed user=%s err=%v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
			return
		}
		log.Printf("premium granted user=%s", userID)
	default:
		// Intentionally ignore unhandled events.
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
