package app

import (
	"context"

	"github.com/HegryLuis/Voice-to-Text/app/config"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// PaymentClient creates hosted checkout sessions with the payment provider.
type PaymentClient interface {
	// CreateCheckoutSession requests a single-use payment session tagged
	// with the user's identity and returns its redirect URL.
	CreateCheckoutSession(ctx context.Context, userID string) (string, error)
}

// StripeClient implements PaymentClient over the Stripe API.
type StripeClient struct {
	cfg config.StripeConfig
}

// NewStripeClient wires the Stripe API key and returns a checkout client.
func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	stripe.Key = cfg.SecretKey
	return &StripeClient{cfg: cfg}
}

func (s *StripeClient) CreateCheckoutSession(ctx context.Context, userID string) (string, error) {
	returnURL := s.cfg.PublicBaseURL + "/dashboard"

	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(returnURL),
		CancelURL:  stripe.String(returnURL),
	}
	params.Context = ctx
	// The webhook attributes the completed payment back to this user.
	params.AddMetadata("userId", userID)

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
