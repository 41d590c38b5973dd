package checkoutControllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

// StripeProvider implements Provider on Stripe hosted Checkout.
type StripeProvider struct {
	currency string
}

// NewStripeProviderFromEnv configures the Stripe client from
// STRIPE_SECRET_KEY. Returns nil when the key is unset: checkout then
// degrades to a user-visible "not configured" message rather than a
// startup failure.
func NewStripeProviderFromEnv() *StripeProvider {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil
	}

	stripe.Key = key
	// Explicit timeout, no automatic retries: a retried session create
	// risks charging the customer twice.
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: 15 * time.Second},
		MaxNetworkRetries: stripe.Int64(0),
	}))

	currency := os.Getenv("STRIPE_CURRENCY")
	if currency == "" {
		currency = "usd"
	}
	return &StripeProvider{currency: currency}
}

func (p *StripeProvider) CreateSession(ctx context.Context, in SessionInput) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(in.Reference),
		SuccessURL:        stripe.String(in.SuccessURL),
		CancelURL:         stripe.String(in.CancelURL),
	}
	params.Context = ctx

	for _, line := range in.Lines {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(line.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(p.currency),
				UnitAmount: stripe.Int64(toCents(line.UnitPrice)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
			},
		})
	}

	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}
	return &Session{ID: s.ID, URL: s.URL, Metadata: s.Metadata}, nil
}

func (p *StripeProvider) GetSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent.payment_method")

	s, err := session.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("stripe: retrieve checkout session: %w", err)
	}

	out := &Session{
		ID:       s.ID,
		URL:      s.URL,
		Paid:     s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Metadata: s.Metadata,
	}
	if s.PaymentIntent != nil && s.PaymentIntent.PaymentMethod != nil && s.PaymentIntent.PaymentMethod.Card != nil {
		out.CardBrand = string(s.PaymentIntent.PaymentMethod.Card.Brand)
		out.CardLast4 = s.PaymentIntent.PaymentMethod.Card.Last4
	}
	return out, nil
}

// toCents converts a 2-decimal price to the provider's integer minor units.
func toCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
