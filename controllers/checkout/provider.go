package checkoutControllers

import (
	"context"
	"errors"

	cartControllers "github.com/valleyautoparts/shop-api/controllers/cart"
	"github.com/valleyautoparts/shop-api/models"
)

var (
	// ErrSessionNotFound: the provider has no record of the session ID.
	ErrSessionNotFound = errors.New("checkout session not found")
	// ErrSessionUnpaid: the session exists but payment has not completed.
	ErrSessionUnpaid = errors.New("checkout session is not paid")
	// ErrAlreadyReconciled: an order already exists for this session.
	ErrAlreadyReconciled = errors.New("checkout session already reconciled")
)

// SessionInput is everything the hosted payment page needs to collect
// payment for an aggregated cart. Metadata rides along on the provider
// session so reconciliation can recover the item list and shipping snapshot
// even after the live cart is gone.
type SessionInput struct {
	Reference  string
	Username   string
	Lines      []cartControllers.Line
	Shipping   models.Address
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// Session is the provider-neutral view of a hosted checkout session.
type Session struct {
	ID        string
	URL       string
	Paid      bool
	CardBrand string
	CardLast4 string
	Metadata  map[string]string
}

// Provider is a hosted-checkout payment provider: create a session, send
// the customer to its URL, retrieve it by ID on return.
type Provider interface {
	CreateSession(ctx context.Context, in SessionInput) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
}
