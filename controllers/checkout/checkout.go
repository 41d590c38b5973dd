package checkoutControllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	cartControllers "github.com/valleyautoparts/shop-api/controllers/cart"
	orderControllers "github.com/valleyautoparts/shop-api/controllers/order"
	"github.com/valleyautoparts/shop-api/middleware"
	"github.com/valleyautoparts/shop-api/models"
	"gorm.io/gorm"
)

// Session-state key remembering the pending item list between redirecting
// to the provider and the success callback.
const pendingItemsKey = "pending_items"

// Metadata keys stored on the provider session.
const (
	metaUsername = "username"
	metaItems    = "items"
	metaShipName = "ship_name"
	metaLine1    = "ship_line1"
	metaLine2    = "ship_line2"
	metaCity     = "ship_city"
	metaState    = "ship_state"
	metaPostal   = "ship_postal"
)

func baseURL() string {
	if u := os.Getenv("BASE_URL"); u != "" {
		return strings.TrimRight(u, "/")
	}
	return "http://localhost:8080"
}

// GET /payment
func PaymentPageHandler(db *gorm.DB, carts *cartControllers.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := middleware.Username(c)

		lines, total, err := cartControllers.View(db, carts, username)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to load cart")
			return
		}

		var user models.User
		if err := db.First(&user, "username = ?", username).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to load profile")
			return
		}

		c.HTML(http.StatusOK, "payment.html", gin.H{
			"Username": username,
			"Lines":    lines,
			"Total":    total,
			"User":     user,
			"Banner":   middleware.PopFlash(c),
		})
	}
}

// POST /payment/checkout
// cart_open → checkout_initiated → provider_session_created. Every abort
// flashes a reason and returns to the cart or payment view; the shipping
// address is validated before any provider call is made.
func BeginCheckoutHandler(db *gorm.DB, carts *cartControllers.Store, provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := middleware.Username(c)

		abort := func(to, reason string) {
			middleware.Flash(c, reason)
			c.Redirect(http.StatusSeeOther, to)
		}

		if provider == nil {
			abort("/payment", "Payments are not configured on this server.")
			return
		}

		ids := carts.IDs(username)
		if len(ids) == 0 {
			abort("/cart", "Your cart is empty.")
			return
		}

		var shipping models.Address
		_ = c.ShouldBind(&shipping)
		if !shipping.Complete() {
			abort("/payment", "Please complete your shipping address (name, address, city, state, postal code).")
			return
		}

		lines, _, err := cartControllers.Aggregate(db, ids)
		if err != nil {
			abort("/payment", "Failed to price your cart, please try again.")
			return
		}
		if len(lines) == 0 {
			abort("/cart", "None of the items in your cart are available any more.")
			return
		}

		sess, err := provider.CreateSession(c.Request.Context(), SessionInput{
			Reference:  username,
			Username:   username,
			Lines:      lines,
			Shipping:   shipping,
			SuccessURL: baseURL() + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:  baseURL() + "/payment",
			Metadata: map[string]string{
				metaUsername: username,
				metaItems:    strings.Join(ids, ","),
				metaShipName: shipping.Name,
				metaLine1:    shipping.Line1,
				metaLine2:    shipping.Line2,
				metaCity:     shipping.City,
				metaState:    shipping.State,
				metaPostal:   shipping.PostalCode,
			},
		})
		if err != nil {
			abort("/payment", "Payment provider error: "+err.Error())
			return
		}

		// Remembered so reconciliation can recover the items even if the
		// provider metadata is unavailable.
		webSession := sessions.Default(c)
		webSession.Set(pendingItemsKey, strings.Join(ids, ","))
		_ = webSession.Save()

		c.Redirect(http.StatusSeeOther, sess.URL)
	}
}

// Reconcile turns a completed provider session into a persisted order and
// clears the live cart. The item list comes from the provider session
// metadata, falling back to fallbackItems (the pending list remembered in
// the web session) when the metadata is missing. Each failure mode is a
// distinct sentinel so the caller can tell the user what actually happened.
func Reconcile(ctx context.Context, db *gorm.DB, provider Provider, carts *cartControllers.Store, username, sessionID string, fallbackItems []string) (*models.Order, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	var existing models.Order
	err := db.Select("id").First(&existing, "payment_ref = ?", sessionID).Error
	if err == nil {
		return nil, ErrAlreadyReconciled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sess, err := provider.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Paid {
		return nil, ErrSessionUnpaid
	}
	if owner := sess.Metadata[metaUsername]; owner != "" && owner != username {
		return nil, ErrSessionNotFound
	}

	var ids []string
	for _, id := range strings.Split(sess.Metadata[metaItems], ",") {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = fallbackItems
	}

	order, err := orderControllers.PlaceOrder(db, orderControllers.PlaceOrderInput{
		Username: username,
		ItemIDs:  ids,
		Shipping: models.Address{
			Name:       sess.Metadata[metaShipName],
			Line1:      sess.Metadata[metaLine1],
			Line2:      sess.Metadata[metaLine2],
			City:       sess.Metadata[metaCity],
			State:      sess.Metadata[metaState],
			PostalCode: sess.Metadata[metaPostal],
		},
		CardBrand:  sess.CardBrand,
		CardLast4:  sess.CardLast4,
		PaymentRef: sess.ID,
	})
	if err != nil {
		// Two success callbacks for one session can both pass the pre-check;
		// the unique payment_ref index lets exactly one insert win.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyReconciled
		}
		return nil, fmt.Errorf("reconcile session %s: %w", sessionID, err)
	}

	carts.Clear(username)
	return order, nil
}

// GET /payment/success?session_id=...
// provider_session_completed → order_persisted.
func CheckoutSuccessHandler(db *gorm.DB, carts *cartControllers.Store, provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := middleware.Username(c)

		if provider == nil {
			middleware.Flash(c, "Payments are not configured on this server.")
			c.Redirect(http.StatusSeeOther, "/payment")
			return
		}

		webSession := sessions.Default(c)
		var fallbackItems []string
		if pending, ok := webSession.Get(pendingItemsKey).(string); ok && pending != "" {
			fallbackItems = strings.Split(pending, ",")
		}

		sessionID := c.Query("session_id")
		order, err := Reconcile(c.Request.Context(), db, provider, carts, username, sessionID, fallbackItems)
		switch {
		case errors.Is(err, ErrAlreadyReconciled):
			middleware.Flash(c, "This payment has already been processed.")
			c.Redirect(http.StatusSeeOther, "/orders")
			return
		case errors.Is(err, ErrSessionNotFound):
			middleware.Flash(c, "We could not find that checkout session.")
			c.Redirect(http.StatusSeeOther, "/orders")
			return
		case errors.Is(err, ErrSessionUnpaid):
			middleware.Flash(c, "Payment has not completed for this checkout.")
			c.Redirect(http.StatusSeeOther, "/payment")
			return
		case err != nil:
			log.Printf("❌ Checkout reconciliation failed for session %s: %v", sessionID, err)
			middleware.Flash(c, "We could not confirm your payment. If you were charged, contact support.")
			c.Redirect(http.StatusSeeOther, "/payment")
			return
		}

		webSession.Delete(pendingItemsKey)
		_ = webSession.Save()

		middleware.Flash(c, fmt.Sprintf("Order %s placed successfully. Thank you!", order.OrderRef))
		c.Redirect(http.StatusSeeOther, "/orders")
	}
}
