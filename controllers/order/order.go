package orderControllers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	cartControllers "github.com/valleyautoparts/shop-api/controllers/cart"
	"github.com/valleyautoparts/shop-api/models"
	"gorm.io/gorm"
)

var (
	// ErrEmptyCart: the caller supplied no item IDs at all.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidItems: IDs were supplied but none matched the catalog.
	ErrInvalidItems = errors.New("no valid items to order")
)

// PlaceOrderInput carries everything needed to turn an ID list into a
// persisted order. Shipping and payment fields are snapshotted verbatim.
type PlaceOrderInput struct {
	Username   string
	ItemIDs    []string
	Shipping   models.Address
	CardBrand  string
	CardLast4  string
	PaymentRef string
}

// generateOrderRef makes a human-scannable unique order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder prices the item list via cart aggregation and persists the
// order together with its line items in one transaction: there is never an
// order row without its items. It does not touch the live cart — clearing
// after success is the caller's job.
func PlaceOrder(db *gorm.DB, in PlaceOrderInput) (*models.Order, error) {
	if in.Username == "" {
		return nil, errors.New("username is required")
	}
	if len(in.ItemIDs) == 0 {
		return nil, ErrEmptyCart
	}

	lines, total, err := cartControllers.Aggregate(db, in.ItemIDs)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrInvalidItems
	}

	order := models.Order{
		OrderRef:    generateOrderRef(),
		Username:    in.Username,
		TotalAmount: total,
		CardBrand:   in.CardBrand,
		CardLast4:   in.CardLast4,
		PaymentRef:  in.PaymentRef,
		Shipping:    in.Shipping,
		CreatedAt:   time.Now(),
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UserOrders returns a user's order history, newest first, items included.
func UserOrders(db *gorm.DB, username string) ([]models.Order, error) {
	var orders []models.Order
	err := db.
		Where("username = ?", username).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
