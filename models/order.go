package models

import "time"

// Order is created atomically with its items at checkout completion and is
// immutable afterwards. Item rows snapshot product name and price at order
// time, so later catalog changes never rewrite history.
type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"uniqueIndex" json:"order_ref"`
	Username string `gorm:"index;not null" json:"username"`

	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"total_amount"`

	// Payment display metadata from the provider (brand / last 4 / session ref).
	// A provider session may pay for at most one order, so the non-empty
	// session refs are unique. API-placed orders leave the ref blank.
	CardBrand  string `json:"card_brand,omitempty"`
	CardLast4  string `json:"card_last4,omitempty"`
	PaymentRef string `gorm:"index:idx_orders_payment_ref,unique,where:payment_ref <> ''" json:"payment_ref,omitempty"`

	Shipping Address `gorm:"embedded;embeddedPrefix:ship_" json:"shipping"`

	CreatedAt time.Time `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}
