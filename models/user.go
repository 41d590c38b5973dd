package models

import "time"

type User struct {
	Username     string `gorm:"primaryKey" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	DisplayName  string `json:"display_name,omitempty"`
	Vehicle      string `json:"vehicle,omitempty"`

	// Card display metadata only (brand / last 4 / expiry), never a PAN.
	CardBrand  string `json:"card_brand,omitempty"`
	CardLast4  string `json:"card_last4,omitempty"`
	CardExpiry string `json:"card_expiry,omitempty"`

	Shipping Address `gorm:"embedded;embeddedPrefix:ship_" json:"shipping"`

	ResetToken  string     `gorm:"index" json:"-"`
	ResetExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Address is embedded in User (profile default) and Order (snapshot).
type Address struct {
	Name       string `form:"name" json:"name"`
	Line1      string `form:"line1" json:"line1"`
	Line2      string `form:"line2" json:"line2,omitempty"`
	City       string `form:"city" json:"city"`
	State      string `form:"state" json:"state"`
	PostalCode string `form:"postal_code" json:"postal_code"`
}

// Complete reports whether every required shipping field is present.
// Line2 is optional.
func (a Address) Complete() bool {
	return a.Name != "" && a.Line1 != "" && a.City != "" && a.State != "" && a.PostalCode != ""
}
