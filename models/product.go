package models

import "time"

// Product is catalog reference data. The ID is a stable slug, e.g.
// "oil-filter-synthetic".
type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `json:"category"`
	Fitment     string    `json:"fitment"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `json:"img"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
