package models

import (
	"log"

	"gorm.io/gorm"
)

// SeedProducts loads the starter catalog on first startup. It is a no-op
// when the products table already has rows.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&starterCatalog).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d catalog products", len(starterCatalog))
	return nil
}

var starterCatalog = []Product{
	{
		ID:          "brakepads-ceramic-front",
		Name:        "Ceramic Brake Pads (Front Axle)",
		Category:    "Brakes",
		Fitment:     "Fits: Honda Civic, Toyota Corolla, Hyundai Elantra",
		Price:       54.99,
		Image:       "https://via.placeholder.com/400x400?text=Ceramic+Brake+Pads",
		Description: "Low dust ceramic pads for quieter braking and longer rotor life.",
	},
	{
		ID:          "serpentine-belt-6pk",
		Name:        "Serpentine Drive Belt 6PK",
		Category:    "Belts",
		Fitment:     "Fits: 1.8L–2.4L inline-4 engines",
		Price:       24.50,
		Image:       "https://via.placeholder.com/400x400?text=Serpentine+Belt",
		Description: "High temp EPDM replacement belt for alternator, A/C, and power steering.",
	},
	{
		ID:          "alternator-110amp",
		Name:        "110A Alternator",
		Category:    "Electrical",
		Fitment:     "Remanufactured for common 4-cyl/6-cyl models",
		Price:       129.99,
		Image:       "https://via.placeholder.com/400x400?text=Alternator+110A",
		Description: "OEM output with internal voltage regulator. Core charge may apply.",
	},
	{
		ID:          "oil-filter-synthetic",
		Name:        "High-Mileage Oil Filter",
		Category:    "Filters",
		Fitment:     "Universal fit for most spin-on adapters",
		Price:       9.99,
		Image:       "https://via.placeholder.com/400x400?text=Oil+Filter",
		Description: "Synthetic media filter rated for 10,000 mile protection.",
	},
	{
		ID:          "full-synthetic-5w30",
		Name:        "5W-30 Full Synthetic Motor Oil (1 Qt)",
		Category:    "Fluids",
		Fitment:     "Dexos / API SN+ compatible",
		Price:       8.99,
		Image:       "https://via.placeholder.com/400x400?text=5W-30+Oil",
		Description: "Protects against sludge and thermal breakdown in all conditions.",
	},
	{
		ID:          "spark-plug-iridium",
		Name:        "Iridium Spark Plug",
		Category:    "Ignition",
		Fitment:     "Fits: Various 4-cyl/6-cyl applications",
		Price:       11.49,
		Image:       "https://via.placeholder.com/400x400?text=Spark+Plug",
		Description: "Iridium tip for long life and improved ignition efficiency.",
	},
	{
		ID:          "cv-axle-front-left",
		Name:        "Front Left CV Axle Shaft",
		Category:    "Drivetrain",
		Fitment:     "Includes boot, grease, and clips — ready to install",
		Price:       89.99,
		Image:       "https://via.placeholder.com/400x400?text=CV+Axle",
		Description: "Remanufactured OE replacement half shaft with new joints.",
	},
	{
		ID:          "rear-shock-absorber",
		Name:        "Rear Shock Absorber",
		Category:    "Suspension",
		Fitment:     "Gas-charged twin-tube design",
		Price:       49.99,
		Image:       "https://via.placeholder.com/400x400?text=Rear+Shock",
		Description: "Restores ride comfort and stability on rough or uneven roads.",
	},
	{
		ID:          "cabin-air-filter-charcoal",
		Name:        "Charcoal Cabin Air Filter",
		Category:    "Filters",
		Fitment:     "Traps dust, pollen, and odor particles",
		Price:       15.99,
		Image:       "https://via.placeholder.com/400x400?text=Cabin+Filter",
		Description: "Activated carbon filter for improved HVAC air quality.",
	},
	{
		ID:          "led-headlight-h11",
		Name:        "LED Headlight Kit (H11 6000K)",
		Category:    "Lighting",
		Fitment:     "Plug-and-play for H11 sockets",
		Price:       59.99,
		Image:       "https://via.placeholder.com/400x400?text=LED+Headlight",
		Description: "High output LED bulbs with cooling fan and weather sealed design.",
	},
}
