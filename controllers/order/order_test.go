package orderControllers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valleyautoparts/shop-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}))
	require.NoError(t, db.Create(&[]models.Product{
		{ID: "oil-filter-synthetic", Name: "High-Mileage Oil Filter", Price: 9.99},
		{ID: "spark-plug-iridium", Name: "Iridium Spark Plug", Price: 11.49},
		{ID: "rear-shock-absorber", Name: "Rear Shock Absorber", Price: 49.99},
	}).Error)
	return db
}

func TestPlaceOrderPersistsOrderWithItems(t *testing.T) {
	db := newTestDB(t)

	order, err := PlaceOrder(db, PlaceOrderInput{
		Username: "gearhead",
		ItemIDs:  []string{"oil-filter-synthetic", "oil-filter-synthetic", "spark-plug-iridium"},
		Shipping: models.Address{
			Name: "Sam Driver", Line1: "1 Garage Way", City: "Valleyton",
			State: "CA", PostalCode: "90000",
		},
		CardBrand:  "visa",
		CardLast4:  "4242",
		PaymentRef: "cs_test_123",
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, 31.47, order.TotalAmount)

	var persisted models.Order
	require.NoError(t, db.Preload("Items").First(&persisted, order.ID).Error)
	require.Len(t, persisted.Items, 2)
	assert.Equal(t, "visa", persisted.CardBrand)
	assert.Equal(t, "4242", persisted.CardLast4)
	assert.Equal(t, "cs_test_123", persisted.PaymentRef)
	assert.Equal(t, "Valleyton", persisted.Shipping.City)
}

func TestPlaceOrderTotalEqualsSumOfLineTotals(t *testing.T) {
	db := newTestDB(t)

	order, err := PlaceOrder(db, PlaceOrderInput{
		Username: "gearhead",
		ItemIDs: []string{
			"oil-filter-synthetic", "spark-plug-iridium", "spark-plug-iridium",
			"rear-shock-absorber", "oil-filter-synthetic", "oil-filter-synthetic",
		},
	})
	require.NoError(t, err)

	var persisted models.Order
	require.NoError(t, db.Preload("Items").First(&persisted, order.ID).Error)

	sum := decimal.Zero
	for _, item := range persisted.Items {
		expected := decimal.NewFromFloat(item.UnitPrice).
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Round(2).InexactFloat64()
		assert.Equal(t, expected, item.LineTotal)
		sum = sum.Add(decimal.NewFromFloat(item.LineTotal))
	}
	assert.Equal(t, sum.Round(2).InexactFloat64(), persisted.TotalAmount)
}

func TestPlaceOrderEmptyInput(t *testing.T) {
	db := newTestDB(t)

	_, err := PlaceOrder(db, PlaceOrderInput{Username: "gearhead"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderAllUnknownItems(t *testing.T) {
	db := newTestDB(t)

	_, err := PlaceOrder(db, PlaceOrderInput{
		Username: "gearhead",
		ItemIDs:  []string{"no-such-part", "also-missing"},
	})
	assert.ErrorIs(t, err, ErrInvalidItems)

	// The failure is distinct from the empty-cart case.
	assert.NotErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderSnapshotSurvivesCatalogChanges(t *testing.T) {
	db := newTestDB(t)

	order, err := PlaceOrder(db, PlaceOrderInput{
		Username: "gearhead",
		ItemIDs:  []string{"spark-plug-iridium"},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", "spark-plug-iridium").
		Updates(map[string]interface{}{"price": 99.99, "name": "Renamed Plug"}).Error)

	var persisted models.Order
	require.NoError(t, db.Preload("Items").First(&persisted, order.ID).Error)
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, "Iridium Spark Plug", persisted.Items[0].Name)
	assert.Equal(t, 11.49, persisted.Items[0].UnitPrice)
	assert.Equal(t, 11.49, persisted.TotalAmount)
}

func TestUserOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)

	first, err := PlaceOrder(db, PlaceOrderInput{Username: "gearhead", ItemIDs: []string{"oil-filter-synthetic"}})
	require.NoError(t, err)
	second, err := PlaceOrder(db, PlaceOrderInput{Username: "gearhead", ItemIDs: []string{"spark-plug-iridium"}})
	require.NoError(t, err)
	_, err = PlaceOrder(db, PlaceOrderInput{Username: "wrench", ItemIDs: []string{"rear-shock-absorber"}})
	require.NoError(t, err)

	orders, err := UserOrders(db, "gearhead")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.ElementsMatch(t,
		[]uint{first.ID, second.ID},
		[]uint{orders[0].ID, orders[1].ID})
	require.Len(t, orders[0].Items, 1)
}
