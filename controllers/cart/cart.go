package cartControllers

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/valleyautoparts/shop-api/models"
	"gorm.io/gorm"
)

// Store keeps each user's cart in memory as a multiset of product IDs:
// quantity is the number of occurrences. Carts do not survive a process
// restart; swapping in a persistent implementation is a deliberate upgrade
// path, not a bug fix.
//
// Mutations for the same user are serialized by a per-user lock, so
// concurrent add/remove requests cannot lose updates.
type Store struct {
	mu    sync.Mutex // guards carts map
	carts map[string]*userCart
}

type userCart struct {
	mu  sync.Mutex
	ids []string
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*userCart)}
}

func (s *Store) cart(username string) *userCart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[username]
	if !ok {
		c = &userCart{}
		s.carts[username] = c
	}
	return c
}

// Add appends one occurrence of productID to the user's cart. Product
// existence is checked by AddItem; Add itself is pure cart state.
func (s *Store) Add(username, productID string) {
	c := s.cart(username)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = append(c.ids, productID)
}

// Remove deletes every occurrence of productID and reports whether the
// cart changed.
func (s *Store) Remove(username, productID string) bool {
	c := s.cart(username)
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.ids[:0]
	removed := false
	for _, id := range c.ids {
		if id == productID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	c.ids = kept
	return removed
}

// Clear empties the user's cart.
func (s *Store) Clear(username string) {
	c := s.cart(username)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = nil
}

// IDs returns a copy of the user's raw cart contents, duplicates included.
func (s *Store) IDs(username string) []string {
	c := s.cart(username)
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// AddItem validates the product against the catalog before adding it to the
// cart. Returns false (and no error) when the product does not exist.
func AddItem(db *gorm.DB, s *Store, username, productID string) (bool, error) {
	var product models.Product
	if err := db.Select("id").First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	s.Add(username, productID)
	return true, nil
}

// Line is one aggregated cart entry: a product at a quantity with its
// rounded line total.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"img"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Aggregate dedupes a raw ID list into (product, quantity) lines, preserving
// first-seen order. IDs with no matching product are silently dropped.
// line_total = round(price * qty, 2); total = round(sum, 2).
func Aggregate(db *gorm.DB, ids []string) ([]Line, float64, error) {
	if len(ids) == 0 {
		return []Line{}, 0, nil
	}

	counts := make(map[string]int, len(ids))
	var order []string
	for _, id := range ids {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	var products []models.Product
	if err := db.Where("id IN ?", order).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]Line, 0, len(order))
	total := decimal.Zero
	for _, id := range order {
		p, ok := byID[id]
		if !ok {
			continue // unknown product: dropped, not an error
		}
		qty := counts[id]
		lineTotal := decimal.NewFromFloat(p.Price).
			Mul(decimal.NewFromInt(int64(qty))).
			Round(2)
		total = total.Add(lineTotal)
		lines = append(lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			UnitPrice: p.Price,
			Quantity:  qty,
			LineTotal: lineTotal.InexactFloat64(),
		})
	}

	return lines, total.Round(2).InexactFloat64(), nil
}

// View aggregates the live cart for a user.
func View(db *gorm.DB, s *Store, username string) ([]Line, float64, error) {
	return Aggregate(db, s.IDs(username))
}
