package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single line, merges included.
const MaxQuantity = 999

var (
	ErrEmptyProductID  = errors.New("product id is empty")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 999")
	ErrInvalidPrice    = errors.New("price must be >= 0")
)

// CartItem keeps the name, price and image captured when the product was added.
type CartItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is unit price × quantity.
func (it CartItem) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

func (it CartItem) validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return ErrEmptyProductID
	}
	if !validQuantity(it.Quantity) {
		return ErrInvalidQuantity
	}
	if it.UnitPrice.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

func validQuantity(q int) bool {
	return q >= 1 && q <= MaxQuantity
}

// Cart is the visitor's cart. At most one line per product id, kept in insertion order.
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCart rebuilds a cart from untrusted lines: invalid lines are dropped and
// repeated ids are merged into the first occurrence.
func NewCart(items []CartItem) Cart {
	var c Cart
	for _, it := range items {
		_ = c.AddItem(it)
	}
	return c
}

// AddItem merges by id: an existing line gets its quantity increased.
func (c *Cart) AddItem(item CartItem) error {
	if err := item.validate(); err != nil {
		return err
	}

	if i := c.indexOf(item.ID); i >= 0 {
		// both sides are <= MaxQuantity, the sum cannot overflow
		sum := c.Items[i].Quantity + item.Quantity
		if sum > MaxQuantity {
			return ErrInvalidQuantity
		}
		c.Items[i].Quantity = sum
		return nil
	}

	c.Items = append(c.Items, item)
	return nil
}

// UpdateQuantity is a no-op when id is not in the cart.
func (c *Cart) UpdateQuantity(id string, quantity int) error {
	if !validQuantity(quantity) {
		return ErrInvalidQuantity
	}

	if i := c.indexOf(id); i >= 0 {
		c.Items[i].Quantity = quantity
	}
	return nil
}

// RemoveItem reports whether a line was removed.
func (c *Cart) RemoveItem(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}

	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total is recomputed from the current lines on every call.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) Len() int {
	return len(c.Items)
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Find(id string) (CartItem, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.Items[i], true
	}
	return CartItem{}, false
}

func (c Cart) indexOf(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}
