package domain

import (
	"fmt"
	"time"
)

// LineKey is the composite key identifying a purchasable unit:
// product ID plus variant, e.g. "1-print".
type LineKey string

func NewLineKey(productID string, sku SKU) LineKey {
	return LineKey(fmt.Sprintf("%s-%s", productID, sku))
}

type CartLine struct {
	Key          LineKey
	ProductID    string
	SKU          SKU
	Title        string
	Artist       string
	Image        string
	UnitPriceUSD float64
	Quantity     int
}

// Cart is an insertion-ordered collection of lines, at most one per key.
type Cart struct {
	ID        string
	Lines     []CartLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCart(id string) *Cart {
	now := time.Now()
	return &Cart{ID: id, CreatedAt: now, UpdatedAt: now}
}

// AddLine merges by key: an already present key has its quantity
// incremented by the incoming quantity, otherwise the line is appended.
// A non-positive incoming quantity counts as 1.
func (c *Cart) AddLine(line CartLine) {
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].Key == line.Key {
			c.Lines[i].Quantity += line.Quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
	c.Lines = append(c.Lines, line)
	c.UpdatedAt = time.Now()
}

// SetQuantity sets the quantity of the line with the given key.
// A quantity of zero or less removes the line entirely.
// Unknown keys are ignored.
func (c *Cart) SetQuantity(key LineKey, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(key)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Key == key {
			c.Lines[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// RemoveLine deletes the line with the given key, preserving the order
// of the remaining lines. Unknown keys are ignored.
func (c *Cart) RemoveLine(key LineKey) {
	for i := range c.Lines {
		if c.Lines[i].Key == key {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Clear empties the cart. Used after a (simulated) checkout.
func (c *Cart) Clear() {
	c.Lines = nil
	c.UpdatedAt = time.Now()
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPriceUSD is derivable from the lines alone, independent of
// mutation history.
func (c *Cart) TotalPriceUSD() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.UnitPriceUSD * float64(line.Quantity)
	}
	return total
}
