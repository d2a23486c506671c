package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func printLine(productID string, price float64, qty int) CartLine {
	return CartLine{
		Key:          NewLineKey(productID, SKUPrint),
		ProductID:    productID,
		SKU:          SKUPrint,
		UnitPriceUSD: price,
		Quantity:     qty,
	}
}

func TestNewLineKey(t *testing.T) {
	assert.Equal(t, LineKey("1-print"), NewLineKey("1", SKUPrint))
	assert.Equal(t, LineKey("42-original"), NewLineKey("42", SKUOriginal))
}

func TestAddLine_MergesByKey(t *testing.T) {
	cart := NewCart("visitor-1")

	cart.AddLine(printLine("1", 89, 1))
	cart.AddLine(printLine("1", 89, 2))

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestAddLine_DifferentVariantsAreSeparateLines(t *testing.T) {
	cart := NewCart("visitor-1")

	cart.AddLine(printLine("1", 89, 1))
	cart.AddLine(CartLine{Key: NewLineKey("1", SKUMug), ProductID: "1", SKU: SKUMug, UnitPriceUSD: 32, Quantity: 1})

	assert.Len(t, cart.Lines, 2)
}

func TestAddLine_NonPositiveQuantityCountsAsOne(t *testing.T) {
	cart := NewCart("visitor-1")

	cart.AddLine(printLine("1", 89, 0))
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart.AddLine(printLine("1", 89, -3))
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart("visitor-1")
	cart.AddLine(printLine("1", 89, 2))

	cart.SetQuantity(NewLineKey("1", SKUPrint), 0)

	assert.Empty(t, cart.Lines)
}

func TestSetQuantity_UnknownKeyIsIgnored(t *testing.T) {
	cart := NewCart("visitor-1")
	cart.AddLine(printLine("1", 89, 2))

	cart.SetQuantity(NewLineKey("99", SKUPrint), 5)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestRemoveLine_PreservesOrder(t *testing.T) {
	cart := NewCart("visitor-1")
	cart.AddLine(printLine("1", 89, 1))
	cart.AddLine(printLine("2", 69, 1))
	cart.AddLine(printLine("3", 59, 1))

	cart.RemoveLine(NewLineKey("2", SKUPrint))

	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, "1", cart.Lines[0].ProductID)
	assert.Equal(t, "3", cart.Lines[1].ProductID)
}

func TestTotals_DerivedFromLines(t *testing.T) {
	cart := NewCart("visitor-1")
	cart.AddLine(printLine("1", 89, 2))
	cart.AddLine(printLine("2", 69, 1))

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 89*2+69, cart.TotalPriceUSD(), 1e-9)

	// Totals track mutations, not history.
	cart.SetQuantity(NewLineKey("1", SKUPrint), 1)
	assert.Equal(t, 2, cart.TotalItems())
	assert.InDelta(t, 89+69, cart.TotalPriceUSD(), 1e-9)
}

func TestClear(t *testing.T) {
	cart := NewCart("visitor-1")
	cart.AddLine(printLine("1", 89, 2))

	cart.Clear()

	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalItems())
	assert.Zero(t, cart.TotalPriceUSD())
}
