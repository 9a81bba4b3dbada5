package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tnsurya7/newtons-labs/internal/models"
)

func float64Ptr(v float64) *float64 { return &v }

func TestComputeTotals(t *testing.T) {

	t.Run("Total equals subtotal even when a discount is present", func(t *testing.T) {

		// Arrange
		items := []models.CartItem{
			{ID: "test-1", Name: "Complete Blood Count", Price: 500, OriginalPrice: float64Ptr(600), Type: "test"},
			{ID: "test-2", Name: "Lipid Profile", Price: 300, Type: "test"},
		}

		// Act
		totals := ComputeTotals(items)

		// Assert
		assert.Equal(t, 800.0, totals.Subtotal)
		assert.Equal(t, 100.0, totals.DiscountAmount)
		assert.Equal(t, 0.0, totals.TaxAmount)
		assert.Equal(t, 800.0, totals.TotalAmount)
	})

	t.Run("Items without an original price contribute zero discount", func(t *testing.T) {

		// Arrange
		items := []models.CartItem{
			{ID: "test-1", Name: "Thyroid Profile", Price: 450, Type: "test"},
		}

		// Act
		totals := ComputeTotals(items)

		// Assert
		assert.Equal(t, 450.0, totals.Subtotal)
		assert.Equal(t, 0.0, totals.DiscountAmount)
		assert.Equal(t, 450.0, totals.TotalAmount)
	})

	t.Run("Empty cart yields zero totals", func(t *testing.T) {

		// Act
		totals := ComputeTotals(nil)

		// Assert
		assert.Equal(t, Totals{}, totals)
	})

	t.Run("Totals are independent of item order", func(t *testing.T) {

		// Arrange
		items := []models.CartItem{
			{ID: "a", Name: "CBC", Price: 299, OriginalPrice: float64Ptr(399), Type: "test"},
			{ID: "b", Name: "Vitamin D", Price: 899, OriginalPrice: float64Ptr(1200), Type: "test"},
			{ID: "c", Name: "HbA1c", Price: 350, Type: "test"},
		}
		reversed := []models.CartItem{items[2], items[1], items[0]}

		// Act
		forward := ComputeTotals(items)
		backward := ComputeTotals(reversed)

		// Assert
		assert.Equal(t, forward, backward)
	})
}
