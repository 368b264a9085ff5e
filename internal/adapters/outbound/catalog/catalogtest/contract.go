// Package catalogtest holds the behaviour every domain.Catalog implementation must share.
package catalogtest

import (
	"testing"

	"github.com/abdidvp/sellone/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Subject builds catalogs in the states the contract needs.
type Subject interface {
	// CatalogWith returns a catalog that prices barcode at price.
	CatalogWith(tb testing.TB, barcode string, price domain.Price) domain.Catalog
	// CatalogWithout returns a catalog that has no price for barcode.
	CatalogWithout(tb testing.TB, barcode string) domain.Catalog
}

// Run executes the catalog contract against s.
func Run(t *testing.T, s Subject) {
	t.Helper()

	t.Run("known product", func(t *testing.T) {
		c := s.CatalogWith(t, "29384", domain.Euro(24))
		price, ok := c.FindPrice("29384")
		require.True(t, ok)
		assert.True(t, domain.Euro(24).Equal(price))
	})

	t.Run("unknown product", func(t *testing.T) {
		c := s.CatalogWithout(t, "23948")
		_, ok := c.FindPrice("23948")
		assert.False(t, ok)
	})

	t.Run("lookup is repeatable", func(t *testing.T) {
		c := s.CatalogWith(t, "29384", domain.Euro(24))
		first, firstOK := c.FindPrice("29384")
		second, secondOK := c.FindPrice("29384")
		assert.Equal(t, firstOK, secondOK)
		assert.Equal(t, first, second)

		_, missingOK := c.FindPrice("23948")
		_, missingAgainOK := c.FindPrice("23948")
		assert.False(t, missingOK)
		assert.False(t, missingAgainOK)
	})
}
