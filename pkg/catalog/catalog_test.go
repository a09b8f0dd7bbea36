package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogComplete(t *testing.T) {
	cat := Default()

	require.NotEmpty(t, cat.Categories)
	for _, c := range cat.Categories {
		assert.NotEmpty(t, c.Brands, "category %s has no brands", c.Name)
		assert.Greater(t, c.Weight, 0.0, "category %s has no weight", c.Name)
		require.NotEmpty(t, c.Subcategories, "category %s has no subcategories", c.Name)
		for _, sub := range c.Subcategories {
			assert.NotEmpty(t, sub.Templates, "%s/%s has no name templates", c.Name, sub.Name)
			assert.Greater(t, sub.Price.Max, sub.Price.Min, "%s/%s has an empty price range", c.Name, sub.Name)
			assert.Greater(t, sub.Price.Min, 0.0, "%s/%s has a non-positive floor", c.Name, sub.Name)
		}
	}

	assert.NotEmpty(t, cat.FirstNames)
	assert.NotEmpty(t, cat.LastNames)
	assert.NotEmpty(t, cat.EmailDomains)
	assert.NotEmpty(t, cat.PaymentMethods)
	assert.ElementsMatch(t, []float64{0.99, 0.95, 0.00, 0.49, 0.79}, cat.PriceEndings)
}

func TestEveryCategoryHasReviewTemplates(t *testing.T) {
	cat := Default()

	for _, c := range cat.Categories {
		set := cat.ReviewsFor(c.Name)
		assert.Equal(t, c.Name, set.Category, "category %s falls back to %s templates", c.Name, set.Category)
		assert.NotEmpty(t, set.Positive)
		assert.NotEmpty(t, set.Neutral)
		assert.NotEmpty(t, set.Negative)
	}
}

func TestReviewsForFallsBack(t *testing.T) {
	cat := Default()
	set := cat.ReviewsFor("Groceries")
	assert.Equal(t, cat.Reviews[0].Category, set.Category)
}

func TestTemplateCount(t *testing.T) {
	cat := Default()
	assert.Greater(t, cat.TemplateCount(), 50)
}
