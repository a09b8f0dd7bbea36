package dataset

import (
	"strings"
	"testing"
)

func TestReviewRatingsBounded(t *testing.T) {
	tables := generate(t, testConfig())

	for _, r := range tables.Reviews {
		if r.Rating < 1.0 || r.Rating > 5.0 {
			t.Errorf("review %d rating %.1f outside [1.0, 5.0]", r.ID, r.Rating)
		}
	}
}

func TestReviewTextSubstitution(t *testing.T) {
	tables := generate(t, testConfig())

	products := make(map[int]Product)
	for _, p := range tables.Products {
		products[p.ID] = p
	}

	for _, r := range tables.Reviews {
		if r.Text == "" {
			t.Fatalf("review %d has empty text", r.ID)
		}
		if strings.Contains(r.Text, "{product}") || strings.Contains(r.Text, "{category}") {
			t.Errorf("review %d has unexpanded template: %q", r.ID, r.Text)
		}
		if p := products[r.ProductID]; !strings.Contains(r.Text, p.Name) {
			// Some phrases only reference the category, never the
			// product name; those must still mention the category.
			if !strings.Contains(r.Text, strings.ToLower(p.Category)) {
				t.Errorf("review %d mentions neither product nor category: %q", r.ID, r.Text)
			}
		}
	}
}

func TestReviewSentimentBuckets(t *testing.T) {
	gen, err := New(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	product := Product{Name: "Acme Widget", Category: "Electronics"}

	positive := gen.reviewText(gen.rng, 4.8, product)
	neutral := gen.reviewText(gen.rng, 3.5, product)
	negative := gen.reviewText(gen.rng, 1.2, product)

	set := gen.cat.ReviewsFor("Electronics")
	if !matchesPool(positive, set.Positive, product.Name) {
		t.Errorf("rating 4.8 produced non-positive text: %q", positive)
	}
	if !matchesPool(neutral, set.Neutral, product.Name) {
		t.Errorf("rating 3.5 produced non-neutral text: %q", neutral)
	}
	if !matchesPool(negative, set.Negative, product.Name) {
		t.Errorf("rating 1.2 produced non-negative text: %q", negative)
	}
}

func matchesPool(text string, pool []string, productName string) bool {
	for _, tpl := range pool {
		expanded := strings.ReplaceAll(tpl, "{product}", productName)
		expanded = strings.ReplaceAll(expanded, "{category}", "electronics")
		if text == expanded {
			return true
		}
	}
	return false
}
