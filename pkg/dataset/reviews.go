package dataset

import (
	"math/rand/v2"
	"strings"
)

// Sentiment bucket thresholds for review phrasing.
const (
	positiveRating = 4.5
	neutralRating  = 3.0
)

func (g *Generator) generateReviews(rng *rand.Rand, users []User, products []Product) []Review {
	reviews := make([]Review, g.cfg.Reviews)

	for i := range reviews {
		user := pick(rng, users)
		product := pick(rng, products)
		rating := sampleRating(rng)

		reviews[i] = Review{
			ID:         i + 1,
			UserID:     user.ID,
			ProductID:  product.ID,
			Rating:     rating,
			Text:       g.reviewText(rng, rating, product),
			ReviewDate: dayOf(dateBetween(rng, user.SignupDate, g.now)),
		}
	}
	return reviews
}

// reviewText picks a phrase template for the product's category and
// the rating's sentiment bucket, then substitutes the product name.
func (g *Generator) reviewText(rng *rand.Rand, rating float64, product Product) string {
	set := g.cat.ReviewsFor(product.Category)

	var pool []string
	switch {
	case rating >= positiveRating:
		pool = set.Positive
	case rating >= neutralRating:
		pool = set.Neutral
	default:
		pool = set.Negative
	}

	text := pick(rng, pool)
	text = strings.ReplaceAll(text, "{product}", product.Name)
	text = strings.ReplaceAll(text, "{category}", strings.ToLower(product.Category))
	return text
}
