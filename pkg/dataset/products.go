package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/catalog"
)

// Product ratings skew high: most listings that survive on a
// storefront are not rated badly.
var ratingWeights = []float64{0.05, 0.10, 0.15, 0.25, 0.45}

var discountSteps = []int{0, 5, 10, 15, 20}

func (g *Generator) generateProducts(rng *rand.Rand, notes *[]string) []Product {
	products := make([]Product, g.cfg.Products)

	weights := make([]float64, len(g.cat.Categories))
	for i, cat := range g.cat.Categories {
		weights[i] = cat.Weight
	}

	for i := range products {
		cat := g.cat.Categories[pickWeighted(rng, weights)]
		sub := pick(rng, cat.Subcategories)
		brand := pick(rng, cat.Brands)

		price := psychPrice(rng, priceIn(rng, sub.Price), g.cat.PriceEndings)

		products[i] = Product{
			ID:          i + 1,
			Name:        productName(rng, brand, sub),
			Brand:       brand,
			Category:    cat.Name,
			Subcategory: sub.Name,
			Price:       price,
			Cost:        costFor(rng, price),
			Stock:       stockFor(rng, price),
			Rating:      sampleRating(rng),
			Discount:    pick(rng, discountSteps),
		}
	}

	if pool := g.cat.TemplateCount(); g.cfg.Products > pool {
		*notes = append(*notes, fmt.Sprintf(
			"product name templates cycled: %d products drawn from %d distinct templates",
			g.cfg.Products, pool))
	}
	return products
}

// productName draws from the subcategory template pool, prefixing the
// brand most of the time. Pools smaller than the requested product
// count simply repeat.
func productName(rng *rand.Rand, brand string, sub catalog.Subcategory) string {
	name := pick(rng, sub.Templates)
	if rng.Float64() < 0.7 {
		return brand + " " + name
	}
	return name
}

func priceIn(rng *rand.Rand, r catalog.PriceRange) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// costFor derives unit cost as a 40–80% fraction of price, strictly
// below it.
func costFor(rng *rand.Rand, price float64) float64 {
	cost := round2(price * (0.4 + rng.Float64()*0.4))
	if cost >= price {
		cost = round2(price - 0.01)
	}
	return cost
}

// stockFor bands inventory by price: cheap items are stocked deep,
// expensive ones shallow.
func stockFor(rng *rand.Rand, price float64) int {
	switch {
	case price < 50:
		return intBetween(rng, 50, 500)
	case price < 200:
		return intBetween(rng, 20, 200)
	default:
		return intBetween(rng, 5, 100)
	}
}

// sampleRating picks a star bucket by weight, then spreads it with a
// fractional part, clamped to [1.0, 5.0].
func sampleRating(rng *rand.Rand) float64 {
	stars := float64(pickWeighted(rng, ratingWeights) + 1)
	rating := stars + rng.Float64()*0.9
	return math.Min(5.0, math.Round(rating*10)/10)
}
