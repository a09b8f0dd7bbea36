package dataset

import (
	"math"
	"math/rand/v2"
	"time"
)

// pick returns a uniformly chosen element of items.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// pickWeighted returns an index into weights, chosen proportionally.
func pickWeighted(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// intBetween returns a random integer in [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// dateBetween returns a random instant in [from, to). When the window
// is empty it returns from.
func dateBetween(rng *rand.Rand, from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return from
	}
	return from.Add(time.Duration(rng.Int64N(int64(span))))
}

// dayOf truncates an instant to midnight UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// round2 rounds a dollar amount to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// toCents converts a dollar amount to integer cents. Order totals are
// accumulated in cents so they stay exact.
func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// psychPrice rewrites a raw price to end on one of the canonical
// psychological endings, keeping the whole-dollar part.
func psychPrice(rng *rand.Rand, base float64, endings []float64) float64 {
	whole := math.Floor(base)
	if whole < 1 {
		whole = 1
	}
	return whole + pick(rng, endings)
}
