package dataset

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/catalog"
)

// Generator produces one consistent set of tables per call to
// Generate. The random source is owned by the generator and seeded
// from the config, so identical configs reproduce identical tables.
// Reproducibility is guaranteed within this implementation only; the
// value sequence is not portable to generators written elsewhere.
type Generator struct {
	cfg Config
	cat *catalog.Catalog
	now time.Time
	rng *rand.Rand
}

// New validates cfg and builds a generator around it. A nil catalog
// means catalog.Default().
func New(cfg Config, cat *catalog.Catalog) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return &Generator{
		cfg: cfg,
		cat: cat,
		now: cfg.now(),
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
	}, nil
}

// Generate runs the full pipeline: users and products first, then the
// tables that reference them. The result is checked against the
// dataset invariants before being returned; a check failure means a
// generator defect and surfaces as ErrIntegrity.
func (g *Generator) Generate() (*Tables, error) {
	t := &Tables{}

	t.Users = g.generateUsers(g.rng)
	t.Products = g.generateProducts(g.rng, &t.Notes)
	t.Orders, t.OrderItems = g.generateOrders(g.rng, t.Users, t.Products)
	t.Reviews = g.generateReviews(g.rng, t.Users, t.Products)

	if err := verify(t); err != nil {
		return nil, err
	}
	return t, nil
}

// verify re-checks every cross-table and temporal invariant on the
// generated output.
func verify(t *Tables) error {
	productPrice := make(map[int]float64, len(t.Products))
	for _, p := range t.Products {
		if p.Cost >= p.Price {
			return fmt.Errorf("%w: product %d cost %.2f >= price %.2f", ErrIntegrity, p.ID, p.Cost, p.Price)
		}
		productPrice[p.ID] = p.Price
	}

	for _, u := range t.Users {
		if u.LastLogin.Before(u.SignupDate) {
			return fmt.Errorf("%w: user %d last login before signup", ErrIntegrity, u.ID)
		}
	}

	totals := make(map[int]int64, len(t.Orders))
	for _, item := range t.OrderItems {
		price, ok := productPrice[item.ProductID]
		if !ok {
			return fmt.Errorf("%w: order item references unknown product %d", ErrIntegrity, item.ProductID)
		}
		if item.OrderID < 1 || item.OrderID > len(t.Orders) {
			return fmt.Errorf("%w: order item references unknown order %d", ErrIntegrity, item.OrderID)
		}
		totals[item.OrderID] += toCents(price) * int64(item.Quantity)
	}

	for _, o := range t.Orders {
		if o.UserID < 1 || o.UserID > len(t.Users) {
			return fmt.Errorf("%w: order %d references unknown user %d", ErrIntegrity, o.ID, o.UserID)
		}
		if o.OrderDate.Before(signupOf(t.Users, o.UserID)) {
			return fmt.Errorf("%w: order %d predates its user's signup", ErrIntegrity, o.ID)
		}
		if toCents(o.TotalAmount) != totals[o.ID] {
			return fmt.Errorf("%w: order %d total %.2f does not match its items", ErrIntegrity, o.ID, o.TotalAmount)
		}
	}

	for _, r := range t.Reviews {
		if r.UserID < 1 || r.UserID > len(t.Users) {
			return fmt.Errorf("%w: review %d references unknown user %d", ErrIntegrity, r.ID, r.UserID)
		}
		if _, ok := productPrice[r.ProductID]; !ok {
			return fmt.Errorf("%w: review %d references unknown product %d", ErrIntegrity, r.ID, r.ProductID)
		}
		if r.ReviewDate.Before(signupOf(t.Users, r.UserID)) {
			return fmt.Errorf("%w: review %d predates its user's signup", ErrIntegrity, r.ID)
		}
	}
	return nil
}
