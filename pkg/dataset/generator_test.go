package dataset

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{
		Users:    100,
		Products: 65,
		Orders:   200,
		Reviews:  150,
		Seed:     42,
		Now:      testNow,
	}
}

func generate(t *testing.T, cfg Config) *Tables {
	t.Helper()
	gen, err := New(cfg, nil)
	require.NoError(t, err)
	tables, err := gen.Generate()
	require.NoError(t, err)
	return tables
}

func TestGenerateRowCounts(t *testing.T) {
	tables := generate(t, testConfig())

	assert.Len(t, tables.Users, 100)
	assert.Len(t, tables.Products, 65)
	assert.Len(t, tables.Orders, 200)
	assert.Len(t, tables.Reviews, 150)
	assert.NotEmpty(t, tables.OrderItems)
}

func TestReferentialClosure(t *testing.T) {
	tables := generate(t, testConfig())

	userIDs := make(map[int]bool)
	for _, u := range tables.Users {
		userIDs[u.ID] = true
	}
	productIDs := make(map[int]bool)
	for _, p := range tables.Products {
		productIDs[p.ID] = true
	}
	orderIDs := make(map[int]bool)
	for _, o := range tables.Orders {
		orderIDs[o.ID] = true
		assert.True(t, userIDs[o.UserID], "order %d references unknown user %d", o.ID, o.UserID)
	}
	for _, it := range tables.OrderItems {
		assert.True(t, orderIDs[it.OrderID], "item references unknown order %d", it.OrderID)
		assert.True(t, productIDs[it.ProductID], "item references unknown product %d", it.ProductID)
	}
	for _, r := range tables.Reviews {
		assert.True(t, userIDs[r.UserID], "review %d references unknown user %d", r.ID, r.UserID)
		assert.True(t, productIDs[r.ProductID], "review %d references unknown product %d", r.ID, r.ProductID)
	}
}

func TestOrderTotalsMatchItems(t *testing.T) {
	tables := generate(t, testConfig())

	price := make(map[int]float64)
	for _, p := range tables.Products {
		price[p.ID] = p.Price
	}

	want := make(map[int]int64)
	for _, it := range tables.OrderItems {
		want[it.OrderID] += toCents(price[it.ProductID]) * int64(it.Quantity)
	}
	for _, o := range tables.Orders {
		assert.Equal(t, want[o.ID], toCents(o.TotalAmount),
			"order %d total does not equal the sum of its items", o.ID)
	}
}

func TestTemporalInvariants(t *testing.T) {
	tables := generate(t, testConfig())

	for _, u := range tables.Users {
		assert.False(t, u.LastLogin.Before(u.SignupDate),
			"user %d logged in before signing up", u.ID)
	}
	for _, o := range tables.Orders {
		signup := tables.Users[o.UserID-1].SignupDate
		assert.False(t, o.OrderDate.Before(signup),
			"order %d predates user signup", o.ID)
		assert.False(t, o.OrderDate.After(testNow), "order %d is in the future", o.ID)
	}
	for _, r := range tables.Reviews {
		signup := tables.Users[r.UserID-1].SignupDate
		assert.False(t, r.ReviewDate.Before(signup),
			"review %d predates user signup", r.ID)
	}
}

func TestDeterminism(t *testing.T) {
	first := generate(t, testConfig())
	second := generate(t, testConfig())
	require.Equal(t, first, second, "same config and seed must reproduce identical tables")
}

func TestSeedChangesOutput(t *testing.T) {
	cfg := testConfig()
	first := generate(t, cfg)
	cfg.Seed = 43
	second := generate(t, cfg)
	assert.NotEqual(t, first.Users, second.Users)
}

func TestZeroOrders(t *testing.T) {
	cfg := testConfig()
	cfg.Orders = 0
	tables := generate(t, cfg)

	assert.Empty(t, tables.Orders)
	assert.Empty(t, tables.OrderItems)
	assert.Len(t, tables.Users, cfg.Users)
}

func TestInvalidCounts(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero users", func(c *Config) { c.Users = 0 }},
		{"negative products", func(c *Config) { c.Products = -5 }},
		{"negative orders", func(c *Config) { c.Orders = -1 }},
		{"negative reviews", func(c *Config) { c.Reviews = -1 }},
		{"users beyond id range", func(c *Config) { c.Users = math.MaxInt64 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			_, err := New(cfg, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCount), "want ErrInvalidCount, got %v", err)
		})
	}
}
