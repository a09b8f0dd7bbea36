package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsZeroOrdersAndReviews(t *testing.T) {
	cfg := Config{Users: 1, Products: 1, Orders: 0, Reviews: 0}
	assert.NoError(t, cfg.Validate())
}

func TestValidateNamesTheBadField(t *testing.T) {
	cfg := Config{Users: 0, Products: 10}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATASET_USERS", "25")
	t.Setenv("DATASET_SEED", "7")
	t.Setenv("DATASET_FORMAT", "json")
	t.Setenv("DATASET_NOW", "2026-01-15")

	cfg := FromEnv()
	assert.Equal(t, 25, cfg.Users)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), cfg.Now)

	// Unset variables keep their defaults.
	assert.Equal(t, 500, cfg.Products)
	assert.Equal(t, "dataset", cfg.OutputDir)
}

func TestParseDateLayouts(t *testing.T) {
	cases := []string{
		"2026-08-30T10:30:00Z",
		"2026-08-30 10:30:00",
		"2026-08-30 10:30",
		"2026-08-30",
	}
	for _, raw := range cases {
		got, err := ParseDate(raw)
		require.NoError(t, err, "layout %q", raw)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.August, got.Month())
	}

	_, err := ParseDate("30/08/2026")
	assert.Error(t, err)
}
