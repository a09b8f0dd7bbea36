package dataset

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	// ErrInvalidCount is returned when a requested row count is
	// outside the accepted range for its table.
	ErrInvalidCount = errors.New("invalid row count")

	// ErrIntegrity marks a referential or temporal invariant
	// violation found after generation. It indicates a defect in the
	// generator itself, not bad input.
	ErrIntegrity = errors.New("dataset integrity violation")
)

// maxCount bounds sequential identifiers to the int32 range so IDs
// stay portable across serializers and database columns.
const maxCount = 1<<31 - 1

// Config describes one generation run.
type Config struct {
	Users    int
	Products int
	Orders   int
	Reviews  int

	// Seed drives the pseudo-random source. The same config and seed
	// always reproduce the same tables.
	Seed uint64

	// Now is the reference "current" date for all temporal sampling.
	// Zero means time.Now().
	Now time.Time

	OutputDir string
	Format    string
}

// Validate rejects impossible row counts before any generation starts.
// Users and products must be positive because orders and reviews
// reference them; orders and reviews may be zero.
func (c Config) Validate() error {
	if c.Users <= 0 {
		return fmt.Errorf("%w: users must be positive, got %d", ErrInvalidCount, c.Users)
	}
	if c.Products <= 0 {
		return fmt.Errorf("%w: products must be positive, got %d", ErrInvalidCount, c.Products)
	}
	if c.Orders < 0 {
		return fmt.Errorf("%w: orders cannot be negative, got %d", ErrInvalidCount, c.Orders)
	}
	if c.Reviews < 0 {
		return fmt.Errorf("%w: reviews cannot be negative, got %d", ErrInvalidCount, c.Reviews)
	}
	counts := []struct {
		name string
		n    int
	}{
		{"users", c.Users},
		{"products", c.Products},
		{"orders", c.Orders},
		{"reviews", c.Reviews},
	}
	for _, cnt := range counts {
		if cnt.n > maxCount {
			return fmt.Errorf("%w: %s count %d exceeds the identifier range", ErrInvalidCount, cnt.name, cnt.n)
		}
	}
	return nil
}

// now resolves the reference date, truncated to UTC for stable output.
func (c Config) now() time.Time {
	if c.Now.IsZero() {
		return time.Now().UTC()
	}
	return c.Now.UTC()
}

// FromEnv builds a Config from environment variables, reading an
// optional .env file first. Unset variables fall back to defaults
// sized for a small sample dataset.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		Users:     getEnvAsInt("DATASET_USERS", 1000),
		Products:  getEnvAsInt("DATASET_PRODUCTS", 500),
		Orders:    getEnvAsInt("DATASET_ORDERS", 2000),
		Reviews:   getEnvAsInt("DATASET_REVIEWS", 1500),
		Seed:      uint64(getEnvAsInt("DATASET_SEED", 42)),
		OutputDir: getEnv("DATASET_OUTPUT_DIR", "dataset"),
		Format:    getEnv("DATASET_FORMAT", "csv"),
	}
	if raw := os.Getenv("DATASET_NOW"); raw != "" {
		if t, err := ParseDate(raw); err == nil {
			cfg.Now = t
		}
	}
	return cfg
}

// ParseDate accepts the date layouts users tend to paste when pinning
// the reference "current" date of a run.
func ParseDate(raw string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", raw)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
