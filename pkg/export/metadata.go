package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/dataset"
)

// writeMetadata records the run parameters and row counts next to the
// data files, tagged with a unique run id.
func writeMetadata(cfg dataset.Config, t *dataset.Tables) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset Generation Metadata\n")
	fmt.Fprintf(&b, "==========================\n")
	fmt.Fprintf(&b, "Run ID: %s\n", uuid.NewString())
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Seed: %d\n", cfg.Seed)
	fmt.Fprintf(&b, "Format: %s\n\n", cfg.Format)

	fmt.Fprintf(&b, "Rows:\n")
	fmt.Fprintf(&b, "  users: %d\n", len(t.Users))
	fmt.Fprintf(&b, "  products: %d\n", len(t.Products))
	fmt.Fprintf(&b, "  orders: %d\n", len(t.Orders))
	fmt.Fprintf(&b, "  order_items: %d\n", len(t.OrderItems))
	fmt.Fprintf(&b, "  reviews: %d\n", len(t.Reviews))

	if len(t.Notes) > 0 {
		fmt.Fprintf(&b, "\nNotes:\n")
		for _, note := range t.Notes {
			fmt.Fprintf(&b, "  - %s\n", note)
		}
	}

	path := filepath.Join(cfg.OutputDir, "metadata.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}
