// Package export serializes a generated dataset to disk. One file per
// table, plus a metadata manifest describing the run.
package export

import (
	"fmt"
	"os"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/dataset"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatSQL  = "sql"
)

var tableNames = []string{"users", "products", "orders", "order_items", "reviews"}

// Write serializes the tables into cfg.OutputDir using cfg.Format,
// creating the directory if needed. A metadata manifest is written
// alongside the data files regardless of format.
func Write(cfg dataset.Config, t *dataset.Tables) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var err error
	switch cfg.Format {
	case FormatCSV:
		err = writeCSV(cfg.OutputDir, t)
	case FormatJSON:
		err = writeJSON(cfg.OutputDir, t)
	case FormatSQL:
		err = writeSQL(cfg.OutputDir, t)
	default:
		return fmt.Errorf("unsupported output format %q", cfg.Format)
	}
	if err != nil {
		return err
	}

	return writeMetadata(cfg, t)
}
