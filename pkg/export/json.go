package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/dataset"
)

func writeJSON(dir string, t *dataset.Tables) error {
	tables := []struct {
		name string
		rows any
	}{
		{"users", t.Users},
		{"products", t.Products},
		{"orders", t.Orders},
		{"order_items", t.OrderItems},
		{"reviews", t.Reviews},
	}

	for _, table := range tables {
		data, err := json.MarshalIndent(table.rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", table.name, err)
		}
		path := filepath.Join(dir, table.name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s.json: %w", table.name, err)
		}
	}
	return nil
}
