// Package db loads a generated dataset into SQLite through gorm, so a
// run can be queried directly instead of (or in addition to) flat
// files.
package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the SQLite database at dbPath and migrates the dataset
// schema. dbPath is where the sqlite file lives (e.g. "./dataset.db").
func Init(dbPath string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	gdb, err := gorm.Open(sqlite.Open(dbPath), config)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = gdb.AutoMigrate(&User{}, &Product{}, &Order{}, &OrderItem{}, &Review{})
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return gdb, nil
}
