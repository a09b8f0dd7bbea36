package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/dataset"
)

func TestLoadRoundTrip(t *testing.T) {
	cfg := dataset.Config{
		Users:    20,
		Products: 10,
		Orders:   30,
		Reviews:  25,
		Seed:     42,
		Now:      time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}
	gen, err := dataset.New(cfg, nil)
	require.NoError(t, err)
	tables, err := gen.Generate()
	require.NoError(t, err)

	gdb, err := Init(filepath.Join(t.TempDir(), "dataset.db"))
	require.NoError(t, err)
	require.NoError(t, Load(gdb, tables))

	var users, products, orders, items, reviews int64
	require.NoError(t, gdb.Model(&User{}).Count(&users).Error)
	require.NoError(t, gdb.Model(&Product{}).Count(&products).Error)
	require.NoError(t, gdb.Model(&Order{}).Count(&orders).Error)
	require.NoError(t, gdb.Model(&OrderItem{}).Count(&items).Error)
	require.NoError(t, gdb.Model(&Review{}).Count(&reviews).Error)

	assert.EqualValues(t, len(tables.Users), users)
	assert.EqualValues(t, len(tables.Products), products)
	assert.EqualValues(t, len(tables.Orders), orders)
	assert.EqualValues(t, len(tables.OrderItems), items)
	assert.EqualValues(t, len(tables.Reviews), reviews)

	var first Order
	require.NoError(t, gdb.First(&first, "order_id = ?", tables.Orders[0].ID).Error)
	assert.Equal(t, tables.Orders[0].UserID, first.UserID)
	assert.InDelta(t, tables.Orders[0].TotalAmount, first.TotalAmount, 0.001)
}

func TestLoadEmptyOrders(t *testing.T) {
	cfg := dataset.Config{Users: 5, Products: 5, Orders: 0, Reviews: 0, Seed: 1,
		Now: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)}
	gen, err := dataset.New(cfg, nil)
	require.NoError(t, err)
	tables, err := gen.Generate()
	require.NoError(t, err)

	gdb, err := Init(filepath.Join(t.TempDir(), "dataset.db"))
	require.NoError(t, err)
	require.NoError(t, Load(gdb, tables))

	var orders int64
	require.NoError(t, gdb.Model(&Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}
