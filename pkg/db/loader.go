package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/dataset"
)

const insertBatchSize = 500

// Load bulk-inserts a full dataset, parents before the tables that
// reference them.
func Load(gdb *gorm.DB, t *dataset.Tables) error {
	users := make([]User, len(t.Users))
	for i, u := range t.Users {
		users[i] = User{
			UserID:        u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Phone:         u.Phone,
			Address:       u.Address,
			SignupDate:    u.SignupDate,
			LastLogin:     u.LastLogin,
			LoyaltyPoints: u.LoyaltyPoints,
			Membership:    string(u.Membership),
			Payment:       u.Payment,
		}
	}

	products := make([]Product, len(t.Products))
	for i, p := range t.Products {
		products[i] = Product{
			ProductID:   p.ID,
			Name:        p.Name,
			Brand:       p.Brand,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Price:       p.Price,
			Cost:        p.Cost,
			Stock:       p.Stock,
			Rating:      p.Rating,
			Discount:    p.Discount,
		}
	}

	orders := make([]Order, len(t.Orders))
	for i, o := range t.Orders {
		orders[i] = Order{
			OrderID:     o.ID,
			UserID:      o.UserID,
			OrderDate:   o.OrderDate,
			Status:      string(o.Status),
			Payment:     o.Payment,
			ShippingTo:  o.ShippingTo,
			TotalAmount: o.TotalAmount,
		}
	}

	items := make([]OrderItem, len(t.OrderItems))
	for i, it := range t.OrderItems {
		items[i] = OrderItem{
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
	}

	reviews := make([]Review, len(t.Reviews))
	for i, r := range t.Reviews {
		reviews[i] = Review{
			ReviewID:   r.ID,
			UserID:     r.UserID,
			ProductID:  r.ProductID,
			Rating:     r.Rating,
			Text:       r.Text,
			ReviewDate: r.ReviewDate,
		}
	}

	steps := []struct {
		name string
		rows any
		n    int
	}{
		{"users", users, len(users)},
		{"products", products, len(products)},
		{"orders", orders, len(orders)},
		{"order_items", items, len(items)},
		{"reviews", reviews, len(reviews)},
	}
	for _, step := range steps {
		if step.n == 0 {
			continue
		}
		if err := gdb.CreateInBatches(step.rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert %s: %w", step.name, err)
		}
	}
	return nil
}
