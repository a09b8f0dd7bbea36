package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/dataset"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

func writeCSV(dir string, t *dataset.Tables) error {
	writers := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{"users", func(w *csv.Writer) error { return usersCSV(w, t.Users) }},
		{"products", func(w *csv.Writer) error { return productsCSV(w, t.Products) }},
		{"orders", func(w *csv.Writer) error { return ordersCSV(w, t.Orders) }},
		{"order_items", func(w *csv.Writer) error { return orderItemsCSV(w, t.OrderItems) }},
		{"reviews", func(w *csv.Writer) error { return reviewsCSV(w, t.Reviews) }},
	}

	for _, table := range writers {
		if err := writeCSVFile(dir, table.name, table.write); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVFile(dir, name string, write func(*csv.Writer) error) error {
	f, err := os.Create(filepath.Join(dir, name+".csv"))
	if err != nil {
		return fmt.Errorf("create %s.csv: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("write %s.csv: %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s.csv: %w", name, err)
	}
	return f.Close()
}

func usersCSV(w *csv.Writer, users []dataset.User) error {
	header := []string{
		"user_id", "name", "email", "phone", "address", "signup_date",
		"last_login", "loyalty_points", "membership_status",
		"preferred_payment_method",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, u := range users {
		err := w.Write([]string{
			strconv.Itoa(u.ID), u.Name, u.Email, u.Phone, u.Address,
			u.SignupDate.Format(dateLayout),
			u.LastLogin.Format(dateTimeLayout),
			strconv.Itoa(u.LoyaltyPoints), string(u.Membership), u.Payment,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func productsCSV(w *csv.Writer, products []dataset.Product) error {
	header := []string{
		"product_id", "name", "brand", "category", "subcategory",
		"price", "cost", "stock_quantity", "rating", "discount",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range products {
		err := w.Write([]string{
			strconv.Itoa(p.ID), p.Name, p.Brand, p.Category, p.Subcategory,
			money(p.Price), money(p.Cost), strconv.Itoa(p.Stock),
			strconv.FormatFloat(p.Rating, 'f', 1, 64), strconv.Itoa(p.Discount),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func ordersCSV(w *csv.Writer, orders []dataset.Order) error {
	header := []string{
		"order_id", "user_id", "order_date", "status", "payment_method",
		"shipping_address", "total_amount",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, o := range orders {
		err := w.Write([]string{
			strconv.Itoa(o.ID), strconv.Itoa(o.UserID),
			o.OrderDate.Format(dateLayout), string(o.Status),
			o.Payment, o.ShippingTo, money(o.TotalAmount),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func orderItemsCSV(w *csv.Writer, items []dataset.OrderItem) error {
	if err := w.Write([]string{"order_id", "product_id", "quantity"}); err != nil {
		return err
	}
	for _, it := range items {
		err := w.Write([]string{
			strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func reviewsCSV(w *csv.Writer, reviews []dataset.Review) error {
	header := []string{
		"review_id", "user_id", "product_id", "rating", "review_text",
		"review_date",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range reviews {
		err := w.Write([]string{
			strconv.Itoa(r.ID), strconv.Itoa(r.UserID),
			strconv.Itoa(r.ProductID),
			strconv.FormatFloat(r.Rating, 'f', 1, 64),
			r.Text, r.ReviewDate.Format(dateLayout),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
