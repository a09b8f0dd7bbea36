package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/dataset"
)

// writeSQL emits a single dataset.sql with CREATE TABLE statements and
// one INSERT per row, loadable by any SQL engine.
func writeSQL(dir string, t *dataset.Tables) error {
	f, err := os.Create(filepath.Join(dir, "dataset.sql"))
	if err != nil {
		return fmt.Errorf("create dataset.sql: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprint(w, sqlSchema)

	for _, u := range t.Users {
		fmt.Fprintf(w,
			"INSERT INTO users VALUES (%d, %s, %s, %s, %s, %s, %s, %d, %s, %s);\n",
			u.ID, quote(u.Name), quote(u.Email), quote(u.Phone), quote(u.Address),
			quote(u.SignupDate.Format(dateLayout)),
			quote(u.LastLogin.Format(dateTimeLayout)),
			u.LoyaltyPoints, quote(string(u.Membership)), quote(u.Payment))
	}
	for _, p := range t.Products {
		fmt.Fprintf(w,
			"INSERT INTO products VALUES (%d, %s, %s, %s, %s, %.2f, %.2f, %d, %.1f, %d);\n",
			p.ID, quote(p.Name), quote(p.Brand), quote(p.Category), quote(p.Subcategory),
			p.Price, p.Cost, p.Stock, p.Rating, p.Discount)
	}
	for _, o := range t.Orders {
		fmt.Fprintf(w,
			"INSERT INTO orders VALUES (%d, %d, %s, %s, %s, %s, %.2f);\n",
			o.ID, o.UserID, quote(o.OrderDate.Format(dateLayout)),
			quote(string(o.Status)), quote(o.Payment), quote(o.ShippingTo),
			o.TotalAmount)
	}
	for _, it := range t.OrderItems {
		fmt.Fprintf(w, "INSERT INTO order_items VALUES (%d, %d, %d);\n",
			it.OrderID, it.ProductID, it.Quantity)
	}
	for _, r := range t.Reviews {
		fmt.Fprintf(w,
			"INSERT INTO reviews VALUES (%d, %d, %d, %.1f, %s, %s);\n",
			r.ID, r.UserID, r.ProductID, r.Rating, quote(r.Text),
			quote(r.ReviewDate.Format(dateLayout)))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write dataset.sql: %w", err)
	}
	return f.Close()
}

// quote wraps a value as a single-quoted SQL string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

const sqlSchema = `CREATE TABLE users (
    user_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    address TEXT NOT NULL,
    signup_date DATE NOT NULL,
    last_login TIMESTAMP NOT NULL,
    loyalty_points INTEGER NOT NULL,
    membership_status TEXT NOT NULL,
    preferred_payment_method TEXT NOT NULL
);

CREATE TABLE products (
    product_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    brand TEXT NOT NULL,
    category TEXT NOT NULL,
    subcategory TEXT NOT NULL,
    price NUMERIC NOT NULL,
    cost NUMERIC NOT NULL,
    stock_quantity INTEGER NOT NULL,
    rating NUMERIC NOT NULL,
    discount INTEGER NOT NULL
);

CREATE TABLE orders (
    order_id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(user_id),
    order_date DATE NOT NULL,
    status TEXT NOT NULL,
    payment_method TEXT NOT NULL,
    shipping_address TEXT NOT NULL,
    total_amount NUMERIC NOT NULL
);

CREATE TABLE order_items (
    order_id INTEGER NOT NULL REFERENCES orders(order_id),
    product_id INTEGER NOT NULL REFERENCES products(product_id),
    quantity INTEGER NOT NULL
);

CREATE TABLE reviews (
    review_id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(user_id),
    product_id INTEGER NOT NULL REFERENCES products(product_id),
    rating NUMERIC NOT NULL,
    review_text TEXT NOT NULL,
    review_date DATE NOT NULL
);

`
