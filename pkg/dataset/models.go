// Package dataset generates synthetic e-commerce tables — users,
// products, orders, order items and reviews — that are referentially
// consistent and reproducible for a given seed.
package dataset

import "time"

type MembershipTier string

const (
	TierBronze   MembershipTier = "Bronze"
	TierSilver   MembershipTier = "Silver"
	TierGold     MembershipTier = "Gold"
	TierPlatinum MembershipTier = "Platinum"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusReturned   OrderStatus = "returned"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type User struct {
	ID            int            `json:"user_id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	SignupDate    time.Time      `json:"signup_date"`
	LastLogin     time.Time      `json:"last_login"`
	LoyaltyPoints int            `json:"loyalty_points"`
	Membership    MembershipTier `json:"membership_status"`
	Payment       string         `json:"preferred_payment_method"`
}

type Product struct {
	ID          int     `json:"product_id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock_quantity"`
	Rating      float64 `json:"rating"`
	Discount    int     `json:"discount"`
}

type Order struct {
	ID          int         `json:"order_id"`
	UserID      int         `json:"user_id"`
	OrderDate   time.Time   `json:"order_date"`
	Status      OrderStatus `json:"status"`
	Payment     string      `json:"payment_method"`
	ShippingTo  string      `json:"shipping_address"`
	TotalAmount float64     `json:"total_amount"`
}

type OrderItem struct {
	OrderID   int `json:"order_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type Review struct {
	ID         int       `json:"review_id"`
	UserID     int       `json:"user_id"`
	ProductID  int       `json:"product_id"`
	Rating     float64   `json:"rating"`
	Text       string    `json:"review_text"`
	ReviewDate time.Time `json:"review_date"`
}

// Tables is the complete output of one generation run. Notes carry
// informational messages (e.g. template pools cycled), never errors.
type Tables struct {
	Users      []User      `json:"users"`
	Products   []Product   `json:"products"`
	Orders     []Order     `json:"orders"`
	OrderItems []OrderItem `json:"order_items"`
	Reviews    []Review    `json:"reviews"`

	Notes []string `json:"-"`
}
