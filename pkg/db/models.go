package db

import "time"

// Row types mirror the dataset schema one to one. Identifiers come
// from the generator, so none of the integer keys auto-increment.

type User struct {
	UserID        int `gorm:"primaryKey;autoIncrement:false"`
	Name          string
	Email         string
	Phone         string
	Address       string
	SignupDate    time.Time
	LastLogin     time.Time
	LoyaltyPoints int
	Membership    string
	Payment       string
}

type Product struct {
	ProductID   int `gorm:"primaryKey;autoIncrement:false"`
	Name        string
	Brand       string
	Category    string
	Subcategory string
	Price       float64
	Cost        float64
	Stock       int
	Rating      float64
	Discount    int
}

type Order struct {
	OrderID     int `gorm:"primaryKey;autoIncrement:false"`
	UserID      int
	OrderDate   time.Time
	Status      string
	Payment     string
	ShippingTo  string
	TotalAmount float64
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   int
	ProductID int
	Quantity  int
}

type Review struct {
	ReviewID   int `gorm:"primaryKey;autoIncrement:false"`
	UserID     int
	ProductID  int
	Rating     float64
	Text       string
	ReviewDate time.Time
}
