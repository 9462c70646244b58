package orders

import (
	"gorm.io/gorm"

	"salescope/internal/customers"
	"salescope/internal/products"
)

// DateFormat is the calendar-date layout used for order dates. Dates are
// stored as plain strings in this format so range filtering is a
// lexicographic comparison with no timezone involved.
const DateFormat = "2006-01-02"

// Order is a single purchase of one product by one customer. TotalAmount is
// fixed at insert time (quantity times the product price at that moment) and
// is never recomputed against the current price.
type Order struct {
	ID          uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  uint               `gorm:"not null;index" json:"customerId"`
	Customer    customers.Customer `gorm:"foreignKey:CustomerID" json:"-"`
	ProductID   uint               `gorm:"not null;index" json:"productId"`
	Product     products.Product   `gorm:"foreignKey:ProductID" json:"-"`
	Quantity    int                `gorm:"not null;check:quantity > 0" json:"quantity"`
	TotalAmount float64            `gorm:"not null" json:"totalAmount"`
	OrderDate   string             `gorm:"size:10;not null;index" json:"orderDate"`
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// RangeOrder is one order row joined with the product and customer names,
// the shape the report computation works on.
type RangeOrder struct {
	OrderID      uint    `json:"orderId"`
	CustomerID   uint    `json:"customerId"`
	CustomerName string  `json:"customerName"`
	ProductID    uint    `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	TotalAmount  float64 `json:"totalAmount"`
	OrderDate    string  `json:"orderDate"`
}

// GetOrdersInRange returns the orders whose date falls within
// [startDate, endDate], both ends inclusive, joined with product and
// customer names. Results are ordered by order id so downstream grouping
// sees a stable input.
func GetOrdersInRange(db *gorm.DB, startDate, endDate string) ([]RangeOrder, error) {
	var rows []RangeOrder
	err := db.Table("orders").
		Select("orders.id AS order_id, orders.customer_id, customers.name AS customer_name, "+
			"orders.product_id, products.name AS product_name, "+
			"orders.quantity, orders.total_amount, orders.order_date").
		Joins("JOIN products ON orders.product_id = products.id").
		Joins("JOIN customers ON orders.customer_id = customers.id").
		Where("orders.order_date BETWEEN ? AND ?", startDate, endDate).
		Order("orders.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountOrders returns the number of order rows
func CountOrders(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Order{}).Count(&count).Error
	return count, err
}
