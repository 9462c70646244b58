// Package seeder replaces all customer, product, and order data with a fixed
// set of sample records for demos and testing.
package seeder

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"log/slog"

	"github.com/karloscodes/cartridge"
	"gorm.io/gorm"

	"salescope/internal/customers"
	"salescope/internal/models"
	"salescope/internal/orders"
	"salescope/internal/products"
)

// Seeder handles the sample-data seeding process
type Seeder struct {
	DBManager cartridge.DBManager
	Logger    *slog.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(dbManager cartridge.DBManager, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		DBManager: dbManager,
		Logger:    logger,
	}
}

var sampleCustomers = []customers.Customer{
	{Name: "Hari", Email: "hari@gmail.com", Region: "South", Type: "Premium"},
	{Name: "Anita", Email: "anita@gmail.com", Region: "North", Type: "Regular"},
	{Name: "Ravi", Email: "ravi@gmail.com", Region: "East", Type: "Premium"},
	{Name: "Priya", Email: "priya@gmail.com", Region: "West", Type: "Regular"},
	{Name: "Karthik", Email: "karthik@gmail.com", Region: "South", Type: "Premium"},
	{Name: "Divya", Email: "divya@gmail.com", Region: "North", Type: "Regular"},
	{Name: "Ajay", Email: "ajay@gmail.com", Region: "East", Type: "Premium"},
	{Name: "Sneha", Email: "sneha@gmail.com", Region: "West", Type: "Regular"},
	{Name: "Vikram", Email: "vikram@gmail.com", Region: "South", Type: "Premium"},
	{Name: "Meena", Email: "meena@gmail.com", Region: "North", Type: "Regular"},
}

var sampleProducts = []products.Product{
	{Name: "Laptop", Category: "Electronics", Price: 55000},
	{Name: "Mobile", Category: "Electronics", Price: 30000},
	{Name: "Headphones", Category: "Electronics", Price: 2000},
	{Name: "Chair", Category: "Furniture", Price: 5000},
	{Name: "Table", Category: "Furniture", Price: 7000},
	{Name: "Shoes", Category: "Fashion", Price: 2500},
	{Name: "Bag", Category: "Fashion", Price: 1500},
	{Name: "Watch", Category: "Fashion", Price: 8000},
	{Name: "Microwave", Category: "Appliances", Price: 12000},
	{Name: "Refrigerator", Category: "Appliances", Price: 35000},
}

var sampleOrderDates = []string{
	"2025-09-01", "2025-09-02", "2025-09-03", "2025-09-04", "2025-09-05",
	"2025-09-06", "2025-09-07", "2025-09-08", "2025-09-09", "2025-09-10",
}

// Seed wipes customers, products, and orders and inserts the sample data in
// a single write transaction. Previously generated reports are left alone.
// Each sample order pairs customer i with product i, picks a random quantity
// between 1 and 5, and snapshots quantity times the product price as the
// order's total amount.
func (s *Seeder) Seed(ctx context.Context) error {
	start := time.Now()
	s.Logger.Info("Seeding sample data...")

	db := s.DBManager.GetConnection()

	err := models.PerformWrite(s.Logger, db, func(tx *gorm.DB) error {
		for _, table := range []string{"orders", "customers", "products"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
			if err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error; err != nil {
				return fmt.Errorf("failed to reset %s sequence: %w", table, err)
			}
		}

		seedCustomers := make([]customers.Customer, len(sampleCustomers))
		copy(seedCustomers, sampleCustomers)
		if err := tx.Create(&seedCustomers).Error; err != nil {
			return fmt.Errorf("failed to insert customers: %w", err)
		}

		seedProducts := make([]products.Product, len(sampleProducts))
		copy(seedProducts, sampleProducts)
		if err := tx.Create(&seedProducts).Error; err != nil {
			return fmt.Errorf("failed to insert products: %w", err)
		}

		seedOrders := make([]orders.Order, 0, len(sampleOrderDates))
		for i, date := range sampleOrderDates {
			quantity := rand.IntN(5) + 1
			seedOrders = append(seedOrders, orders.Order{
				CustomerID:  seedCustomers[i].ID,
				ProductID:   seedProducts[i].ID,
				Quantity:    quantity,
				TotalAmount: float64(quantity) * seedProducts[i].Price,
				OrderDate:   date,
			})
		}
		if err := tx.Create(&seedOrders).Error; err != nil {
			return fmt.Errorf("failed to insert orders: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info("Seeding completed successfully",
		slog.Int("customers", len(sampleCustomers)),
		slog.Int("products", len(sampleProducts)),
		slog.Int("orders", len(sampleOrderDates)),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}
