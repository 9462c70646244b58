package seeder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescope/internal/customers"
	"salescope/internal/orders"
	"salescope/internal/products"
	"salescope/internal/reports"
	"salescope/internal/seeder"
	"salescope/internal/testsupport"
)

func TestSeedInsertsSampleData(t *testing.T) {
	dbManager, logger := testsupport.SetupTestDBManager(t)
	db := dbManager.GetConnection()
	testsupport.CleanAllTables(db)

	s := seeder.NewSeeder(dbManager, logger)
	require.NoError(t, s.Seed(context.Background()))

	customerCount, err := customers.CountCustomers(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), customerCount)

	productCount, err := products.CountProducts(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), productCount)

	orderCount, err := orders.CountOrders(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), orderCount)
}

func TestSeedSnapshotsOrderAmounts(t *testing.T) {
	dbManager, logger := testsupport.SetupTestDBManager(t)
	db := dbManager.GetConnection()
	testsupport.CleanAllTables(db)

	s := seeder.NewSeeder(dbManager, logger)
	require.NoError(t, s.Seed(context.Background()))

	var seeded []orders.Order
	require.NoError(t, db.Find(&seeded).Error)
	require.Len(t, seeded, 10)

	for _, order := range seeded {
		assert.GreaterOrEqual(t, order.Quantity, 1)
		assert.LessOrEqual(t, order.Quantity, 5)
		assert.GreaterOrEqual(t, order.OrderDate, "2025-09-01")
		assert.LessOrEqual(t, order.OrderDate, "2025-09-10")

		product, err := products.GetProductByID(db, order.ProductID)
		require.NoError(t, err)
		assert.Equal(t, float64(order.Quantity)*product.Price, order.TotalAmount,
			"order %d amount must be quantity times the seeded price", order.ID)

		_, err = customers.GetCustomerByID(db, order.CustomerID)
		require.NoError(t, err, "order %d must reference a seeded customer", order.ID)
	}
}

func TestReseedReplacesDataButKeepsReports(t *testing.T) {
	dbManager, logger := testsupport.SetupTestDBManager(t)
	db := dbManager.GetConnection()
	testsupport.CleanAllTables(db)

	s := seeder.NewSeeder(dbManager, logger)
	require.NoError(t, s.Seed(context.Background()))

	// A previously generated report must survive a reseed
	agg := reports.Aggregates{
		TopProducts:  []reports.ProductSales{},
		TopCustomers: []reports.CustomerSpend{},
	}
	_, err := reports.SaveReport(db, logger, agg, "2025-09-01", "2025-09-10")
	require.NoError(t, err)

	require.NoError(t, s.Seed(context.Background()))

	customerCount, err := customers.CountCustomers(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), customerCount)

	orderCount, err := orders.CountOrders(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), orderCount)

	stored, err := reports.ListReports(db)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
