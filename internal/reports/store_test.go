package reports

import (
	"encoding/json"
	"testing"

	"log/slog"
	"os"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&AnalyticsReport{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSaveReportAssignsIdentity(t *testing.T) {
	db := setupTestDB(t)

	agg := Aggregates{
		TotalOrders:   2,
		TotalRevenue:  85000,
		AvgOrderValue: 42500,
		TopProducts: []ProductSales{
			{Name: "Laptop", Count: 3},
			{Name: "Mobile", Count: 1},
		},
		TopCustomers: []CustomerSpend{
			{Name: "Hari", Spend: 55000},
			{Name: "Anita", Spend: 30000},
		},
	}

	report, err := SaveReport(db, testLogger(), agg, "2025-09-01", "2025-09-10")
	require.NoError(t, err)

	assert.NotZero(t, report.ID)
	assert.False(t, report.CreatedAt.IsZero())
	assert.Equal(t, "2025-09-01", report.StartDate)
	assert.Equal(t, "2025-09-10", report.EndDate)
	assert.Equal(t, int64(2), report.TotalOrders)
	assert.Equal(t, float64(85000), report.TotalRevenue)
	assert.Equal(t, float64(42500), report.AvgOrderValue)

	// The stored record must decode back to the structured lists
	var topProducts []ProductSales
	require.NoError(t, json.Unmarshal(report.TopProducts, &topProducts))
	assert.Equal(t, agg.TopProducts, topProducts)

	var topCustomers []CustomerSpend
	require.NoError(t, json.Unmarshal(report.TopCustomers, &topCustomers))
	assert.Equal(t, agg.TopCustomers, topCustomers)
}

func TestSaveReportEmptyRange(t *testing.T) {
	db := setupTestDB(t)

	agg := Aggregates{
		TopProducts:  []ProductSales{},
		TopCustomers: []CustomerSpend{},
	}

	report, err := SaveReport(db, testLogger(), agg, "2030-01-01", "2030-01-02")
	require.NoError(t, err)

	// Empty rankings persist as empty arrays, not null
	assert.JSONEq(t, "[]", string(report.TopProducts))
	assert.JSONEq(t, "[]", string(report.TopCustomers))

	// And survive a round trip through the store
	stored, err := ListReports(db)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.JSONEq(t, "[]", string(stored[0].TopProducts))
	assert.JSONEq(t, "[]", string(stored[0].TopCustomers))
}

func TestListReportsNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	empty := Aggregates{TopProducts: []ProductSales{}, TopCustomers: []CustomerSpend{}}

	first, err := SaveReport(db, testLogger(), empty, "2025-09-01", "2025-09-05")
	require.NoError(t, err)
	second, err := SaveReport(db, testLogger(), empty, "2025-09-06", "2025-09-10")
	require.NoError(t, err)

	stored, err := ListReports(db)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	// Creation timestamps can land in the same second; the id ordering
	// keeps the newest report first regardless
	assert.Equal(t, second.ID, stored[0].ID)
	assert.Equal(t, first.ID, stored[1].ID)
}

func TestListReportsEmpty(t *testing.T) {
	db := setupTestDB(t)

	stored, err := ListReports(db)
	require.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Empty(t, stored)
}
