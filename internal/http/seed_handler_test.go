package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescope/internal/orders"
	"salescope/internal/reports"
	"salescope/internal/testsupport"
)

func TestSeedCreateAction(t *testing.T) {
	dbManager, _ := testsupport.SetupTestDBManager(t)
	db := dbManager.GetConnection()
	testsupport.CleanAllTables(db)

	app := testsupport.CreateMinimalTestApp(t, db)

	resp, err := app.Test(httptest.NewRequest("POST", "/seed", nil), 30000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var respBody map[string]any
	decodeBody(t, resp, &respBody)
	assert.Equal(t, "10 sample customers, products, and orders inserted successfully!", respBody["message"])

	orderCount, err := orders.CountOrders(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), orderCount)
}

func TestSeedThenGenerateReportCoversAllOrders(t *testing.T) {
	dbManager, _ := testsupport.SetupTestDBManager(t)
	db := dbManager.GetConnection()
	testsupport.CleanAllTables(db)

	app := testsupport.CreateMinimalTestApp(t, db)

	resp, err := app.Test(httptest.NewRequest("POST", "/seed", nil), 30000)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The seeded orders all fall inside this range; their stored totals
	// are what the report must replay
	var seeded []orders.Order
	require.NoError(t, db.Find(&seeded).Error)
	require.Len(t, seeded, 10)

	var wantRevenue float64
	for _, order := range seeded {
		wantRevenue += order.TotalAmount
	}

	payload := map[string]string{"startDate": "2025-09-01", "endDate": "2025-09-10"}
	resp, err = app.Test(postJSON(t, "/reports", payload), 30000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var report struct {
		TotalOrders   int64                  `json:"totalOrders"`
		TotalRevenue  float64                `json:"totalRevenue"`
		AvgOrderValue float64                `json:"avgOrderValue"`
		TopProducts   []reports.ProductSales `json:"topProducts"`
	}
	decodeBody(t, resp, &report)

	assert.Equal(t, int64(10), report.TotalOrders)
	assert.InDelta(t, wantRevenue, report.TotalRevenue, 1e-6)
	assert.InDelta(t, wantRevenue/10, report.AvgOrderValue, 1e-6)
	assert.LessOrEqual(t, len(report.TopProducts), 5)
}

func TestHealthIndexAction(t *testing.T) {
	dbManager, _ := testsupport.SetupTestDBManager(t)
	db := dbManager.GetConnection()

	app := testsupport.CreateMinimalTestApp(t, db)

	resp, err := app.Test(httptest.NewRequest("GET", "/_health", nil), 30000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"status":"ok"`)
}
