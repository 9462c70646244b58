package reports

import (
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"gorm.io/gorm"

	"salescope/internal/models"
)

// AnalyticsReport is a persisted report. The top lists are stored as encoded
// JSON text and come back as structured arrays in API responses. Rows are
// immutable and retained indefinitely.
type AnalyticsReport struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	StartDate     string      `gorm:"size:10;not null" json:"startDate"`
	EndDate       string      `gorm:"size:10;not null" json:"endDate"`
	TotalOrders   int64       `gorm:"not null" json:"totalOrders"`
	TotalRevenue  float64     `gorm:"not null" json:"totalRevenue"`
	AvgOrderValue float64     `gorm:"not null" json:"avgOrderValue"`
	TopProducts   models.JSON `gorm:"type:text" json:"topProducts"`
	TopCustomers  models.JSON `gorm:"type:text" json:"topCustomers"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// TableName specifies the table name for GORM
func (AnalyticsReport) TableName() string {
	return "analytics_reports"
}

// SaveReport inserts a new report row for the given aggregates and returns
// the stored record with its assigned id and creation timestamp.
func SaveReport(db *gorm.DB, logger *slog.Logger, agg Aggregates, startDate, endDate string) (*AnalyticsReport, error) {
	topProducts, err := json.Marshal(agg.TopProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode top products: %w", err)
	}
	topCustomers, err := json.Marshal(agg.TopCustomers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode top customers: %w", err)
	}

	report := &AnalyticsReport{
		StartDate:     startDate,
		EndDate:       endDate,
		TotalOrders:   agg.TotalOrders,
		TotalRevenue:  agg.TotalRevenue,
		AvgOrderValue: agg.AvgOrderValue,
		TopProducts:   models.JSON(topProducts),
		TopCustomers:  models.JSON(topCustomers),
		CreatedAt:     time.Now().UTC(),
	}

	err = models.PerformWrite(logger, db, func(tx *gorm.DB) error {
		return tx.Create(report).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	return report, nil
}

// ListReports returns all stored reports, most recently created first.
// Creation timestamps can collide within a second, so the id is the
// secondary sort key to keep the order deterministic.
func ListReports(db *gorm.DB) ([]AnalyticsReport, error) {
	reports := []AnalyticsReport{}
	err := db.Order("created_at DESC, id DESC").Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}
	return reports, nil
}
