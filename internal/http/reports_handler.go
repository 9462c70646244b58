package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"salescope/internal/orders"
	"salescope/internal/reports"
)

const errDatesRequired = "startDate and endDate are required."

// createReportParams holds the requested report range
type createReportParams struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ReportsCreateAction computes the aggregates for the requested date range,
// persists them as a new report, and returns the stored record.
func ReportsCreateAction(ctx *cartridge.Context) error {
	var params createReportParams
	if err := ctx.BodyParser(&params); err != nil {
		ctx.Logger.Debug("Failed to parse report request", slog.Any("error", err))
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errDatesRequired,
		})
	}

	// Reject before touching the store; nothing is computed or persisted
	// for an incomplete range.
	if params.StartDate == "" || params.EndDate == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errDatesRequired,
		})
	}

	db := ctx.DB()

	rows, err := orders.GetOrdersInRange(db, params.StartDate, params.EndDate)
	if err != nil {
		ctx.Logger.Error("Failed to fetch orders for report",
			slog.String("startDate", params.StartDate),
			slog.String("endDate", params.EndDate),
			slog.Any("error", err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate report.",
		})
	}

	agg, err := reports.ComputeAggregates(params.StartDate, params.EndDate, rows)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errDatesRequired,
		})
	}

	report, err := reports.SaveReport(db, ctx.Logger, agg, params.StartDate, params.EndDate)
	if err != nil {
		ctx.Logger.Error("Failed to save report", slog.Any("error", err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate report.",
		})
	}

	ctx.Logger.Info("Report generated",
		slog.Uint64("id", uint64(report.ID)),
		slog.String("startDate", report.StartDate),
		slog.String("endDate", report.EndDate),
		slog.Int64("totalOrders", report.TotalOrders))

	return ctx.Status(fiber.StatusCreated).JSON(report)
}

// ReportsListAction returns all stored reports, newest first, with the top
// lists decoded to structured arrays.
func ReportsListAction(ctx *cartridge.Context) error {
	reportsList, err := reports.ListReports(ctx.DB())
	if err != nil {
		ctx.Logger.Error("Failed to fetch reports", slog.Any("error", err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reports.",
		})
	}

	return ctx.JSON(reportsList)
}
