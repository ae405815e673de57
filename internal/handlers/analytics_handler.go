package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"grievance-redressal/internal/dto"
	"grievance-redressal/internal/errors"
	"grievance-redressal/internal/services"
)

// AnalyticsHandler handles aggregate statistics and reporting endpoints
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetSummary returns summary statistics over the full grievance data set
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	stats, err := h.analyticsService.GetSummaryStatistics()
	if err != nil {
		return SendError(c, errors.ReportGenerationFailed)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: stats,
	})
}

// GetMatrix returns the category by status cross-tabulation
func (h *AnalyticsHandler) GetMatrix(c echo.Context) error {
	matrix, err := h.analyticsService.GetCategoryStatusMatrix()
	if err != nil {
		return SendError(c, errors.ReportGenerationFailed)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.MatrixResponse{
			Categories:   matrix.Categories,
			Statuses:     matrix.Statuses,
			Cells:        matrix.Cells,
			RowTotals:    matrix.RowTotals(),
			ColumnTotals: matrix.ColumnTotals(),
		},
	})
}

// GetReport renders the plain-text summary report
func (h *AnalyticsHandler) GetReport(c echo.Context) error {
	var req dto.ReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	report, err := h.analyticsService.GenerateReport(req.IncludeTrend)
	if err != nil {
		return SendError(c, errors.ReportGenerationFailed)
	}

	return c.String(http.StatusOK, report)
}

// ExportCSV streams the full grievance data set as a CSV download
func (h *AnalyticsHandler) ExportCSV(c echo.Context) error {
	filename := fmt.Sprintf("grievances-%s.csv", time.Now().UTC().Format("2006-01-02"))

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	if err := h.analyticsService.ExportCSV(c.Response()); err != nil {
		// Headers are already written, nothing sensible to send to the client
		return err
	}

	return nil
}
