package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"grievance-redressal/internal/analytics"
	"grievance-redressal/internal/config"
	"grievance-redressal/internal/models"
	"grievance-redressal/internal/repositories"
)

// AnalyticsService computes aggregate statistics over the grievance data
// set. Every operation works on a fresh snapshot of the stored records, so
// results always reflect the current database state.
type AnalyticsService struct {
	grievanceRepo repositories.GrievanceRepositoryInterface
	metrics       MetricsRecorderInterface
	logger        *slog.Logger
	topCategories int
}

// NewAnalyticsService creates a new analytics service. A nil cfg falls
// back to the default ranking length.
func NewAnalyticsService(
	grievanceRepo repositories.GrievanceRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	cfg *config.AnalyticsConfig,
) AnalyticsServiceInterface {
	topCategories := analytics.DefaultTopCategories
	if cfg != nil && cfg.TopCategories > 0 {
		topCategories = cfg.TopCategories
	}

	return &AnalyticsService{
		grievanceRepo: grievanceRepo,
		metrics:       metrics,
		logger:        logger,
		topCategories: topCategories,
	}
}

// GetSummaryStatistics returns the full statistics snapshot
func (s *AnalyticsService) GetSummaryStatistics() (*analytics.SummaryStatistics, error) {
	table, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	stats := table.Summary()
	stats.TopCategories = table.TopCategories(s.topCategories)
	s.metrics.RecordGauge("pending_grievances", float64(stats.Pending), nil)

	return &stats, nil
}

// GetCategoryStatusMatrix returns the category by status cross-tabulation
func (s *AnalyticsService) GetCategoryStatusMatrix() (*analytics.Matrix, error) {
	table, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return table.CategoryStatusMatrix(), nil
}

// GenerateReport renders the plain-text analytics report
func (s *AnalyticsService) GenerateReport(includeTrend bool) (string, error) {
	start := time.Now()

	table, err := s.snapshot()
	if err != nil {
		return "", err
	}

	report := analytics.FormatReport(table.Summary(), includeTrend)

	s.metrics.IncrementCounter("report_generated", nil)
	s.metrics.RecordProcessingTime("report_generation", time.Since(start))
	s.logger.Info("analytics report generated",
		"records", table.TotalCount(),
		"include_trend", includeTrend,
		"duration_ms", time.Since(start).Milliseconds())

	return report, nil
}

// ExportCSV writes all grievance records to w in tabular form
func (s *AnalyticsService) ExportCSV(w io.Writer) error {
	table, err := s.snapshot()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(table.ExportRows()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	s.metrics.IncrementCounter("csv_exported", nil)
	s.logger.Info("grievance data exported", "records", table.TotalCount())

	return nil
}

// AnalyzeFile computes summary statistics over a JSON flat-file export
// instead of the live database
func (s *AnalyticsService) AnalyzeFile(path string) (*analytics.SummaryStatistics, error) {
	raw, err := analytics.Load(path)
	if err != nil {
		return nil, err
	}

	stats := analytics.Normalize(raw).Summary()
	return &stats, nil
}

// snapshot materializes the stored grievances into an immutable table
func (s *AnalyticsService) snapshot() (*analytics.Table, error) {
	grievances, err := s.grievanceRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load grievances: %w", err)
	}

	records := make([]analytics.Record, 0, len(grievances))
	for _, g := range grievances {
		records = append(records, toRecord(g))
	}

	return analytics.NewTable(records), nil
}

func toRecord(g models.Grievance) analytics.Record {
	createdAt := g.CreatedAt
	return analytics.NewRecord(int(g.ID), g.Category, g.Status, &createdAt, g.ResolvedAt)
}
