package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Aggregation fields accepted by CountsBy.
const (
	FieldStatus   = "status"
	FieldCategory = "category"
)

const (
	monthKeyFormat = "2006-01"
	hoursPerDay    = 24

	// DefaultTopCategories is the number of top categories included in a
	// summary snapshot.
	DefaultTopCategories = 3
)

var (
	ErrUnknownField = errors.New("unknown aggregation field")
)

// Table is an immutable, normalized snapshot of grievance records. All
// aggregations are pure functions of the snapshot; calling them repeatedly
// yields identical results.
type Table struct {
	records []Record
}

// CategoryCount is one (category, count) pair in a ranked sequence.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SummaryStatistics is the composed statistics snapshot exposed to
// collaborators. It is recomputed on demand and never persisted.
type SummaryStatistics struct {
	Total                 int             `json:"total"`
	Pending               int             `json:"pending"`
	ResolutionRate        float64         `json:"resolution_rate"`
	StatusBreakdown       map[string]int  `json:"status_breakdown"`
	CategoryBreakdown     map[string]int  `json:"category_breakdown"`
	TopCategories         []CategoryCount `json:"top_categories"`
	MonthlyTrend          map[string]int  `json:"monthly_trend"`
	AverageResolutionDays float64         `json:"average_resolution_days"`
}

// TotalCount returns the number of records in the snapshot, malformed
// records included. Comparing it against the dated-record aggregates makes
// undercounting detectable.
func (t *Table) TotalCount() int {
	return len(t.records)
}

// CountsBy returns occurrence counts keyed by each observed value of the
// given field. Only "status" and "category" are valid; anything else is a
// caller programming mistake and reported as an error. Unobserved enum
// values are not zero-filled.
func (t *Table) CountsBy(field string) (map[string]int, error) {
	if field != FieldStatus && field != FieldCategory {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	counts := make(map[string]int)
	for i := range t.records {
		if field == FieldStatus {
			counts[t.records[i].Status]++
		} else {
			counts[t.records[i].Category]++
		}
	}

	return counts, nil
}

// MonthlyTrend returns submission counts keyed by "YYYY-MM" calendar month.
// Undated records are excluded and months with zero submissions are omitted;
// chronological ordering is the caller's concern.
func (t *Table) MonthlyTrend() map[string]int {
	trend := make(map[string]int)

	for i := range t.records {
		created := t.records[i].CreatedAt
		if created == nil {
			continue
		}
		trend[created.Format(monthKeyFormat)]++
	}

	return trend
}

// ResolutionRate returns resolved/total as a percentage rounded to two
// decimal places. An empty snapshot yields 0.0, never a division error.
func (t *Table) ResolutionRate() float64 {
	total := len(t.records)
	if total == 0 {
		return 0.0
	}

	resolved := 0
	for i := range t.records {
		if t.records[i].Status == statusResolved {
			resolved++
		}
	}

	rate := decimal.NewFromInt(int64(resolved) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)

	return rate.InexactFloat64()
}

// PendingCount returns the number of records still pending.
func (t *Table) PendingCount() int {
	pending := 0
	for i := range t.records {
		if t.records[i].Status == statusPending {
			pending++
		}
	}
	return pending
}

// TopCategories returns up to n (category, count) pairs sorted by count
// descending. Ties keep the order in which the categories were first seen in
// the input.
func (t *Table) TopCategories(n int) []CategoryCount {
	if n <= 0 {
		return []CategoryCount{}
	}

	counts := make(map[string]int)
	firstSeen := make([]string, 0)

	for i := range t.records {
		category := t.records[i].Category
		if _, seen := counts[category]; !seen {
			firstSeen = append(firstSeen, category)
		}
		counts[category]++
	}

	ranked := make([]CategoryCount, 0, len(firstSeen))
	for _, category := range firstSeen {
		ranked = append(ranked, CategoryCount{Category: category, Count: counts[category]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// AverageResolutionDays returns the mean resolution time in fractional days
// over resolved records carrying both valid timestamps, rounded to two
// decimal places. Records missing either timestamp, and records whose
// resolution would precede their creation, are excluded. Returns 0.0 when no
// record qualifies.
func (t *Table) AverageResolutionDays() float64 {
	totalDays := 0.0
	qualified := 0

	for i := range t.records {
		r := &t.records[i]
		if r.Status != statusResolved || r.CreatedAt == nil || r.ResolvedAt == nil {
			continue
		}

		days := r.ResolvedAt.Sub(*r.CreatedAt).Hours() / hoursPerDay
		if days < 0 {
			continue
		}

		totalDays += days
		qualified++
	}

	if qualified == 0 {
		return 0.0
	}

	avg := decimal.NewFromFloat(totalDays / float64(qualified)).Round(2)
	return avg.InexactFloat64()
}

// Summary composes the full statistics snapshot.
func (t *Table) Summary() SummaryStatistics {
	statusCounts, _ := t.CountsBy(FieldStatus)
	categoryCounts, _ := t.CountsBy(FieldCategory)

	return SummaryStatistics{
		Total:                 t.TotalCount(),
		Pending:               t.PendingCount(),
		ResolutionRate:        t.ResolutionRate(),
		StatusBreakdown:       statusCounts,
		CategoryBreakdown:     categoryCounts,
		TopCategories:         t.TopCategories(DefaultTopCategories),
		MonthlyTrend:          t.MonthlyTrend(),
		AverageResolutionDays: t.AverageResolutionDays(),
	}
}
