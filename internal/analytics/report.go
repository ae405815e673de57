package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	reportTitle = "       GRIEVANCE ANALYTICS REPORT"
	reportWidth = 60
)

// ExportColumns is the fixed column order for tabular export.
var ExportColumns = []string{"id", "category", "status", "created_at", "resolved_at"}

// FormatReport renders a statistics snapshot as a plain-text report with a
// fixed section order: overview, status breakdown, category breakdown, top
// categories and, when includeTrend is set, the monthly trend. Map-backed
// sections are rendered in sorted key order so the same snapshot always
// produces byte-identical text. The formatter performs no I/O and reads no
// clock; writing the report anywhere is the caller's responsibility.
func FormatReport(stats SummaryStatistics, includeTrend bool) string {
	var b strings.Builder
	rule := strings.Repeat("=", reportWidth)

	b.WriteString(rule + "\n")
	b.WriteString(reportTitle + "\n")
	b.WriteString(rule + "\n")

	b.WriteString("\n--- OVERVIEW ---\n")
	fmt.Fprintf(&b, "  Total Grievances: %d\n", stats.Total)
	fmt.Fprintf(&b, "  Pending: %d\n", stats.Pending)
	fmt.Fprintf(&b, "  Resolution Rate: %.2f%%\n", stats.ResolutionRate)

	b.WriteString("\n--- STATUS BREAKDOWN ---\n")
	writeCountSection(&b, stats.StatusBreakdown)

	b.WriteString("\n--- CATEGORY BREAKDOWN ---\n")
	writeCountSection(&b, stats.CategoryBreakdown)

	b.WriteString("\n--- TOP CATEGORIES ---\n")
	for i, tc := range stats.TopCategories {
		fmt.Fprintf(&b, "  %d. %s: %d\n", i+1, tc.Category, tc.Count)
	}

	if includeTrend {
		b.WriteString("\n--- MONTHLY TREND ---\n")
		// "YYYY-MM" keys sort chronologically
		writeCountSection(&b, stats.MonthlyTrend)
	}

	b.WriteString("\n" + rule + "\n")

	return b.String()
}

func writeCountSection(b *strings.Builder, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, "  %s: %d\n", k, counts[k])
	}
}

// ExportRows flattens the snapshot into a header row plus one row per
// normalized record, suitable for writing to a delimited file. Timestamp
// columns carry the original raw strings, so unparseable values survive the
// round trip and absent values render empty.
func (t *Table) ExportRows() [][]string {
	rows := make([][]string, 0, len(t.records)+1)
	rows = append(rows, append([]string(nil), ExportColumns...))

	for i := range t.records {
		r := &t.records[i]
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Category,
			r.Status,
			r.rawCreatedAt,
			r.rawResolvedAt,
		})
	}

	return rows
}
