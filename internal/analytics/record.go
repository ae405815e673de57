package analytics

import (
	"strings"
	"time"
)

// Accepted timestamp layouts, tried in order. Records whose timestamps match
// neither layout stay in status/category totals but are excluded from
// date-based aggregates.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const (
	statusPending  = "Pending"
	statusResolved = "Resolved"
)

// RawRecord is a single grievance record as found in the flat-file exports
// and in collaborator-supplied record mappings.
type RawRecord struct {
	ID         int    `json:"id"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	ResolvedAt string `json:"resolved_at"`
}

// Record is a normalized grievance record. It is validated once at
// normalization time and never mutated afterwards. A nil timestamp marks a
// value that was absent or matched none of the accepted formats.
type Record struct {
	ID            int
	Category      string
	Status        string
	CreatedAt     *time.Time
	ResolvedAt    *time.Time
	rawCreatedAt  string
	rawResolvedAt string
}

// NewRecord builds a normalized record from already-parsed timestamps. The
// raw string forms used by tabular export are derived from the timestamps.
func NewRecord(id int, category, status string, createdAt, resolvedAt *time.Time) Record {
	return Record{
		ID:            id,
		Category:      category,
		Status:        status,
		CreatedAt:     createdAt,
		ResolvedAt:    resolvedAt,
		rawCreatedAt:  formatTimestamp(createdAt),
		rawResolvedAt: formatTimestamp(resolvedAt),
	}
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampFormats[0])
}

// parseTimestamp tries the accepted layouts in order and returns nil when
// none of them match. Parse failures are never surfaced as errors.
func parseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}

// Normalize converts raw records into an immutable snapshot. It never fails:
// a record with an unparseable timestamp is kept for status/category counts
// and treated as undated everywhere else.
func Normalize(raw []RawRecord) *Table {
	records := make([]Record, 0, len(raw))

	for _, r := range raw {
		records = append(records, Record{
			ID:            r.ID,
			Category:      r.Category,
			Status:        r.Status,
			CreatedAt:     parseTimestamp(r.CreatedAt),
			ResolvedAt:    parseTimestamp(r.ResolvedAt),
			rawCreatedAt:  r.CreatedAt,
			rawResolvedAt: r.ResolvedAt,
		})
	}

	return &Table{records: records}
}

// NewTable builds a snapshot from normalized records. The input slice is
// copied so later mutations by the caller cannot leak into the snapshot.
func NewTable(records []Record) *Table {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &Table{records: copied}
}
