package analytics

// Matrix is a dense category-by-status count grid. Rows and columns carry
// the categories and statuses observed in the input, in first-seen order,
// with stable integer indices; unobserved (category, status) combinations
// hold explicit zeros.
type Matrix struct {
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
	Cells      [][]int  `json:"cells"`

	categoryIndex map[string]int
	statusIndex   map[string]int
}

// CategoryStatusMatrix cross-tabulates the snapshot over category and
// status jointly.
func (t *Table) CategoryStatusMatrix() *Matrix {
	m := &Matrix{
		Categories:    make([]string, 0),
		Statuses:      make([]string, 0),
		categoryIndex: make(map[string]int),
		statusIndex:   make(map[string]int),
	}

	for i := range t.records {
		r := &t.records[i]
		if _, seen := m.categoryIndex[r.Category]; !seen {
			m.categoryIndex[r.Category] = len(m.Categories)
			m.Categories = append(m.Categories, r.Category)
		}
		if _, seen := m.statusIndex[r.Status]; !seen {
			m.statusIndex[r.Status] = len(m.Statuses)
			m.Statuses = append(m.Statuses, r.Status)
		}
	}

	m.Cells = make([][]int, len(m.Categories))
	for i := range m.Cells {
		m.Cells[i] = make([]int, len(m.Statuses))
	}

	for i := range t.records {
		r := &t.records[i]
		m.Cells[m.categoryIndex[r.Category]][m.statusIndex[r.Status]]++
	}

	return m
}

// Count returns the cell value for the given (category, status) pair, or
// zero when either dimension value was never observed.
func (m *Matrix) Count(category, status string) int {
	row, ok := m.categoryIndex[category]
	if !ok {
		return 0
	}
	col, ok := m.statusIndex[status]
	if !ok {
		return 0
	}
	return m.Cells[row][col]
}

// RowTotals returns per-category totals; they match CountsBy("category").
func (m *Matrix) RowTotals() map[string]int {
	totals := make(map[string]int, len(m.Categories))
	for i, category := range m.Categories {
		sum := 0
		for _, cell := range m.Cells[i] {
			sum += cell
		}
		totals[category] = sum
	}
	return totals
}

// ColumnTotals returns per-status totals; they match CountsBy("status").
func (m *Matrix) ColumnTotals() map[string]int {
	totals := make(map[string]int, len(m.Statuses))
	for j, status := range m.Statuses {
		sum := 0
		for i := range m.Cells {
			sum += m.Cells[i][j]
		}
		totals[status] = sum
	}
	return totals
}
