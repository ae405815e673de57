package dto

// Analytics Request DTOs

// ReportRequest contains report rendering options bound from query parameters
type ReportRequest struct {
	IncludeTrend bool `query:"includeTrend"`
}

// Analytics Response DTOs

// MatrixResponse represents the category by status cross-tabulation
type MatrixResponse struct {
	Categories   []string       `json:"categories"`
	Statuses     []string       `json:"statuses"`
	Cells        [][]int        `json:"cells"`
	RowTotals    map[string]int `json:"rowTotals"`
	ColumnTotals map[string]int `json:"columnTotals"`
}
