package dto

import "time"

// Grievance Request DTOs

// SubmitGrievanceRequest contains a new grievance submission
type SubmitGrievanceRequest struct {
	Category    string `json:"category" validate:"required,grievance_category"`
	Description string `json:"description" validate:"required,min=10,max=5000"`
}

// UpdateGrievanceStatusRequest contains an admin status update
type UpdateGrievanceStatusRequest struct {
	Status   string `json:"status" validate:"required,grievance_status"`
	Response string `json:"response" validate:"omitempty,max=5000"`
}

// ListGrievancesRequest contains list filters bound from query parameters
type ListGrievancesRequest struct {
	Status   string `query:"status" validate:"omitempty,grievance_status"`
	Category string `query:"category" validate:"omitempty,grievance_category"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PerPage  int    `query:"perPage" validate:"omitempty,min=1,max=100"`
}

// Grievance Response DTOs

// GrievanceResponse represents a grievance in API responses
type GrievanceResponse struct {
	ID          uint       `json:"id"`
	StudentID   string     `json:"studentId"`
	StudentName string     `json:"studentName"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Response    string     `json:"response,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

// GrievanceListResponse represents a paginated grievance list
type GrievanceListResponse struct {
	Grievances []GrievanceResponse `json:"grievances"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PerPage    int                 `json:"perPage"`
}

// CategoryListResponse lists the categories accepted on submission
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
