package models

import (
	"time"

	"github.com/google/uuid"
)

// GrievanceFilters contains filter criteria for grievance queries
type GrievanceFilters struct {
	StudentID     *uuid.UUID
	Status        string
	Category      string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
