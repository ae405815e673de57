package models

// Grievance categories offered on the submission form
const (
	CategoryAcademic       = "Academic"
	CategoryHostel         = "Hostel"
	CategoryFaculty        = "Faculty"
	CategoryInfrastructure = "Infrastructure"
	CategoryAdministrative = "Administrative"
	CategoryOther          = "Other"
)

// Grievance lifecycle statuses
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryAcademic,
		CategoryHostel,
		CategoryFaculty,
		CategoryInfrastructure,
		CategoryAdministrative,
		CategoryOther,
	}
}

// AllStatuses returns all valid status constants
func AllStatuses() []string {
	return []string{
		StatusPending,
		StatusInProgress,
		StatusResolved,
		StatusRejected,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, valid := range AllCategories() {
		if category == valid {
			return true
		}
	}
	return false
}

// IsValidStatus checks if a status string is valid
func IsValidStatus(status string) bool {
	for _, valid := range AllStatuses() {
		if status == valid {
			return true
		}
	}
	return false
}
