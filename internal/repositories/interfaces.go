package repositories

import (
	"grievance-redressal/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	UnlockAccount(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
	ListUsers(offset, limit int) ([]*models.User, int64, error)
}

// GrievanceRepositoryInterface defines the contract for grievance repository operations
type GrievanceRepositoryInterface interface {
	Create(grievance *models.Grievance) error
	GetByID(id uint) (*models.Grievance, error)
	GetAll() ([]models.Grievance, error)
	GetAllWithFilters(filters models.GrievanceFilters, offset, limit int) ([]models.Grievance, int64, error)
	GetByStudentID(studentID uuid.UUID, offset, limit int) ([]models.Grievance, int64, error)
	Update(grievance *models.Grievance) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
}
