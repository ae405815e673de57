package repositories

import (
	"errors"
	"fmt"

	"grievance-redressal/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGrievanceNotFound = errors.New("grievance not found")

// GrievanceRepository handles database operations for grievances
type GrievanceRepository struct {
	db *gorm.DB
}

// NewGrievanceRepository creates a new grievance repository
func NewGrievanceRepository(db *gorm.DB) GrievanceRepositoryInterface {
	return &GrievanceRepository{
		db: db,
	}
}

// Create creates a new grievance in the database
func (r *GrievanceRepository) Create(grievance *models.Grievance) error {
	if grievance == nil {
		return errors.New("grievance cannot be nil")
	}

	if err := r.db.Create(grievance).Error; err != nil {
		return fmt.Errorf("failed to create grievance: %w", err)
	}

	return nil
}

// GetByID retrieves a grievance by its ID
func (r *GrievanceRepository) GetByID(id uint) (*models.Grievance, error) {
	var grievance models.Grievance
	if err := r.db.First(&grievance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("failed to get grievance by ID: %w", err)
	}

	return &grievance, nil
}

// GetAll retrieves every grievance ordered by creation time.
// Analytics works on the full data set, so no pagination here.
func (r *GrievanceRepository) GetAll() ([]models.Grievance, error) {
	var grievances []models.Grievance
	if err := r.db.Order("created_at ASC").Find(&grievances).Error; err != nil {
		return nil, fmt.Errorf("failed to get grievances: %w", err)
	}

	return grievances, nil
}

// GetAllWithFilters retrieves grievances with filters and pagination
func (r *GrievanceRepository) GetAllWithFilters(filters models.GrievanceFilters, offset, limit int) ([]models.Grievance, int64, error) {
	var grievances []models.Grievance
	var total int64

	query := r.db.Model(&models.Grievance{})

	if filters.StudentID != nil {
		query = query.Where("student_id = ?", *filters.StudentID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filters.CreatedAfter)
	}
	if filters.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filters.CreatedBefore)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered grievances: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&grievances).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered grievances: %w", err)
	}

	return grievances, total, nil
}

// GetByStudentID retrieves grievances submitted by a student with pagination
func (r *GrievanceRepository) GetByStudentID(studentID uuid.UUID, offset, limit int) ([]models.Grievance, int64, error) {
	var grievances []models.Grievance
	var total int64

	query := r.db.Model(&models.Grievance{}).Where("student_id = ?", studentID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count student grievances: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&grievances).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get student grievances: %w", err)
	}

	return grievances, total, nil
}

// Update updates a grievance
func (r *GrievanceRepository) Update(grievance *models.Grievance) error {
	if grievance == nil {
		return errors.New("grievance cannot be nil")
	}

	if err := r.db.Save(grievance).Error; err != nil {
		return fmt.Errorf("failed to update grievance: %w", err)
	}

	return nil
}

// UpdateFields updates specific fields of a grievance
func (r *GrievanceRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Grievance{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update grievance fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGrievanceNotFound
	}

	return nil
}

// Delete deletes a grievance
func (r *GrievanceRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Grievance{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete grievance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGrievanceNotFound
	}

	return nil
}

// CountByStatus counts grievances with the given status
func (r *GrievanceRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Grievance{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count grievances by status: %w", err)
	}

	return count, nil
}
