package services

import (
	"errors"
	"fmt"
	"log/slog"

	"grievance-redressal/internal/dto"
	"grievance-redressal/internal/models"
	"grievance-redressal/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrGrievanceNotFound     = errors.New("grievance not found")
	ErrGrievanceAccessDenied = errors.New("grievance belongs to another student")
	ErrStudentNotFound       = errors.New("student not found")
)

// GrievanceService handles grievance lifecycle business logic
type GrievanceService struct {
	grievanceRepo repositories.GrievanceRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	metrics       MetricsRecorderInterface
	logger        *slog.Logger
}

// NewGrievanceService creates a new grievance service
func NewGrievanceService(
	grievanceRepo repositories.GrievanceRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) GrievanceServiceInterface {
	return &GrievanceService{
		grievanceRepo: grievanceRepo,
		userRepo:      userRepo,
		metrics:       metrics,
		logger:        logger,
	}
}

// Submit records a new grievance for a student
func (s *GrievanceService) Submit(studentID uuid.UUID, req *dto.SubmitGrievanceRequest) (*models.Grievance, error) {
	student, err := s.userRepo.GetByID(studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	grievance := &models.Grievance{
		StudentID:   student.ID,
		StudentName: student.Name,
		Category:    req.Category,
		Description: req.Description,
		Status:      models.StatusPending,
	}

	if err := s.grievanceRepo.Create(grievance); err != nil {
		return nil, fmt.Errorf("failed to create grievance: %w", err)
	}

	s.metrics.IncrementCounter("grievance_submitted", map[string]string{"category": grievance.Category})
	s.logger.Info("grievance submitted",
		"grievance_id", grievance.ID,
		"student_id", student.ID,
		"category", grievance.Category)

	return grievance, nil
}

// GetByID retrieves a grievance, enforcing ownership for students
func (s *GrievanceService) GetByID(id uint, requestorID uuid.UUID, isAdmin bool) (*models.Grievance, error) {
	grievance, err := s.grievanceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrGrievanceNotFound) {
			return nil, ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("failed to get grievance: %w", err)
	}

	if !isAdmin && grievance.StudentID != requestorID {
		return nil, ErrGrievanceAccessDenied
	}

	return grievance, nil
}

// List retrieves grievances. Students only see their own submissions,
// admins see everything and may filter by student.
func (s *GrievanceService) List(requestorID uuid.UUID, isAdmin bool, filters models.GrievanceFilters, offset, limit int) ([]models.Grievance, int64, error) {
	if !isAdmin {
		filters.StudentID = &requestorID
	}

	grievances, total, err := s.grievanceRepo.GetAllWithFilters(filters, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list grievances: %w", err)
	}

	return grievances, total, nil
}

// UpdateStatus transitions a grievance to a new status, optionally
// attaching an admin response. Resolving stamps the resolution time.
func (s *GrievanceService) UpdateStatus(id uint, req *dto.UpdateGrievanceStatusRequest) (*models.Grievance, error) {
	grievance, err := s.grievanceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrGrievanceNotFound) {
			return nil, ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("failed to get grievance: %w", err)
	}

	if err := grievance.UpdateStatus(req.Status); err != nil {
		return nil, err
	}

	if req.Response != "" {
		grievance.AddResponse(req.Response)
	}

	if err := s.grievanceRepo.Update(grievance); err != nil {
		return nil, fmt.Errorf("failed to update grievance: %w", err)
	}

	s.metrics.IncrementCounter("grievance_status_updated", map[string]string{"status": grievance.Status})
	s.logger.Info("grievance status updated",
		"grievance_id", grievance.ID,
		"status", grievance.Status)

	return grievance, nil
}

// ListCategories returns the categories accepted on submission
func (s *GrievanceService) ListCategories() []string {
	return models.AllCategories()
}
