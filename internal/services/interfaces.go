package services

import (
	"io"
	"time"

	"grievance-redressal/internal/analytics"
	"grievance-redressal/internal/dto"
	"grievance-redressal/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	HashPasswordWithoutValidation(password string) (string, error)
}

// GrievanceServiceInterface defines grievance lifecycle operations
type GrievanceServiceInterface interface {
	Submit(studentID uuid.UUID, req *dto.SubmitGrievanceRequest) (*models.Grievance, error)
	GetByID(id uint, requestorID uuid.UUID, isAdmin bool) (*models.Grievance, error)
	List(requestorID uuid.UUID, isAdmin bool, filters models.GrievanceFilters, offset, limit int) ([]models.Grievance, int64, error)
	UpdateStatus(id uint, req *dto.UpdateGrievanceStatusRequest) (*models.Grievance, error)
	ListCategories() []string
}

// AnalyticsServiceInterface provides aggregate statistics and reporting
// over the grievance data set
type AnalyticsServiceInterface interface {
	GetSummaryStatistics() (*analytics.SummaryStatistics, error)
	GetCategoryStatusMatrix() (*analytics.Matrix, error)
	GenerateReport(includeTrend bool) (string, error)
	ExportCSV(w io.Writer) error
	AnalyzeFile(path string) (*analytics.SummaryStatistics, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
