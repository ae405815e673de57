package services

import (
	"log/slog"
	"testing"

	"grievance-redressal/internal/dto"
	"grievance-redressal/internal/models"
	"grievance-redressal/internal/repositories"
	"grievance-redressal/internal/repositories/repository_mocks"
	"grievance-redressal/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type GrievanceServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	grievanceRepo *repository_mocks.MockGrievanceRepositoryInterface
	userRepo      *repository_mocks.MockUserRepositoryInterface
	metrics       *service_mocks.MockMetricsRecorderInterface
	service       GrievanceServiceInterface
}

func (s *GrievanceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.grievanceRepo = repository_mocks.NewMockGrievanceRepositoryInterface(s.ctrl)
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.service = NewGrievanceService(s.grievanceRepo, s.userRepo, s.metrics, slog.Default())
}

func (s *GrievanceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGrievanceServiceSuite(t *testing.T) {
	suite.Run(t, new(GrievanceServiceTestSuite))
}

func (s *GrievanceServiceTestSuite) student() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "student@university.edu",
		Name:  "Test Student",
		Role:  models.RoleStudent,
	}
}

func (s *GrievanceServiceTestSuite) TestSubmit_Success() {
	student := s.student()
	req := &dto.SubmitGrievanceRequest{
		Category:    models.CategoryHostel,
		Description: "The hostel water supply has been down for a week",
	}

	s.userRepo.EXPECT().GetByID(student.ID).Return(student, nil).Times(1)
	s.grievanceRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Grievance) error {
		g.ID = 1
		return nil
	}).Times(1)

	grievance, err := s.service.Submit(student.ID, req)

	s.NoError(err)
	s.NotNil(grievance)
	s.Equal(uint(1), grievance.ID)
	s.Equal(student.ID, grievance.StudentID)
	s.Equal(student.Name, grievance.StudentName)
	s.Equal(models.CategoryHostel, grievance.Category)
	s.Equal(models.StatusPending, grievance.Status)
}

func (s *GrievanceServiceTestSuite) TestSubmit_StudentNotFound() {
	studentID := uuid.New()

	s.userRepo.EXPECT().GetByID(studentID).Return(nil, repositories.ErrUserNotFound).Times(1)

	grievance, err := s.service.Submit(studentID, &dto.SubmitGrievanceRequest{
		Category:    models.CategoryAcademic,
		Description: "Course registration portal rejects valid selections",
	})

	s.Equal(ErrStudentNotFound, err)
	s.Nil(grievance)
}

func (s *GrievanceServiceTestSuite) TestGetByID_OwnGrievance() {
	student := s.student()
	grievance := &models.Grievance{
		ID:          7,
		StudentID:   student.ID,
		StudentName: student.Name,
		Category:    models.CategoryHostel,
		Description: "The hostel water supply has been down for a week",
		Status:      models.StatusPending,
	}

	s.grievanceRepo.EXPECT().GetByID(uint(7)).Return(grievance, nil).Times(1)

	found, err := s.service.GetByID(7, student.ID, false)
	s.NoError(err)
	s.Equal(grievance, found)
}

func (s *GrievanceServiceTestSuite) TestGetByID_OtherStudentDenied() {
	grievance := &models.Grievance{
		ID:        7,
		StudentID: uuid.New(),
		Status:    models.StatusPending,
	}

	s.grievanceRepo.EXPECT().GetByID(uint(7)).Return(grievance, nil).Times(1)

	found, err := s.service.GetByID(7, uuid.New(), false)
	s.Equal(ErrGrievanceAccessDenied, err)
	s.Nil(found)
}

func (s *GrievanceServiceTestSuite) TestGetByID_AdminSeesAll() {
	grievance := &models.Grievance{
		ID:        7,
		StudentID: uuid.New(),
		Status:    models.StatusPending,
	}

	s.grievanceRepo.EXPECT().GetByID(uint(7)).Return(grievance, nil).Times(1)

	found, err := s.service.GetByID(7, uuid.New(), true)
	s.NoError(err)
	s.Equal(grievance, found)
}

func (s *GrievanceServiceTestSuite) TestGetByID_NotFound() {
	s.grievanceRepo.EXPECT().GetByID(uint(99)).Return(nil, repositories.ErrGrievanceNotFound).Times(1)

	found, err := s.service.GetByID(99, uuid.New(), true)
	s.Equal(ErrGrievanceNotFound, err)
	s.Nil(found)
}

func (s *GrievanceServiceTestSuite) TestList_StudentScopedToOwn() {
	studentID := uuid.New()

	s.grievanceRepo.EXPECT().
		GetAllWithFilters(gomock.Any(), 0, 20).
		DoAndReturn(func(filters models.GrievanceFilters, offset, limit int) ([]models.Grievance, int64, error) {
			s.Require().NotNil(filters.StudentID)
			s.Equal(studentID, *filters.StudentID)
			return []models.Grievance{}, 0, nil
		}).Times(1)

	_, _, err := s.service.List(studentID, false, models.GrievanceFilters{}, 0, 20)
	s.NoError(err)
}

func (s *GrievanceServiceTestSuite) TestList_AdminKeepsFilters() {
	adminID := uuid.New()
	filters := models.GrievanceFilters{Status: models.StatusPending}

	s.grievanceRepo.EXPECT().
		GetAllWithFilters(gomock.Any(), 0, 20).
		DoAndReturn(func(f models.GrievanceFilters, offset, limit int) ([]models.Grievance, int64, error) {
			s.Nil(f.StudentID)
			s.Equal(models.StatusPending, f.Status)
			return []models.Grievance{{ID: 1}}, 1, nil
		}).Times(1)

	grievances, total, err := s.service.List(adminID, true, filters, 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(grievances, 1)
}

func (s *GrievanceServiceTestSuite) TestUpdateStatus_ResolvedStampsTime() {
	grievance := &models.Grievance{
		ID:          3,
		StudentID:   uuid.New(),
		StudentName: "Test Student",
		Category:    models.CategoryHostel,
		Description: "The hostel water supply has been down for a week",
		Status:      models.StatusInProgress,
	}

	s.grievanceRepo.EXPECT().GetByID(uint(3)).Return(grievance, nil).Times(1)
	s.grievanceRepo.EXPECT().Update(grievance).Return(nil).Times(1)

	updated, err := s.service.UpdateStatus(3, &dto.UpdateGrievanceStatusRequest{
		Status:   models.StatusResolved,
		Response: "Maintenance completed",
	})

	s.NoError(err)
	s.Equal(models.StatusResolved, updated.Status)
	s.Equal("Maintenance completed", updated.Response)
	s.NotNil(updated.ResolvedAt)
}

func (s *GrievanceServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	grievance := &models.Grievance{
		ID:     3,
		Status: models.StatusPending,
	}

	s.grievanceRepo.EXPECT().GetByID(uint(3)).Return(grievance, nil).Times(1)

	updated, err := s.service.UpdateStatus(3, &dto.UpdateGrievanceStatusRequest{
		Status: "Escalated",
	})

	s.ErrorIs(err, models.ErrInvalidStatus)
	s.Nil(updated)
}

func (s *GrievanceServiceTestSuite) TestUpdateStatus_NotFound() {
	s.grievanceRepo.EXPECT().GetByID(uint(42)).Return(nil, repositories.ErrGrievanceNotFound).Times(1)

	updated, err := s.service.UpdateStatus(42, &dto.UpdateGrievanceStatusRequest{
		Status: models.StatusResolved,
	})

	s.Equal(ErrGrievanceNotFound, err)
	s.Nil(updated)
}

func (s *GrievanceServiceTestSuite) TestListCategories() {
	categories := s.service.ListCategories()
	s.Equal(models.AllCategories(), categories)
}
