package repositories

import (
	"testing"
	"time"

	"grievance-redressal/internal/database"
	"grievance-redressal/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestGrievanceRepository(t *testing.T) {
	suite.Run(t, new(GrievanceRepositorySuite))
}

type GrievanceRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    GrievanceRepositoryInterface
	student *models.User
}

func (s *GrievanceRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewGrievanceRepository(s.db.DB)
	s.student = database.CreateTestUser(s.T(), s.db, "student@university.edu")
}

func (s *GrievanceRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *GrievanceRepositorySuite) newGrievance(category, status string) *models.Grievance {
	return &models.Grievance{
		StudentID:   s.student.ID,
		StudentName: s.student.Name,
		Category:    category,
		Description: "The hostel water supply has been down for a week",
		Status:      status,
	}
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_Create() {
	grievance := s.newGrievance(models.CategoryHostel, models.StatusPending)

	err := s.repo.Create(grievance)
	s.NoError(err)
	s.NotZero(grievance.ID)
	s.NotZero(grievance.CreatedAt)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_Create_SequentialIDs() {
	first := s.newGrievance(models.CategoryHostel, models.StatusPending)
	second := s.newGrievance(models.CategoryAcademic, models.StatusPending)

	s.NoError(s.repo.Create(first))
	s.NoError(s.repo.Create(second))

	s.Equal(first.ID+1, second.ID)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_GetByID() {
	grievance := s.newGrievance(models.CategoryAcademic, models.StatusPending)
	s.NoError(s.repo.Create(grievance))

	found, err := s.repo.GetByID(grievance.ID)
	s.NoError(err)
	s.Equal(grievance.ID, found.ID)
	s.Equal(models.CategoryAcademic, found.Category)

	_, err = s.repo.GetByID(99999)
	s.Equal(ErrGrievanceNotFound, err)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_GetAll() {
	s.NoError(s.repo.Create(s.newGrievance(models.CategoryHostel, models.StatusPending)))
	s.NoError(s.repo.Create(s.newGrievance(models.CategoryFaculty, models.StatusResolved)))

	grievances, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(grievances, 2)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_GetAllWithFilters() {
	s.NoError(s.repo.Create(s.newGrievance(models.CategoryHostel, models.StatusPending)))
	s.NoError(s.repo.Create(s.newGrievance(models.CategoryHostel, models.StatusResolved)))
	s.NoError(s.repo.Create(s.newGrievance(models.CategoryAcademic, models.StatusPending)))

	// Filter by status
	grievances, total, err := s.repo.GetAllWithFilters(models.GrievanceFilters{
		Status: models.StatusPending,
	}, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(grievances, 2)

	// Filter by category and status
	grievances, total, err = s.repo.GetAllWithFilters(models.GrievanceFilters{
		Category: models.CategoryHostel,
		Status:   models.StatusResolved,
	}, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(grievances, 1)
	s.Equal(models.StatusResolved, grievances[0].Status)

	// Filter by student
	grievances, total, err = s.repo.GetAllWithFilters(models.GrievanceFilters{
		StudentID: &s.student.ID,
	}, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(grievances, 3)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_GetAllWithFilters_DateRange() {
	grievance := s.newGrievance(models.CategoryHostel, models.StatusPending)
	s.NoError(s.repo.Create(grievance))

	after := grievance.CreatedAt.Add(time.Hour)
	_, total, err := s.repo.GetAllWithFilters(models.GrievanceFilters{
		CreatedAfter: &after,
	}, 0, 10)
	s.NoError(err)
	s.Equal(int64(0), total)

	before := grievance.CreatedAt.Add(time.Hour)
	_, total, err = s.repo.GetAllWithFilters(models.GrievanceFilters{
		CreatedBefore: &before,
	}, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_GetByStudentID() {
	other := database.CreateTestUser(s.T(), s.db, "other@university.edu")

	s.NoError(s.repo.Create(s.newGrievance(models.CategoryHostel, models.StatusPending)))
	s.NoError(s.repo.Create(&models.Grievance{
		StudentID:   other.ID,
		StudentName: other.Name,
		Category:    models.CategoryAcademic,
		Description: "Course registration portal rejects valid selections",
		Status:      models.StatusPending,
	}))

	grievances, total, err := s.repo.GetByStudentID(s.student.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(grievances, 1)
	s.Equal(s.student.ID, grievances[0].StudentID)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_Update() {
	grievance := s.newGrievance(models.CategoryHostel, models.StatusPending)
	s.NoError(s.repo.Create(grievance))

	s.NoError(grievance.UpdateStatus(models.StatusResolved))
	grievance.Response = "Maintenance completed"
	s.NoError(s.repo.Update(grievance))

	updated, err := s.repo.GetByID(grievance.ID)
	s.NoError(err)
	s.Equal(models.StatusResolved, updated.Status)
	s.Equal("Maintenance completed", updated.Response)
	s.NotNil(updated.ResolvedAt)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_UpdateFields() {
	grievance := s.newGrievance(models.CategoryHostel, models.StatusPending)
	s.NoError(s.repo.Create(grievance))

	err := s.repo.UpdateFields(grievance.ID, map[string]interface{}{
		"status": models.StatusInProgress,
	})
	s.NoError(err)

	updated, err := s.repo.GetByID(grievance.ID)
	s.NoError(err)
	s.Equal(models.StatusInProgress, updated.Status)

	err = s.repo.UpdateFields(99999, map[string]interface{}{
		"status": models.StatusResolved,
	})
	s.Equal(ErrGrievanceNotFound, err)
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_Delete() {
	grievance := s.newGrievance(models.CategoryHostel, models.StatusPending)
	s.NoError(s.repo.Create(grievance))

	s.NoError(s.repo.Delete(grievance.ID))

	_, err := s.repo.GetByID(grievance.ID)
	s.Equal(ErrGrievanceNotFound, err)

	s.Equal(ErrGrievanceNotFound, s.repo.Delete(grievance.ID))
}

func (s *GrievanceRepositorySuite) TestGrievanceRepository_CountByStatus() {
	s.NoError(s.repo.Create(s.newGrievance(models.CategoryHostel, models.StatusPending)))
	s.NoError(s.repo.Create(s.newGrievance(models.CategoryFaculty, models.StatusPending)))
	s.NoError(s.repo.Create(s.newGrievance(models.CategoryAcademic, models.StatusResolved)))

	count, err := s.repo.CountByStatus(models.StatusPending)
	s.NoError(err)
	s.Equal(int64(2), count)

	count, err = s.repo.CountByStatus(models.StatusRejected)
	s.NoError(err)
	s.Equal(int64(0), count)
}
