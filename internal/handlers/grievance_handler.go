package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"grievance-redressal/internal/dto"
	"grievance-redressal/internal/errors"
	"grievance-redressal/internal/models"
	"grievance-redressal/internal/services"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100

	filterDateLayout = "2006-01-02"
)

// GrievanceHandler handles grievance lifecycle HTTP requests
type GrievanceHandler struct {
	grievanceService services.GrievanceServiceInterface
}

// NewGrievanceHandler creates a new grievance handler
func NewGrievanceHandler(grievanceService services.GrievanceServiceInterface) *GrievanceHandler {
	return &GrievanceHandler{
		grievanceService: grievanceService,
	}
}

// Submit files a new grievance for the authenticated student
func (h *GrievanceHandler) Submit(c echo.Context) error {
	studentID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SubmitGrievanceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	grievance, err := h.grievanceService.Submit(studentID, &req)
	if err != nil {
		if err == services.ErrStudentNotFound {
			return SendError(c, errors.AuthMissingToken, errors.WithDetails("Student account no longer exists"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toGrievanceResponse(grievance),
		Message: "Grievance submitted successfully",
	})
}

// List returns grievances visible to the requestor. Students see only
// their own submissions; admins see everything and may filter freely.
func (h *GrievanceHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	isAdmin := getIsAdminFromContext(c)

	var req dto.ListGrievancesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	filters := models.GrievanceFilters{
		Status:   req.Status,
		Category: req.Category,
	}

	if fromStr := c.QueryParam("createdAfter"); fromStr != "" {
		from, err := time.Parse(filterDateLayout, fromStr)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("createdAfter must be formatted as YYYY-MM-DD"))
		}
		filters.CreatedAfter = &from
	}
	if toStr := c.QueryParam("createdBefore"); toStr != "" {
		to, err := time.Parse(filterDateLayout, toStr)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("createdBefore must be formatted as YYYY-MM-DD"))
		}
		filters.CreatedBefore = &to
	}

	offset := (page - 1) * perPage
	grievances, total, err := h.grievanceService.List(userID, isAdmin, filters, offset, perPage)
	if err != nil {
		return SendSystemError(c, err)
	}

	items := make([]dto.GrievanceResponse, 0, len(grievances))
	for i := range grievances {
		items = append(items, toGrievanceResponse(&grievances[i]))
	}

	return c.JSON(http.StatusOK, dto.GrievanceListResponse{
		Grievances: items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
	})
}

// GetByID returns a single grievance, enforcing student ownership
func (h *GrievanceHandler) GetByID(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	isAdmin := getIsAdminFromContext(c)

	id, err := parseGrievanceID(c)
	if err != nil {
		return SendError(c, errors.GrievanceInvalidID, errors.WithDetails("Grievance ID must be a positive integer"))
	}

	grievance, err := h.grievanceService.GetByID(id, userID, isAdmin)
	if err != nil {
		if err == services.ErrGrievanceNotFound {
			return SendError(c, errors.GrievanceNotFound)
		}
		if err == services.ErrGrievanceAccessDenied {
			return SendError(c, errors.GrievanceAccessDenied)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toGrievanceResponse(grievance),
	})
}

// UpdateStatus handles an admin status transition, optionally attaching
// a response note for the student
func (h *GrievanceHandler) UpdateStatus(c echo.Context) error {
	id, err := parseGrievanceID(c)
	if err != nil {
		return SendError(c, errors.GrievanceInvalidID, errors.WithDetails("Grievance ID must be a positive integer"))
	}

	var req dto.UpdateGrievanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	grievance, err := h.grievanceService.UpdateStatus(id, &req)
	if err != nil {
		if err == services.ErrGrievanceNotFound {
			return SendError(c, errors.GrievanceNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toGrievanceResponse(grievance),
		Message: "Grievance status updated successfully",
	})
}

// ListCategories returns the categories accepted on submission
func (h *GrievanceHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: h.grievanceService.ListCategories(),
	})
}

func parseGrievanceID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid grievance id %q", c.Param("id"))
	}
	return uint(id), nil
}

func toGrievanceResponse(g *models.Grievance) dto.GrievanceResponse {
	return dto.GrievanceResponse{
		ID:          g.ID,
		StudentID:   g.StudentID.String(),
		StudentName: g.StudentName,
		Category:    g.Category,
		Description: g.Description,
		Status:      g.Status,
		Response:    g.Response,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
		ResolvedAt:  g.ResolvedAt,
	}
}
