package handler

import (
	"log/slog"
	"net/http"

	"applyo/internal/delivery/http/middleware"
	"applyo/internal/delivery/http/response"
	"applyo/internal/domain/entity"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ApplicationHandlerParams holds dependencies for ApplicationHandler, injected by Fx.
type ApplicationHandlerParams struct {
	fx.In

	ApplicationUC usecase.ApplicationUsecase
	Logger        *slog.Logger
}

// ApplicationHandler holds dependencies for job application handlers.
type ApplicationHandler struct {
	applicationUC usecase.ApplicationUsecase
	logger        *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler.
func NewApplicationHandler(params ApplicationHandlerParams) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: params.ApplicationUC,
		logger:        params.Logger,
	}
}

// CreateApplicationRequest represents the request body for applying to a job.
type CreateApplicationRequest struct {
	JobID          uuid.UUID `json:"job_id" validate:"required"`
	CompanyID      uuid.UUID `json:"company_id" validate:"required"`
	Source         string    `json:"source,omitempty"`
	ConsentTokenID uuid.UUID `json:"consent_token_id" validate:"required"`
}

// UpdateApplicationStatusRequest represents a company-side review transition.
type UpdateApplicationStatusRequest struct {
	Status          entity.ApplicationStatus `json:"status" validate:"required"`
	RejectionReason string                   `json:"rejection_reason,omitempty"`
}

// CreateApplication submits an application referencing an approved consent.
func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req CreateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	application, err := h.applicationUC.CreateApplication(c.Request().Context(), usecase.CreateApplicationInput{
		CandidateID:    candidateID,
		JobID:          req.JobID,
		CompanyID:      req.CompanyID,
		Source:         req.Source,
		ConsentTokenID: req.ConsentTokenID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, application)
}

// GetApplication retrieves one application. Candidates see their own,
// companies see applications to their jobs; everyone else gets NotFound.
func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid application ID")
	}

	application, err := h.applicationUC.GetApplication(c.Request().Context(), applicationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if application.CandidateID != userID && application.CompanyID != userID {
		return response.NotFound(c, "APPLICATION_NOT_FOUND", "Application not found")
	}

	return response.Success(c, http.StatusOK, application)
}

// UpdateStatus moves an application through review on behalf of the company.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid application ID")
	}

	var req UpdateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	application, err := h.applicationUC.UpdateApplicationStatus(c.Request().Context(), usecase.UpdateApplicationStatusInput{
		ApplicationID:   applicationID,
		CompanyID:       companyID,
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
		ReviewedBy:      companyID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, application)
}

// Withdraw lets the candidate retract their own application.
func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid application ID")
	}

	if err := h.applicationUC.WithdrawApplication(c.Request().Context(), candidateID, applicationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Application withdrawn"})
}

// ListMyApplications returns the authenticated candidate's applications.
func (h *ApplicationHandler) ListMyApplications(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	limit, offset := parsePagination(c)

	applications, err := h.applicationUC.ListCandidateApplications(c.Request().Context(), candidateID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, applications)
}

// ListCompanyApplications returns the applications across the company's jobs.
func (h *ApplicationHandler) ListCompanyApplications(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	limit, offset := parsePagination(c)

	applications, err := h.applicationUC.ListCompanyApplications(c.Request().Context(), companyID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, applications)
}
