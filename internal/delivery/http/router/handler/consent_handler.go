package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strconv"

	"applyo/internal/delivery/http/middleware"
	"applyo/internal/delivery/http/response"
	"applyo/internal/domain/entity"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConsentHandlerParams holds dependencies for ConsentHandler, injected by Fx.
type ConsentHandlerParams struct {
	fx.In

	ConsentUC usecase.ConsentUsecase
	Logger    *slog.Logger
}

// ConsentHandler holds dependencies for consent mediation handlers.
type ConsentHandler struct {
	consentUC usecase.ConsentUsecase
	logger    *slog.Logger
}

// NewConsentHandler is the constructor for ConsentHandler.
func NewConsentHandler(params ConsentHandlerParams) *ConsentHandler {
	return &ConsentHandler{
		consentUC: params.ConsentUC,
		logger:    params.Logger,
	}
}

// CreateConsentRequest represents the request body for opening a consent request.
type CreateConsentRequest struct {
	CandidateEmail  string     `json:"candidate_email,omitempty" validate:"omitempty,email"`
	JobID           *uuid.UUID `json:"job_id,omitempty"`
	RequestedFields []string   `json:"requested_fields" validate:"required,min=1"`
	PurposeOfUse    string     `json:"purpose_of_use" validate:"required"`
	RetentionDays   int        `json:"retention_days" validate:"required,gt=0"`
	ExpirationHours int        `json:"expiration_hours,omitempty" validate:"omitempty,gt=0"`
}

// RespondConsentRequest represents the candidate's decision.
type RespondConsentRequest struct {
	Token    string `json:"token" validate:"required"`
	Approved bool   `json:"approved"`
}

// CreateConsentResponse returns the created request plus the candidate-facing
// artifacts. The QR code PNG travels base64-encoded inside the JSON envelope.
type CreateConsentResponse struct {
	ConsentToken *entity.ConsentToken `json:"consent_token"`
	ConsentURL   string               `json:"consent_url"`
	QRCodePNG    string               `json:"qr_code_png,omitempty"`
}

// CreateConsent opens a new PENDING consent request on behalf of the company.
func (h *ConsentHandler) CreateConsent(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req CreateConsentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consent request input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.consentUC.CreateConsentRequest(c.Request().Context(), usecase.CreateConsentInput{
		CompanyID:       companyID,
		CandidateEmail:  req.CandidateEmail,
		JobID:           req.JobID,
		RequestedFields: req.RequestedFields,
		PurposeOfUse:    req.PurposeOfUse,
		RetentionDays:   req.RetentionDays,
		ExpirationHours: req.ExpirationHours,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := CreateConsentResponse{
		ConsentToken: output.ConsentToken,
		ConsentURL:   output.ConsentURL,
	}
	if len(output.QRCodePNG) > 0 {
		resp.QRCodePNG = base64.StdEncoding.EncodeToString(output.QRCodePNG)
	}

	return response.Success(c, http.StatusCreated, resp)
}

// GetConsentByToken presents the consent request behind an opaque token.
// The token string is the capability, so this endpoint needs no session.
func (h *ConsentHandler) GetConsentByToken(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing consent token")
	}

	consent, err := h.consentUC.GetConsentByToken(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, consent)
}

// RespondToConsent records the candidate's approve/deny decision.
func (h *ConsentHandler) RespondToConsent(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req RespondConsentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consent response input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	consent, err := h.consentUC.RespondToConsent(c.Request().Context(), usecase.RespondConsentInput{
		CandidateID: candidateID,
		Token:       req.Token,
		Approved:    req.Approved,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, consent)
}

// RevokeConsent withdraws a previously given consent.
func (h *ConsentHandler) RevokeConsent(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid consent token ID")
	}

	consent, err := h.consentUC.RevokeConsent(c.Request().Context(), candidateID, tokenID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, consent)
}

// ListMyConsents returns the authenticated candidate's consent history.
func (h *ConsentHandler) ListMyConsents(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	limit, offset := parsePagination(c)

	consents, err := h.consentUC.ListCandidateConsents(c.Request().Context(), candidateID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, consents)
}

// ListCompanyConsents returns the consent requests the company has opened.
func (h *ConsentHandler) ListCompanyConsents(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	limit, offset := parsePagination(c)

	consents, err := h.consentUC.ListCompanyConsents(c.Request().Context(), companyID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, consents)
}

// parsePagination reads limit/offset query parameters with sane bounds.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = 20
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
