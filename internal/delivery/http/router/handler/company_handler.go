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

// CompanyHandlerParams holds dependencies for CompanyHandler, injected by Fx.
type CompanyHandlerParams struct {
	fx.In

	CompanyUC usecase.CompanyUsecase
	Logger    *slog.Logger
}

// CompanyHandler holds dependencies for company profile and API key handlers.
type CompanyHandler struct {
	companyUC usecase.CompanyUsecase
	logger    *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler.
func NewCompanyHandler(params CompanyHandlerParams) *CompanyHandler {
	return &CompanyHandler{
		companyUC: params.CompanyUC,
		logger:    params.Logger,
	}
}

// CreatedAPIKeyResponse returns the issued key together with its raw value.
type CreatedAPIKeyResponse struct {
	APIKey *entity.APIKey `json:"api_key"`
	RawKey string         `json:"raw_key"` // Shown exactly once; only the hash is stored.
}

// CreateAPIKeyRequest represents the request body for issuing an API key.
type CreateAPIKeyRequest struct {
	Name          string   `json:"name" validate:"required"`
	Scopes        []string `json:"scopes,omitempty"`
	RateLimit     int      `json:"rate_limit,omitempty" validate:"omitempty,gt=0"`
	ExpiresInDays int      `json:"expires_in_days,omitempty" validate:"omitempty,gt=0"`
}

// GetProfile returns the authenticated company's account.
func (h *CompanyHandler) GetProfile(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	company, err := h.companyUC.GetCompany(c.Request().Context(), companyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, company)
}

// CreateAPIKey issues a fresh API key. The raw key appears in this response
// exactly once and is never retrievable again.
func (h *CompanyHandler) CreateAPIKey(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req CreateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid API key input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.companyUC.CreateAPIKey(c.Request().Context(), usecase.CreateAPIKeyInput{
		CompanyID:     companyID,
		Name:          req.Name,
		Scopes:        req.Scopes,
		RateLimit:     req.RateLimit,
		ExpiresInDays: req.ExpiresInDays,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreatedAPIKeyResponse{
		APIKey: output.APIKey,
		RawKey: output.RawKey,
	})
}

// ListAPIKeys returns the company's keys.
func (h *CompanyHandler) ListAPIKeys(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	keys, err := h.companyUC.ListAPIKeys(c.Request().Context(), companyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, keys)
}

// RevokeAPIKey deactivates a key, keeping its audit record.
func (h *CompanyHandler) RevokeAPIKey(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid API key ID")
	}

	if err := h.companyUC.RevokeAPIKey(c.Request().Context(), companyID, keyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "API key revoked"})
}

// DeleteAPIKey removes a key entirely.
func (h *CompanyHandler) DeleteAPIKey(c echo.Context) error {
	companyID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid API key ID")
	}

	if err := h.companyUC.DeleteAPIKey(c.Request().Context(), companyID, keyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "API key deleted"})
}
