package handler

import (
	"log/slog"
	"net/http"

	"applyo/internal/delivery/http/middleware"
	"applyo/internal/delivery/http/response"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxDocumentSize caps a single uploaded document at 10 MiB.
const maxDocumentSize = 10 << 20

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

// DocumentHandler holds dependencies for candidate document handlers.
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler.
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

// Upload stores a document from a multipart form field named "file".
func (h *DocumentHandler) Upload(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file field")
	}
	if fileHeader.Size > maxDocumentSize {
		return response.BadRequest(c, "FILE_TOO_LARGE", "Document exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer file.Close()

	doc, err := h.documentUC.UploadDocument(c.Request().Context(), usecase.UploadDocumentInput{
		CandidateID: candidateID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, doc)
}

// Download streams a candidate's own document back.
func (h *DocumentHandler) Download(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid document ID")
	}

	output, err := h.documentUC.DownloadDocument(c.Request().Context(), candidateID, documentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer output.Content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+output.Metadata.FileName+`"`)

	return c.Stream(http.StatusOK, output.Metadata.ContentType, output.Content)
}

// List returns the candidate's document catalogue.
func (h *DocumentHandler) List(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	docs, err := h.documentUC.ListDocuments(c.Request().Context(), candidateID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, docs)
}

// Delete removes a document and its stored bytes.
func (h *DocumentHandler) Delete(c echo.Context) error {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid document ID")
	}

	if err := h.documentUC.DeleteDocument(c.Request().Context(), candidateID, documentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Document deleted"})
}
