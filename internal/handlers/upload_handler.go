package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxUploadMemory = 50 << 20

// UploadService is the interface that wraps the file upload operation
type UploadService interface {
	// Upload stores the content under a generated name
	//
	// "ctx" is the context for the request.
	// "reader" is the file content.
	// "originalName" is the client supplied file name.
	//
	// Returns the public URL of the stored file and an error if any.
	Upload(ctx context.Context, reader io.Reader, originalName string) (string, error)
	// Open returns the content of a stored file
	//
	// "ctx" is the context for the request.
	// "name" is the stored file name.
	//
	// If the file does not exist, a not found error will be returned.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// UploadHandler handles file upload HTTP requests
type UploadHandler struct {
	handlers.BaseHandler
	service UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(svc UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the upload route behind the admin middleware
func (h *UploadHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.With(adminMiddleware).Post("/upload", h.Upload)
}

// RegisterFileRoutes serves stored files publicly under basePath
func (h *UploadHandler) RegisterFileRoutes(r chi.Router, basePath string) {
	r.Get(basePath+"/{name}", h.Download)
}

// Upload handles POST /upload
// @Summary Upload a file
// @Description Store a multipart file and return its public URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} models.UploadResponse "File stored"
// @Failure 400 {object} map[string]string "File is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /upload [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.Logger.Info("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	url, err := h.service.Upload(r.Context(), file, header.Filename)
	if err != nil {
		h.RespondServiceError(w, r, "failed to upload file", err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, models.UploadResponse{URL: url})
}

// Download handles GET <upload base path>/{name}
// @Summary Download an uploaded file
// @Description Serve a stored file with range request support
// @Tags upload
// @Produce octet-stream
// @Param name path string true "Stored file name"
// @Success 200 {file} file "File content"
// @Failure 404 {object} map[string]string "File not found"
// @Router /uploads/{name} [get]
func (h *UploadHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	file, err := h.service.Open(r.Context(), name)
	if err != nil {
		h.RespondServiceError(w, r, "failed to open uploaded file", err)
		return
	}
	defer file.Close()

	if seeker, ok := file.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, time.Time{}, seeker)
		return
	}

	if _, err := io.Copy(w, file); err != nil {
		h.Logger.Warn("failed to stream uploaded file", zap.String("file", name), zap.Error(err))
	}
}
