package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pradiptars/stockpoint-be/internal/services"
	"github.com/rs/zerolog/log"
)

// maxUploadSize caps user image uploads at 10 MiB.
const maxUploadSize = 10 << 20

// FileHandler handles user image upload, retrieval, and deletion.
type FileHandler struct {
	service services.FileServiceProvider
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(service services.FileServiceProvider) *FileHandler {
	return &FileHandler{service: service}
}

// Upload stores a user image from a multipart form under the "file" field.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		fail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		fail(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	filename, err := h.service.SaveUserImage(header.Filename, file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to store user image")
		fail(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	successData(w, http.StatusCreated, map[string]string{"filename": filename})
}

// GetImage serves a stored user image by filename.
func (h *FileHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	path, err := h.service.UserImagePath(filename)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			fail(w, http.StatusNotFound, services.ErrFileNotFound.Error())
			return
		}
		log.Error().Err(err).Str("filename", filename).Msg("Failed to resolve user image")
		fail(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	http.ServeFile(w, r, path)
}

// DeleteImage removes a stored user image by filename.
func (h *FileHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if err := h.service.DeleteUserImage(filename); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			fail(w, http.StatusNotFound, services.ErrFileNotFound.Error())
			return
		}
		log.Error().Err(err).Str("filename", filename).Msg("Failed to delete user image")
		fail(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	successMessage(w, http.StatusOK, "File deleted successfully")
}
