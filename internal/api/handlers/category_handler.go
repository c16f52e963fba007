package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pradiptars/stockpoint-be/internal/models"
	"github.com/pradiptars/stockpoint-be/internal/services"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles HTTP requests for category management.
type CategoryHandler struct {
	service services.CategoryServiceProvider
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service services.CategoryServiceProvider) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GetAll handles the request to list every category.
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve categories")
		fail(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	successData(w, http.StatusOK, categories)
}

// Create handles the request to create a new category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.CategoryCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create category")
		fail(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	successData(w, http.StatusCreated, category)
}

// Update handles the request to rename a category.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var payload models.CategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateCategory(id, payload); err != nil {
		log.Error().Err(err).Int("category_id", id).Msg("Failed to update category")
		fail(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	successMessage(w, http.StatusOK, "Category updated successfully")
}

// Delete handles the request to remove a category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.service.DeleteCategory(id); err != nil {
		log.Error().Err(err).Int("category_id", id).Msg("Failed to delete category")
		fail(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	successMessage(w, http.StatusOK, "Category deleted successfully")
}

// SearchPaginate handles a paged search over category names.
func (h *CategoryHandler) SearchPaginate(w http.ResponseWriter, r *http.Request) {
	var body models.PaginationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	categories, paginate, err := h.service.SearchPaginate(body)
	if err != nil {
		log.Error().Err(err).Str("term", body.Term).Msg("Failed to search categories")
		fail(w, http.StatusInternalServerError, "Failed to search categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"data":     categories,
		"paginate": paginate,
	})
}
