package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Rrens/autocatalog/internal/api/response"
	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/Rrens/autocatalog/internal/pagination"
	"github.com/Rrens/autocatalog/internal/service"
)

// ModelHandler handles car model endpoints
type ModelHandler struct {
	catalog *service.CatalogService
}

// NewModelHandler creates a new model handler
func NewModelHandler(catalog *service.CatalogService) *ModelHandler {
	return &ModelHandler{catalog: catalog}
}

// List handles paginated model listing
func (h *ModelHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.ListModels(r.Context(), pagination.ParseParams(r))
	if err != nil {
		writeError(w, err, "")
		return
	}

	response.OK(w, page)
}

// Create handles model creation
func (h *ModelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CarModelInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	model, err := h.catalog.CreateModel(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, fmt.Sprintf("make with ID %d not found", input.MakeID))
			return
		}
		writeError(w, err, "model name already exists")
		return
	}

	response.Created(w, model)
}

// Get handles getting a model by ID
func (h *ModelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "modelID")
	if err != nil {
		response.BadRequest(w, "invalid model ID")
		return
	}

	model, err := h.catalog.GetModel(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, fmt.Sprintf("model with ID %d not found", id))
			return
		}
		writeError(w, err, "")
		return
	}

	response.OK(w, model)
}

// Update handles renaming a model
func (h *ModelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "modelID")
	if err != nil {
		response.BadRequest(w, "invalid model ID")
		return
	}

	var input struct {
		Name string `json:"name" validate:"required,max=255"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	model, err := h.catalog.UpdateModel(r.Context(), id, input.Name)
	if err != nil {
		writeError(w, err, "model name already exists")
		return
	}

	response.OK(w, model)
}

// Delete handles removing a model
func (h *ModelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "modelID")
	if err != nil {
		response.BadRequest(w, "invalid model ID")
		return
	}

	if err := h.catalog.DeleteModel(r.Context(), id); err != nil {
		writeError(w, err, "")
		return
	}

	response.OK(w, map[string]string{"message": "model deleted successfully"})
}
