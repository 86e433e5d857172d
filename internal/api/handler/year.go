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

// YearHandler handles car year endpoints
type YearHandler struct {
	catalog *service.CatalogService
}

// NewYearHandler creates a new year handler
func NewYearHandler(catalog *service.CatalogService) *YearHandler {
	return &YearHandler{catalog: catalog}
}

// List handles paginated year listing
func (h *YearHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.ListYears(r.Context(), pagination.ParseParams(r))
	if err != nil {
		writeError(w, err, "")
		return
	}

	response.OK(w, page)
}

// Create handles year creation
func (h *YearHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CarYearInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	year, err := h.catalog.CreateYear(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, fmt.Sprintf("model with ID %d not found", input.ModelID))
			return
		}
		writeError(w, err, "year for this model already exists")
		return
	}

	response.Created(w, year)
}

// Get handles getting a year by ID
func (h *YearHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "yearID")
	if err != nil {
		response.BadRequest(w, "invalid year ID")
		return
	}

	year, err := h.catalog.GetYear(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, fmt.Sprintf("year with ID %d not found", id))
			return
		}
		writeError(w, err, "")
		return
	}

	response.OK(w, year)
}

// Update handles changing a year's value
func (h *YearHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "yearID")
	if err != nil {
		response.BadRequest(w, "invalid year ID")
		return
	}

	var input struct {
		Year int `json:"year" validate:"required,gte=1900,lte=2100"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	year, err := h.catalog.UpdateYear(r.Context(), id, input.Year)
	if err != nil {
		writeError(w, err, "year for this model already exists")
		return
	}

	response.OK(w, year)
}

// Delete handles removing a year
func (h *YearHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "yearID")
	if err != nil {
		response.BadRequest(w, "invalid year ID")
		return
	}

	if err := h.catalog.DeleteYear(r.Context(), id); err != nil {
		writeError(w, err, "")
		return
	}

	response.OK(w, map[string]string{"message": "year deleted successfully"})
}
