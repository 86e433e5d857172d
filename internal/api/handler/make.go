package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Rrens/autocatalog/internal/api/response"
	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/Rrens/autocatalog/internal/pagination"
	"github.com/Rrens/autocatalog/internal/service"
	"github.com/go-chi/chi/v5"
)

// MakeHandler handles car make endpoints
type MakeHandler struct {
	catalog *service.CatalogService
}

// NewMakeHandler creates a new make handler
func NewMakeHandler(catalog *service.CatalogService) *MakeHandler {
	return &MakeHandler{catalog: catalog}
}

func parseID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}

// List handles paginated make listing
func (h *MakeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.ListMakes(r.Context(), pagination.ParseParams(r))
	if err != nil {
		writeError(w, err, "")
		return
	}

	response.OK(w, page)
}

// Create handles make creation
func (h *MakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CarMakeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	make, err := h.catalog.CreateMake(r.Context(), input)
	if err != nil {
		writeError(w, err, "make already exists")
		return
	}

	response.Created(w, make)
}

// Get handles getting a make by ID
func (h *MakeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "makeID")
	if err != nil {
		response.BadRequest(w, "invalid make ID")
		return
	}

	make, err := h.catalog.GetMake(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, fmt.Sprintf("make with ID %d not found", id))
			return
		}
		writeError(w, err, "")
		return
	}

	response.OK(w, make)
}

// Update handles renaming a make
func (h *MakeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "makeID")
	if err != nil {
		response.BadRequest(w, "invalid make ID")
		return
	}

	var input domain.CarMakeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	make, err := h.catalog.UpdateMake(r.Context(), id, input)
	if err != nil {
		writeError(w, err, "make name already exists")
		return
	}

	response.OK(w, make)
}

// Delete handles removing a make
func (h *MakeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "makeID")
	if err != nil {
		response.BadRequest(w, "invalid make ID")
		return
	}

	if err := h.catalog.DeleteMake(r.Context(), id); err != nil {
		writeError(w, err, "")
		return
	}

	response.OK(w, map[string]string{"message": "make deleted successfully"})
}
