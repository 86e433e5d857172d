package handler

import (
	"errors"
	"net/http"

	"github.com/Rrens/autocatalog/internal/api/response"
	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// validationMessages turns validator errors into a field → message map.
func validationMessages(err error) any {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make(map[string]string)
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages[field] = "field is required"
		case "email":
			messages[field] = "invalid email format"
		case "min":
			messages[field] = "must be at least " + e.Param() + " characters"
		case "max":
			messages[field] = "must be at most " + e.Param() + " characters"
		case "gt", "gte":
			messages[field] = "must be at least " + e.Param()
		case "lte":
			messages[field] = "must be at most " + e.Param()
		default:
			messages[field] = "validation failed on " + e.Tag()
		}
	}
	return messages
}

// writeError maps a service failure to its status code. conflictMsg replaces
// the generic message for 409s so each resource can report its own conflict.
func writeError(w http.ResponseWriter, err error, conflictMsg string) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(w, validationErr.Message)
	case errors.Is(err, domain.ErrDuplicateEmail):
		response.Conflict(w, domain.ErrDuplicateEmail.Error())
	case errors.Is(err, domain.ErrConflict):
		if conflictMsg == "" {
			conflictMsg = domain.ErrConflict.Error()
		}
		response.Conflict(w, conflictMsg)
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(w, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, domain.ErrNotFound.Error())
	case errors.Is(err, domain.ErrStorageUnavailable):
		response.InternalError(w, "unable to complete the request at this time")
	default:
		log.Error().Err(err).Msg("Unhandled service error")
		response.InternalError(w, "internal server error")
	}
}
