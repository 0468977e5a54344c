package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/repository"
	"gadgetlend-backend/internal/service"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Error: &errorBody{Code: code, Message: message}}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// writeServiceError maps service and repository sentinels onto HTTP statuses.
// Anything unrecognized is a 500 with the detail kept out of the response.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, service.ErrNoGadgetsSelected):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "At least one gadget must be selected")
	case errors.Is(err, service.ErrInvalidDueDate):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Due date must be in YYYY-MM-DD format")
	case errors.Is(err, service.ErrFineAmountMissing):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "A positive fine amount is required")
	case errors.Is(err, service.ErrStudentNotActive):
		writeError(w, http.StatusConflict, "STUDENT_NOT_ACTIVE", "Student account is not active")
	case errors.Is(err, service.ErrGadgetNotAvailable):
		writeError(w, http.StatusConflict, "GADGET_NOT_AVAILABLE", err.Error())
	case errors.Is(err, service.ErrGadgetInUse):
		writeError(w, http.StatusConflict, "GADGET_IN_USE", "Gadget is currently in use")
	case errors.Is(err, service.ErrGadgetHasRentals):
		writeError(w, http.StatusConflict, "GADGET_HAS_RENTALS", "Gadget is referenced by rental records")
	case errors.Is(err, service.ErrStudentHasRentals):
		writeError(w, http.StatusConflict, "STUDENT_HAS_RENTALS", "Student has rentals that are not closed out")
	case errors.Is(err, service.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, service.ErrExtensionNotPending):
		writeError(w, http.StatusConflict, "EXTENSION_NOT_PENDING", "Extension request is already decided")
	case errors.Is(err, service.ErrAssessmentNotPending):
		writeError(w, http.StatusConflict, "ASSESSMENT_NOT_PENDING", "Assessment is already resolved")
	default:
		logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
