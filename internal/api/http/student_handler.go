package http

import (
	"net/http"

	"gadgetlend-backend/internal/domain"
)

type studentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Major         string `json:"major"`
	Year          int32  `json:"year"`
	AccountStatus string `json:"account_status"`
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var req studentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name and email are required")
		return
	}

	student := &domain.Student{
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Major:         req.Major,
		Year:          req.Year,
		AccountStatus: domain.AccountStatus(req.AccountStatus),
	}
	if err := s.services.Student.CreateStudent(r.Context(), student); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, student)
}

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := s.services.Student.ListStudents(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid student id")
		return
	}
	student, err := s.services.Student.GetStudent(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid student id")
		return
	}
	var req studentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	student := &domain.Student{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Major:         req.Major,
		Year:          req.Year,
		AccountStatus: domain.AccountStatus(req.AccountStatus),
	}
	if err := s.services.Student.UpdateStudent(r.Context(), student); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid student id")
		return
	}
	if err := s.services.Student.DeleteStudent(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}
