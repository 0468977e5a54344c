package http

import (
	"net/http"

	"gadgetlend-backend/internal/domain"
)

type createRentalRequest struct {
	StudentID int32   `json:"student_id"`
	DueDate   string  `json:"due_date"`
	GadgetIDs []int32 `json:"gadget_ids"`
}

func (s *Server) handleCreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.StudentID == 0 || req.DueDate == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Student and due date are required")
		return
	}

	rental, err := s.services.Rental.CreateRental(r.Context(), req.StudentID, req.DueDate, req.GadgetIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (s *Server) handleListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := s.services.Rental.ListRentals(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (s *Server) handleGetRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental id")
		return
	}
	rental, err := s.services.Rental.GetRental(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// lifecycleHandler adapts the rental transition methods, which all share the
// same shape, into handlers.
func (s *Server) lifecycleHandler(op func(r *http.Request, id int32) (*domain.Rental, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental id")
			return
		}
		rental, err := op(r, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rental)
	}
}

func (s *Server) handleApproveRental(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler(func(r *http.Request, id int32) (*domain.Rental, error) {
		return s.services.Rental.ApproveRequest(r.Context(), id)
	})(w, r)
}

func (s *Server) handleRejectRental(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler(func(r *http.Request, id int32) (*domain.Rental, error) {
		return s.services.Rental.RejectRequest(r.Context(), id)
	})(w, r)
}

func (s *Server) handlePickup(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler(func(r *http.Request, id int32) (*domain.Rental, error) {
		return s.services.Rental.Pickup(r.Context(), id)
	})(w, r)
}

func (s *Server) handleMarkReturned(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler(func(r *http.Request, id int32) (*domain.Rental, error) {
		return s.services.Rental.MarkReturned(r.Context(), id)
	})(w, r)
}

func (s *Server) handleMarkLost(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler(func(r *http.Request, id int32) (*domain.Rental, error) {
		return s.services.Rental.MarkLost(r.Context(), id)
	})(w, r)
}

type flagDamageRequest struct {
	InitialNotes string `json:"initial_notes"`
	FinalNotes   string `json:"final_notes"`
	FineCents    *int32 `json:"fine_cents"`
}

func (s *Server) handleFlagDamage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental id")
		return
	}
	var req flagDamageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.InitialNotes == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Initial notes are required")
		return
	}

	assessment, err := s.services.Rental.FlagDamage(r.Context(), id, req.InitialNotes, req.FinalNotes, req.FineCents)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, assessment)
}
