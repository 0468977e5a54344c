package http

import (
	"net/http"
	"strconv"

	"gadgetlend-backend/internal/domain"
)

type gadgetRequest struct {
	SerialNumber     string `json:"serial_number"`
	Name             string `json:"gadget_name"`
	TypeID           int32  `json:"type_id"`
	Description      string `json:"description"`
	PricePerDayCents int32  `json:"price_per_day_cents"`
	Status           string `json:"status"`
}

func (s *Server) handleAddGadget(w http.ResponseWriter, r *http.Request) {
	var req gadgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.SerialNumber == "" || req.Name == "" || req.TypeID == 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Serial number, name and type are required")
		return
	}

	gadget := &domain.Gadget{
		SerialNumber:     req.SerialNumber,
		Name:             req.Name,
		TypeID:           req.TypeID,
		Description:      req.Description,
		PricePerDayCents: req.PricePerDayCents,
		Status:           domain.GadgetStatus(req.Status),
	}
	if err := s.services.Gadget.AddGadget(r.Context(), gadget); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, gadget)
}

func (s *Server) handleListGadgets(w http.ResponseWriter, r *http.Request) {
	status := domain.GadgetStatus(r.URL.Query().Get("status"))
	var typeID int32
	if raw := r.URL.Query().Get("type_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid type_id")
			return
		}
		typeID = int32(parsed)
	}

	gadgets, err := s.services.Gadget.ListGadgets(r.Context(), status, typeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gadgets)
}

func (s *Server) handleGetGadget(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid gadget id")
		return
	}
	gadget, err := s.services.Gadget.GetGadget(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gadget)
}

func (s *Server) handleUpdateGadget(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid gadget id")
		return
	}
	var req gadgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	gadget := &domain.Gadget{
		ID:               id,
		SerialNumber:     req.SerialNumber,
		Name:             req.Name,
		TypeID:           req.TypeID,
		Description:      req.Description,
		PricePerDayCents: req.PricePerDayCents,
		Status:           domain.GadgetStatus(req.Status),
	}
	if err := s.services.Gadget.UpdateGadget(r.Context(), gadget); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gadget)
}

func (s *Server) handleDeleteGadget(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid gadget id")
		return
	}
	if err := s.services.Gadget.DeleteGadget(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}

func (s *Server) handleCreateGadgetType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"type_name"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Type name is required")
		return
	}

	gt := &domain.GadgetType{Name: req.Name}
	if err := s.services.Gadget.CreateType(r.Context(), gt); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, gt)
}

func (s *Server) handleListGadgetTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.services.Gadget.ListTypes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (s *Server) handleDeleteGadgetType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid type id")
		return
	}
	if err := s.services.Gadget.DeleteType(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}
