package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

var watchableTables = map[string]bool{
	"students":           true,
	"gadgets":            true,
	"gadget_types":       true,
	"rentals":            true,
	"rental_extensions":  true,
	"damage_assessments": true,
	"transactions":       true,
}

const changePollTimeout = 25 * time.Second

// handleChanges is a long-poll endpoint: it blocks until a write touches the
// named table, the poll window lapses, or the client goes away. Dashboards
// poll it in a loop and refetch when changed is true.
func (s *Server) handleChanges(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]
	if !watchableTables[table] {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Unknown table")
		return
	}

	ch, cancel := s.hub.Subscribe(table)
	defer cancel()

	select {
	case <-ch:
		writeJSON(w, http.StatusOK, map[string]any{"table": table, "changed": true})
	case <-time.After(changePollTimeout):
		writeJSON(w, http.StatusOK, map[string]any{"table": table, "changed": false})
	case <-r.Context().Done():
		// Client disconnected, nothing to write.
	}
}
