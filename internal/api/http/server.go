package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gadgetlend-backend/internal/config"
	"gadgetlend-backend/internal/jobs"
	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/security"
	"gadgetlend-backend/internal/service"
)

// Services bundles the service dependencies the API needs.
type Services struct {
	Auth        service.AuthService
	Student     service.StudentService
	Gadget      service.GadgetService
	Rental      service.RentalService
	Extension   service.ExtensionService
	Assessment  service.AssessmentService
	Transaction service.TransactionService
}

// Server is the admin REST API.
type Server struct {
	httpServer *http.Server
	router     *mux.Router
	services   *Services
	tokens     security.TokenManager
	hub        *notify.Hub
	jobs       *jobs.JobRunner
}

func NewServer(cfg *config.Config, services *Services, tokens security.TokenManager, hub *notify.Hub, jobRunner *jobs.JobRunner) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		services: services,
		tokens:   tokens,
		hub:      hub,
		jobs:     jobRunner,
	}
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(requestIDMiddleware, loggingMiddleware)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/api/v1/auth/login", s.handleLogin).Methods("POST")

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware(s.tokens))

	api.HandleFunc("/students", s.handleCreateStudent).Methods("POST")
	api.HandleFunc("/students", s.handleListStudents).Methods("GET")
	api.HandleFunc("/students/{id:[0-9]+}", s.handleGetStudent).Methods("GET")
	api.HandleFunc("/students/{id:[0-9]+}", s.handleUpdateStudent).Methods("PUT")
	api.HandleFunc("/students/{id:[0-9]+}", s.handleDeleteStudent).Methods("DELETE")

	api.HandleFunc("/gadgets", s.handleAddGadget).Methods("POST")
	api.HandleFunc("/gadgets", s.handleListGadgets).Methods("GET")
	api.HandleFunc("/gadgets/{id:[0-9]+}", s.handleGetGadget).Methods("GET")
	api.HandleFunc("/gadgets/{id:[0-9]+}", s.handleUpdateGadget).Methods("PUT")
	api.HandleFunc("/gadgets/{id:[0-9]+}", s.handleDeleteGadget).Methods("DELETE")

	api.HandleFunc("/gadget-types", s.handleCreateGadgetType).Methods("POST")
	api.HandleFunc("/gadget-types", s.handleListGadgetTypes).Methods("GET")
	api.HandleFunc("/gadget-types/{id:[0-9]+}", s.handleDeleteGadgetType).Methods("DELETE")

	api.HandleFunc("/rentals", s.handleCreateRental).Methods("POST")
	api.HandleFunc("/rentals", s.handleListRentals).Methods("GET")
	api.HandleFunc("/rentals/{id:[0-9]+}", s.handleGetRental).Methods("GET")
	api.HandleFunc("/rentals/{id:[0-9]+}/approve", s.handleApproveRental).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/reject", s.handleRejectRental).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/pickup", s.handlePickup).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/return", s.handleMarkReturned).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/lost", s.handleMarkLost).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/damage", s.handleFlagDamage).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/extensions", s.handleRequestExtension).Methods("POST")

	api.HandleFunc("/extensions", s.handleListExtensions).Methods("GET")
	api.HandleFunc("/extensions/{id:[0-9]+}/approve", s.handleApproveExtension).Methods("POST")
	api.HandleFunc("/extensions/{id:[0-9]+}/reject", s.handleRejectExtension).Methods("POST")

	api.HandleFunc("/assessments", s.handleListAssessments).Methods("GET")
	api.HandleFunc("/assessments/{id:[0-9]+}/resolve", s.handleResolveAssessment).Methods("POST")

	api.HandleFunc("/transactions", s.handleListTransactions).Methods("GET")
	api.HandleFunc("/transactions/{id:[0-9]+}/pay", s.handleMarkPaid).Methods("POST")

	api.HandleFunc("/changes/{table}", s.handleChanges).Methods("GET")

	api.HandleFunc("/jobs/detect-overdues", s.handleDetectOverdues).Methods("POST")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Start begins serving. Blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func pathID(r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}
