package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gadgetlend-backend/internal/config"
	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/security"
	"gadgetlend-backend/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Admin), args.Error(2)
}

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, studentID int32, dueDate string, gadgetIDs []int32) (*domain.Rental, error) {
	args := m.Called(ctx, studentID, dueDate, gadgetIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ApproveRequest(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) RejectRequest(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Pickup(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) MarkReturned(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) MarkLost(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) FlagDamage(ctx context.Context, rentalID int32, initialNotes, finalNotes string, fineCents *int32) (*domain.DamageAssessment, error) {
	args := m.Called(ctx, rentalID, initialNotes, finalNotes, fineCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DamageAssessment), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, status string) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func newTestServer(t *testing.T, services *Services) (*Server, security.TokenManager) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	tokens := security.NewTokenManager("server-test-secret-0123456789abcdef", 60)
	return NewServer(cfg, services, tokens, notify.NewHub(), nil), tokens
}

func TestHandleLogin(t *testing.T) {
	auth := new(MockAuthService)
	srv, _ := newTestServer(t, &Services{Auth: auth})

	t.Run("Success", func(t *testing.T) {
		admin := &domain.Admin{ID: 1, Email: "admin@gadgetlend.local"}
		auth.On("Login", mock.Anything, "admin@gadgetlend.local", "pw").Return("tok123", admin, nil)

		body, _ := json.Marshal(map[string]string{"email": "admin@gadgetlend.local", "password": "pw"})
		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "tok123", resp.Data.Token)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		auth.ExpectedCalls = nil
		auth.On("Login", mock.Anything, "admin@gadgetlend.local", "nope").Return("", nil, service.ErrInvalidCredentials)

		body, _ := json.Marshal(map[string]string{"email": "admin@gadgetlend.local", "password": "nope"})
		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Missing fields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	rentals := new(MockRentalService)
	srv, tokens := newTestServer(t, &Services{Rental: rentals})

	t.Run("Missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/rentals", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/rentals", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid token passes through", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(1, "admin@gadgetlend.local")
		assert.NoError(t, err)

		rentals.On("ListRentals", mock.Anything, "").Return([]domain.Rental{}, nil)

		req := httptest.NewRequest("GET", "/api/v1/rentals", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRentalTransitionEndpoints(t *testing.T) {
	rentals := new(MockRentalService)
	srv, tokens := newTestServer(t, &Services{Rental: rentals})
	token, _ := tokens.GenerateAccessToken(1, "admin@gadgetlend.local")

	t.Run("Approve", func(t *testing.T) {
		rentals.On("ApproveRequest", mock.Anything, int32(5)).Return(&domain.Rental{
			ID: 5, Status: domain.RentalStatusApproved,
		}, nil)

		req := httptest.NewRequest("POST", "/api/v1/rentals/5/approve", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid transition maps to conflict", func(t *testing.T) {
		rentals.On("Pickup", mock.Anything, int32(6)).Return(nil, service.ErrInvalidTransition)

		req := httptest.NewRequest("POST", "/api/v1/rentals/6/pickup", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
