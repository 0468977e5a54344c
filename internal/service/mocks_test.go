package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/repository"
)

// MockStudentRepo
type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}
func (m *MockStudentRepo) GetByID(ctx context.Context, id int32) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) Update(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}
func (m *MockStudentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStudentRepo) List(ctx context.Context, status string) ([]domain.Student, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Student), args.Error(1)
}
func (m *MockStudentRepo) CountActiveRentals(ctx context.Context, studentID int32) (int32, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).(int32), args.Error(1)
}

// MockGadgetRepo
type MockGadgetRepo struct {
	mock.Mock
}

func (m *MockGadgetRepo) Create(ctx context.Context, gadget *domain.Gadget) error {
	args := m.Called(ctx, gadget)
	return args.Error(0)
}
func (m *MockGadgetRepo) GetByID(ctx context.Context, id int32) (*domain.Gadget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gadget), args.Error(1)
}
func (m *MockGadgetRepo) Update(ctx context.Context, gadget *domain.Gadget) error {
	args := m.Called(ctx, gadget)
	return args.Error(0)
}
func (m *MockGadgetRepo) UpdateStatus(ctx context.Context, ids []int32, status domain.GadgetStatus) error {
	args := m.Called(ctx, ids, status)
	return args.Error(0)
}
func (m *MockGadgetRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGadgetRepo) List(ctx context.Context, status domain.GadgetStatus, typeID int32) ([]domain.Gadget, error) {
	args := m.Called(ctx, status, typeID)
	return args.Get(0).([]domain.Gadget), args.Error(1)
}
func (m *MockGadgetRepo) CountRentalReferences(ctx context.Context, gadgetID int32) (int32, error) {
	args := m.Called(ctx, gadgetID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockGadgetRepo) CreateType(ctx context.Context, gt *domain.GadgetType) error {
	args := m.Called(ctx, gt)
	return args.Error(0)
}
func (m *MockGadgetRepo) ListTypes(ctx context.Context) ([]domain.GadgetType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.GadgetType), args.Error(1)
}
func (m *MockGadgetRepo) DeleteType(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) List(ctx context.Context, status string) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) AddItems(ctx context.Context, rentalID int32, items []domain.RentalItem) error {
	args := m.Called(ctx, rentalID, items)
	return args.Error(0)
}
func (m *MockRentalRepo) GetItems(ctx context.Context, rentalID int32) ([]domain.RentalItem, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalRepo) UpdateDueDate(ctx context.Context, rentalID int32, dueDate time.Time) error {
	args := m.Called(ctx, rentalID, dueDate)
	return args.Error(0)
}

// MockExtensionRepo
type MockExtensionRepo struct {
	mock.Mock
}

func (m *MockExtensionRepo) Create(ctx context.Context, ext *domain.RentalExtension) error {
	args := m.Called(ctx, ext)
	return args.Error(0)
}
func (m *MockExtensionRepo) GetByID(ctx context.Context, id int32) (*domain.RentalExtension, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalExtension), args.Error(1)
}
func (m *MockExtensionRepo) UpdateStatus(ctx context.Context, id int32, status domain.RentalExtensionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockExtensionRepo) List(ctx context.Context, status string) ([]domain.RentalExtension, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.RentalExtension), args.Error(1)
}

// MockAssessmentRepo
type MockAssessmentRepo struct {
	mock.Mock
}

func (m *MockAssessmentRepo) Create(ctx context.Context, a *domain.DamageAssessment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssessmentRepo) GetByID(ctx context.Context, id int32) (*domain.DamageAssessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DamageAssessment), args.Error(1)
}
func (m *MockAssessmentRepo) UpdateStatus(ctx context.Context, id int32, status domain.AssessmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockAssessmentRepo) List(ctx context.Context, status string) ([]domain.DamageAssessment, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.DamageAssessment), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) MarkPaid(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTransactionRepo) List(ctx context.Context, status string, txType string) ([]domain.Transaction, error) {
	args := m.Called(ctx, status, txType)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) ExistsForRental(ctx context.Context, rentalID int32, txType domain.TransactionType) (bool, error) {
	args := m.Called(ctx, rentalID, txType)
	return args.Bool(0), args.Error(1)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}
func (m *MockAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

// MockStore bundles the repository mocks. ExecTx runs the callback against
// the same store, so expectations set on the mocks cover transactional calls
// too.
type MockStore struct {
	StudentRepo     *MockStudentRepo
	GadgetRepo      *MockGadgetRepo
	RentalRepo      *MockRentalRepo
	ExtensionRepo   *MockExtensionRepo
	AssessmentRepo  *MockAssessmentRepo
	TransactionRepo *MockTransactionRepo
	AdminRepo       *MockAdminRepo
}

func newMockStore() *MockStore {
	return &MockStore{
		StudentRepo:     new(MockStudentRepo),
		GadgetRepo:      new(MockGadgetRepo),
		RentalRepo:      new(MockRentalRepo),
		ExtensionRepo:   new(MockExtensionRepo),
		AssessmentRepo:  new(MockAssessmentRepo),
		TransactionRepo: new(MockTransactionRepo),
		AdminRepo:       new(MockAdminRepo),
	}
}

func (s *MockStore) Students() repository.StudentRepository         { return s.StudentRepo }
func (s *MockStore) Gadgets() repository.GadgetRepository           { return s.GadgetRepo }
func (s *MockStore) Rentals() repository.RentalRepository           { return s.RentalRepo }
func (s *MockStore) Extensions() repository.ExtensionRepository     { return s.ExtensionRepo }
func (s *MockStore) Assessments() repository.AssessmentRepository   { return s.AssessmentRepo }
func (s *MockStore) Transactions() repository.TransactionRepository { return s.TransactionRepo }
func (s *MockStore) Admins() repository.AdminRepository             { return s.AdminRepo }

func (s *MockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
