package service

import (
	"context"
	"time"

	"salon-admin/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockCatalogRepository) ListPackages(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockCatalogRepository) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

// MockMembershipRepository is a mock implementation of MembershipRepository.
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) List(ctx context.Context) ([]model.Membership, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Membership), args.Error(1)
}

func (m *MockMembershipRepository) GetByID(ctx context.Context, id string) (*model.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Membership), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) ListByRange(ctx context.Context, start, end time.Time, locationID *string) ([]model.Appointment, error) {
	args := m.Called(ctx, start, end, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	// Return a MockTx interface value, not a pointer
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, tx pgx.Tx, a *model.Appointment) error {
	args := m.Called(ctx, tx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) CreateBookings(ctx context.Context, tx pgx.Tx, bookings []model.Booking) error {
	args := m.Called(ctx, tx, bookings)
	return args.Error(0)
}

// MockCouponBook is a mock implementation of CouponBook.
type MockCouponBook struct {
	mock.Mock
}

func (m *MockCouponBook) Search(query string) []model.Coupon {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Coupon)
}

func (m *MockCouponBook) GetByID(ctx context.Context, id string) *model.Coupon {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Coupon)
}

func (m *MockCouponBook) ValidateCode(ctx context.Context, code string) *model.Coupon {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Coupon)
}

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Quote(ctx context.Context, req *model.QuoteRequest) (*model.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func ptr[T any](v T) *T { return &v }

// testCatalog returns a small catalog shared by the service tests.
func testCatalog() ([]model.Service, []model.Package, []model.Employee) {
	services := []model.Service{
		{ID: "svc-cut", Name: "Haircut", SellingPrice: 100, Duration: 45, CategoryID: "hair"},
		{ID: "svc-color", Name: "Colour", SellingPrice: 200, Duration: 90, CategoryID: "hair"},
		{ID: "svc-facial", Name: "Facial", SellingPrice: 80, Duration: 60},
	}
	packages := []model.Package{
		{
			ID:    "pkg-glow",
			Name:  "Glow Up",
			Price: 240,
			PackageServices: []model.PackageService{
				{ServiceID: "svc-cut", Service: services[0]},
				{ServiceID: "svc-color", Service: services[1]},
			},
		},
	}
	employees := []model.Employee{
		{ID: "emp-1", Name: "Alex Kim"},
	}
	return services, packages, employees
}
