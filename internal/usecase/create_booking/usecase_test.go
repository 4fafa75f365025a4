package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/integrations/customerservice"
)

var testDay = time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC)

type stubBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = 42
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.created = b
	return b, nil
}

func (s *stubBookingRepo) GetActiveBySpaces(_ context.Context, _ []int64, _ time.Time) ([]*domain.Booking, error) {
	return s.existing, nil
}

type stubRuleRepo struct {
	rules []*domain.Rule
}

func (s *stubRuleRepo) GetByIDs(_ context.Context, _ []int64) ([]*domain.Rule, error) {
	return s.rules, nil
}

type stubVenueRepo struct {
	space *domain.Space
}

func (s *stubVenueRepo) GetSpace(_ context.Context, _ int64) (*domain.Space, error) {
	return s.space, nil
}

type stubCustomerClient struct{}

func (stubCustomerClient) GetCustomer(_ context.Context, id int64) (*customerservice.Customer, error) {
	return &customerservice.Customer{ID: id, Name: "Anna Schmidt"}, nil
}

// passthroughTxManager выполняет fn без настоящей транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookingRepo *stubBookingRepo, ruleRepo *stubRuleRepo) *UseCase {
	uc := NewUseCase(
		bookingRepo,
		ruleRepo,
		&stubVenueRepo{space: &domain.Space{
			ID:        10,
			VenueID:   100,
			VenueName: "Riverside",
			Name:      "Grand Hall",
			Capacity:  300,
		}},
		stubCustomerClient{},
		passthroughTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: testDay.AddDate(0, -1, 0)}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID: 1,
		SpaceID:    10,
		EventName:  "Wedding reception",
		EventDate:  testDay,
		Window: domain.TimeWindow{
			Start: testDay.Add(10 * time.Hour),
			End:   testDay.Add(16 * time.Hour),
		},
		GuestCount: 120,
		BasePrice:  decimal.NewFromInt(1000),
		FeeIDs:     []int64{1},
		TaxIDs:     []int64{2},
	}
}

func TestUseCase_Execute_CreatesBookingWithComputedTotal(t *testing.T) {
	bookingRepo := &stubBookingRepo{}
	ruleRepo := &stubRuleRepo{rules: []*domain.Rule{
		{ID: 1, Name: "Service charge", Kind: domain.RuleKindFee, Calculation: domain.CalculationPercentage, Value: decimal.NewFromInt(10)},
		{ID: 2, Name: "VAT", Kind: domain.RuleKindTax, Calculation: domain.CalculationPercentage, Value: decimal.NewFromInt(20)},
	}}
	uc := newTestUseCase(bookingRepo, ruleRepo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, "Anna Schmidt", resp.Booking.CustomerName)
	assert.Equal(t, "Grand Hall", resp.Booking.SpaceName)
	assert.Equal(t, "Riverside", resp.Booking.VenueName)
	// 1000 + 100 (сбор) = 1100, + 220 (налог) = 1320
	assert.True(t, resp.Booking.TotalPrice.Equal(decimal.NewFromInt(1320)),
		"total = %s", resp.Booking.TotalPrice)
	assert.True(t, resp.Breakdown.SubtotalAfterFees.Equal(decimal.NewFromInt(1100)))
}

func TestUseCase_Execute_RejectsOverlappingWindow(t *testing.T) {
	bookingRepo := &stubBookingRepo{existing: []*domain.Booking{
		{
			ID:        5,
			SpaceID:   10,
			Status:    domain.StatusConfirmed,
			StartTime: testDay.Add(12 * time.Hour),
			EndTime:   testDay.Add(18 * time.Hour),
		},
	}}
	uc := newTestUseCase(bookingRepo, &stubRuleRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSpaceNotAvailable)
	assert.Nil(t, bookingRepo.created)
}

func TestUseCase_Execute_AllowsTouchingWindows(t *testing.T) {
	// Существующее бронирование заканчивается ровно в начале нового - это не конфликт
	bookingRepo := &stubBookingRepo{existing: []*domain.Booking{
		{
			ID:        5,
			SpaceID:   10,
			Status:    domain.StatusConfirmed,
			StartTime: testDay.Add(6 * time.Hour),
			EndTime:   testDay.Add(10 * time.Hour),
		},
	}}
	uc := newTestUseCase(bookingRepo, &stubRuleRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, bookingRepo.created)
}

func TestUseCase_Execute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubRuleRepo{})

	tests := []struct {
		name     string
		mutate   func(r *Request)
		expected error
	}{
		{
			name:     "inverted window",
			mutate:   func(r *Request) { r.Window.Start, r.Window.End = r.Window.End, r.Window.Start },
			expected: ErrInvalidTimeWindow,
		},
		{
			name:     "missing event name",
			mutate:   func(r *Request) { r.EventName = "" },
			expected: ErrInvalidInput,
		},
		{
			name:     "date in the past",
			mutate:   func(r *Request) { r.EventDate = testDay.AddDate(-1, 0, 0) },
			expected: ErrInvalidTimeWindow, // окно больше не на дате мероприятия
		},
		{
			name:     "zero guests",
			mutate:   func(r *Request) { r.GuestCount = 0 },
			expected: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestUseCase_Execute_CapacityExceeded(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubRuleRepo{})

	req := validRequest()
	req.GuestCount = 500

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}
