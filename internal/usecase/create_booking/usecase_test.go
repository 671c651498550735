package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	bookingRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/booking"
	horseRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/horse"
	providerRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/provider"
	"github.com/m04kA/FarrierBookingService/pkg/ptr"
	"github.com/m04kA/FarrierBookingService/pkg/txmanager"
	"github.com/m04kA/FarrierBookingService/pkg/types"
)

type memoryBookings struct {
	bookings  []*domain.Booking
	createErr error
}

func (m *memoryBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	b.ID = int64(len(m.bookings) + 1)
	m.bookings = append(m.bookings, b)
	return b, nil
}

func (m *memoryBookings) GetByProviderWithFilter(_ context.Context, f domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range m.bookings {
		if b.ProviderID == f.ProviderID && domain.IsSameDay(b.BookingDate, *f.StartDate) && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeProviders struct {
	config *domain.ProviderSlotsConfig
}

func (f *fakeProviders) GetByID(_ context.Context, id int64) (*domain.Provider, error) {
	if id != 1 {
		return nil, providerRepo.ErrProviderNotFound
	}
	return &domain.Provider{ID: 1, OwnerUserID: 500}, nil
}

func (f *fakeProviders) GetService(_ context.Context, _, serviceID int64) (*domain.ProviderService, error) {
	switch serviceID {
	case 5:
		return &domain.ProviderService{ID: 5, ProviderID: 1, Name: "Trim", Price: decimal.RequireFromString("45.50"), IsActive: true}, nil
	case 6:
		return &domain.ProviderService{ID: 6, ProviderID: 1, Name: "Shoeing", DurationMinutes: 120, Price: decimal.NewFromInt(150), IsActive: true}, nil
	case 7:
		return &domain.ProviderService{ID: 7, ProviderID: 1, Name: "Old", IsActive: false}, nil
	}
	return nil, providerRepo.ErrServiceNotFound
}

func (f *fakeProviders) GetSlotsConfig(_ context.Context, _ int64) (*domain.ProviderSlotsConfig, error) {
	if f.config == nil {
		return nil, providerRepo.ErrConfigNotFound
	}
	return f.config, nil
}

func (f *fakeProviders) GetSchedule(_ context.Context, _ int64) ([]domain.DaySchedule, error) {
	return nil, nil
}

type memoryHorses struct {
	horses []*domain.Horse
}

func (m *memoryHorses) GetByID(_ context.Context, id int64) (*domain.Horse, error) {
	for _, h := range m.horses {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, horseRepo.ErrHorseNotFound
}

func (m *memoryHorses) GetByCustomerID(_ context.Context, customerID int64) ([]*domain.Horse, error) {
	var out []*domain.Horse
	for _, h := range m.horses {
		if h.CustomerID == customerID {
			out = append(out, h)
		}
	}
	return out, nil
}

type passthroughTx struct {
	calls     int
	commitErr error
}

func (p *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return p.commitErr
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Вторник, 09:15
var now = time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)

// Среда
var tomorrow = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

type fixture struct {
	uc        *UseCase
	bookings  *memoryBookings
	providers *fakeProviders
	tx        *passthroughTx
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  &memoryBookings{},
		providers: &fakeProviders{config: &domain.ProviderSlotsConfig{ID: 1, ProviderID: 1, SlotDurationMinutes: 60, MaxConcurrentBookings: 1, MinBookingNoticeMinutes: 60}},
		tx:        &passthroughTx{},
	}
	horses := &memoryHorses{horses: []*domain.Horse{
		{ID: 10, CustomerID: 100, Name: "Bella"},
		{ID: 20, CustomerID: 200, Name: "Storm"},
		{ID: 21, CustomerID: 200, Name: "Comet"},
	}}
	f.uc = NewUseCase(f.bookings, f.providers, horses, f.tx, nopLogger{})
	f.uc.timeProvider = fixedClock{now: now}
	return f
}

func TestExecute_SingleHorseImplicit(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 100, ProviderID: 1, ServiceID: 5, Date: tomorrow, StartTime: "10:00", Notes: ptr.Ptr("  gate code 42 "),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.HorseID)
	assert.Equal(t, "Bella", resp.HorseName)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Trim", resp.ServiceName)
	assert.True(t, decimal.RequireFromString("45.50").Equal(resp.ServicePrice))
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "gate code 42", *resp.Notes)
	assert.Equal(t, 1, f.tx.calls)
}

func TestExecute_HorseResolution(t *testing.T) {
	tests := []struct {
		name       string
		customerID int64
		horseID    *int64
		wantHorse  int64
		wantErr    error
	}{
		{name: "explicit own horse", customerID: 200, horseID: ptr.Ptr(int64(21)), wantHorse: 21},
		{name: "several horses without choice", customerID: 200, wantErr: ErrHorseRequired},
		{name: "no horses", customerID: 300, wantErr: ErrHorseRequired},
		{name: "foreign horse", customerID: 100, horseID: ptr.Ptr(int64(20)), wantErr: ErrHorseNotFound},
		{name: "unknown horse", customerID: 100, horseID: ptr.Ptr(int64(99)), wantErr: ErrHorseNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			resp, err := f.uc.Execute(context.Background(), &Request{
				CustomerID: tt.customerID, ProviderID: 1, ServiceID: 5, HorseID: tt.horseID, Date: tomorrow, StartTime: "10:00",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.bookings.bookings)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHorse, resp.HorseID)
		})
	}
}

func TestExecute_SlotRules(t *testing.T) {
	tests := []struct {
		name      string
		serviceID int64
		date      time.Time
		start     types.TimeString
		wantErr   error
	}{
		{name: "off grid", serviceID: 5, date: tomorrow, start: "10:30", wantErr: ErrInvalidTimeSlot},
		{name: "before opening", serviceID: 5, date: tomorrow, start: "07:00", wantErr: ErrInvalidTimeSlot},
		{name: "runs past closing", serviceID: 6, date: tomorrow, start: "16:00", wantErr: ErrInvalidTimeSlot},
		{name: "weekend", serviceID: 5, date: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), start: "10:00", wantErr: ErrProviderClosed},
		{name: "past date", serviceID: 5, date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), start: "10:00", wantErr: ErrInvalidDate},
		{name: "inside notice", serviceID: 5, date: now, start: "10:00", wantErr: ErrTooLateToBook},
		{name: "today after notice", serviceID: 5, date: now, start: "11:00"},
		{name: "inactive service", serviceID: 7, date: tomorrow, start: "10:00", wantErr: ErrServiceInactive},
		{name: "unknown service", serviceID: 8, date: tomorrow, start: "10:00", wantErr: ErrServiceNotFound},
		{name: "bad time format", serviceID: 5, date: tomorrow, start: "25:00", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.uc.Execute(context.Background(), &Request{
				CustomerID: 100, ProviderID: 1, ServiceID: tt.serviceID, Date: tt.date, StartTime: tt.start,
			})

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_Capacity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := func(customerID int64, horseID int64, serviceID int64, start types.TimeString) error {
		_, err := f.uc.Execute(ctx, &Request{
			CustomerID: customerID, ProviderID: 1, ServiceID: serviceID, HorseID: &horseID, Date: tomorrow, StartTime: start,
		})
		return err
	}

	// 120 минут ковки занимают 10:00-12:00
	require.NoError(t, book(200, 20, 6, "10:00"))
	assert.ErrorIs(t, book(100, 10, 5, "11:00"), ErrSlotNotAvailable)
	assert.NoError(t, book(100, 10, 5, "12:00"), "touching intervals do not overlap")

	// Вторая параллельная запись разрешена при maxConcurrentBookings = 2
	f.providers.config.MaxConcurrentBookings = 2
	assert.NoError(t, book(200, 21, 5, "10:00"))
	assert.ErrorIs(t, book(100, 10, 5, "10:00"), ErrSlotNotAvailable)

	f.bookings.bookings[0].Status = domain.StatusCancelled
	assert.NoError(t, book(100, 10, 5, "10:00"), "cancelled bookings free the slot")
}

func TestExecute_AdvanceLimitAndDefaults(t *testing.T) {
	f := newFixture()
	f.providers.config.AdvanceBookingDays = 7

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 100, ProviderID: 1, ServiceID: 5, Date: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	// Без сохранённой конфигурации действует уведомление за 12 часов
	f.providers.config = nil
	_, err = f.uc.Execute(context.Background(), &Request{
		CustomerID: 100, ProviderID: 1, ServiceID: 5, Date: now, StartTime: "16:00",
	})
	assert.ErrorIs(t, err, ErrTooLateToBook)

	_, err = f.uc.Execute(context.Background(), &Request{
		CustomerID: 100, ProviderID: 2, ServiceID: 5, Date: tomorrow, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_ConcurrentConflict(t *testing.T) {
	req := &Request{CustomerID: 100, ProviderID: 1, ServiceID: 5, Date: tomorrow, StartTime: "10:00"}

	f := newFixture()
	f.bookings.createErr = fmt.Errorf("%w: Create - pq: could not serialize access", bookingRepo.ErrConcurrentWrite)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	f = newFixture()
	f.tx.commitErr = fmt.Errorf("%w: commit: pq: could not serialize access", txmanager.ErrSerializationFailure)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	f = newFixture()
	f.bookings.createErr = errors.New("connection refused")
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
}
