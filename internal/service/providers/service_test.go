package providers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	providerRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/provider"
	"github.com/m04kA/FarrierBookingService/internal/service/providers/models"
	"github.com/m04kA/FarrierBookingService/pkg/ptr"
)

type memoryRepo struct {
	providers map[int64]*domain.Provider
	configs   map[int64]*domain.ProviderSlotsConfig
	schedules map[int64][]domain.DaySchedule
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		providers: map[int64]*domain.Provider{1: {ID: 1, OwnerUserID: 100}},
		configs:   map[int64]*domain.ProviderSlotsConfig{},
		schedules: map[int64][]domain.DaySchedule{},
	}
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Provider, error) {
	if p, ok := r.providers[id]; ok {
		return p, nil
	}
	return nil, providerRepo.ErrProviderNotFound
}

func (r *memoryRepo) GetSlotsConfig(_ context.Context, providerID int64) (*domain.ProviderSlotsConfig, error) {
	if c, ok := r.configs[providerID]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, providerRepo.ErrConfigNotFound
}

func (r *memoryRepo) UpsertSlotsConfig(_ context.Context, c *domain.ProviderSlotsConfig) (*domain.ProviderSlotsConfig, error) {
	if c.ID == 0 {
		c.ID = int64(len(r.configs) + 1)
	}
	c.UpdatedAt = time.Now()
	copied := *c
	r.configs[c.ProviderID] = &copied
	return c, nil
}

func (r *memoryRepo) GetSchedule(_ context.Context, providerID int64) ([]domain.DaySchedule, error) {
	return r.schedules[providerID], nil
}

func (r *memoryRepo) ReplaceSchedule(_ context.Context, providerID int64, days []domain.DaySchedule) error {
	r.schedules[providerID] = days
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetConfig_Defaults(t *testing.T) {
	s := NewService(newMemoryRepo(), passthroughTx{}, nopLogger{})

	resp, err := s.GetConfig(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultMinBookingNoticeMinutes, resp.MinBookingNoticeMinutes)
	require.Len(t, resp.Schedule, 7)
	assert.Equal(t, "monday", resp.Schedule[0].Weekday)
	assert.True(t, resp.Schedule[0].IsOpen)
	assert.Equal(t, "08:00", *resp.Schedule[0].OpenTime)
	assert.Equal(t, "sunday", resp.Schedule[6].Weekday)
	assert.False(t, resp.Schedule[6].IsOpen)
	assert.Nil(t, resp.Schedule[6].OpenTime)

	_, err = s.GetConfig(context.Background(), 2)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUpdateConfig(t *testing.T) {
	repo := newMemoryRepo()
	s := NewService(repo, passthroughTx{}, nopLogger{})
	ctx := context.Background()

	resp, err := s.UpdateConfig(ctx, 1, &models.UpdateConfigRequest{
		UserID:                100,
		MaxConcurrentBookings: ptr.Ptr(2),
		Schedule: []models.DayScheduleRequest{
			{Weekday: "Saturday", IsOpen: true, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("13:00")},
			{Weekday: "monday", IsOpen: false},
		},
	})
	require.NoError(t, err)

	assert.False(t, resp.IsDefault)
	assert.Equal(t, 2, resp.MaxConcurrentBookings)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.False(t, resp.Schedule[0].IsOpen)
	assert.True(t, resp.Schedule[1].IsOpen, "tuesday keeps its default")
	assert.True(t, resp.Schedule[5].IsOpen)
	assert.Equal(t, "13:00", *resp.Schedule[5].CloseTime)

	// Частичное обновление не затрагивает расписание
	resp, err = s.UpdateConfig(ctx, 1, &models.UpdateConfigRequest{UserID: 100, SlotDurationMinutes: ptr.Ptr(30)})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
	assert.Equal(t, 2, resp.MaxConcurrentBookings)
	assert.True(t, resp.Schedule[5].IsOpen)
}

func TestUpdateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdateConfigRequest
		wantErr error
	}{
		{
			name:    "not the owner",
			req:     &models.UpdateConfigRequest{UserID: 7, SlotDurationMinutes: ptr.Ptr(30)},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "slot too short",
			req:     &models.UpdateConfigRequest{UserID: 100, SlotDurationMinutes: ptr.Ptr(5)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative notice",
			req:     &models.UpdateConfigRequest{UserID: 100, MinBookingNoticeMinutes: ptr.Ptr(-1)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "closes before it opens",
			req: &models.UpdateConfigRequest{UserID: 100, Schedule: []models.DayScheduleRequest{
				{Weekday: "friday", IsOpen: true, OpenTime: ptr.Ptr("15:00"), CloseTime: ptr.Ptr("09:00")},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown weekday",
			req: &models.UpdateConfigRequest{UserID: 100, Schedule: []models.DayScheduleRequest{
				{Weekday: "funday", IsOpen: false},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "duplicate weekday",
			req: &models.UpdateConfigRequest{UserID: 100, Schedule: []models.DayScheduleRequest{
				{Weekday: "friday", IsOpen: false},
				{Weekday: "Friday", IsOpen: false},
			}},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo()
			s := NewService(repo, passthroughTx{}, nopLogger{})

			_, err := s.UpdateConfig(context.Background(), 1, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.configs)
		})
	}
}
