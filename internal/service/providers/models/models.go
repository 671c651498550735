package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	"github.com/m04kA/FarrierBookingService/pkg/types"
)

// ErrInvalidWeekday возвращается при неизвестном названии дня недели
var ErrInvalidWeekday = errors.New("invalid weekday")

// Request модели

// DayScheduleRequest расписание на один день недели
type DayScheduleRequest struct {
	Weekday   string  `json:"weekday"` // monday ... sunday
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // "08:00"
	CloseTime *string `json:"closeTime,omitempty"` // "17:00"
}

// UpdateConfigRequest запрос на обновление конфигурации провайдера
// Все поля опциональны - обновляются только переданные значения.
// Если передан Schedule, расписание заменяется целиком;
// дни, отсутствующие в Schedule, получают значения по умолчанию.
type UpdateConfigRequest struct {
	UserID                  int64                `json:"-"`
	SlotDurationMinutes     *int                 `json:"slotDurationMinutes,omitempty"`
	MaxConcurrentBookings   *int                 `json:"maxConcurrentBookings,omitempty"`
	AdvanceBookingDays      *int                 `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int                 `json:"minBookingNoticeMinutes,omitempty"`
	Schedule                []DayScheduleRequest `json:"schedule,omitempty"`
}

// ApplyToConfig применяет обновления к существующей конфигурации
// Обновляются только непустые (not nil) поля из request
func (r *UpdateConfigRequest) ApplyToConfig(config *domain.ProviderSlotsConfig) {
	if r.SlotDurationMinutes != nil {
		config.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.MaxConcurrentBookings != nil {
		config.MaxConcurrentBookings = *r.MaxConcurrentBookings
	}
	if r.AdvanceBookingDays != nil {
		config.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		config.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
}

// ToDomainSchedule конвертирует расписание из запроса.
// Каждый день недели может встречаться не более одного раза.
func (r *UpdateConfigRequest) ToDomainSchedule() ([]domain.DaySchedule, error) {
	days := make([]domain.DaySchedule, 0, len(r.Schedule))
	seen := make(map[time.Weekday]bool, len(r.Schedule))

	for _, d := range r.Schedule {
		weekday, err := ParseWeekday(d.Weekday)
		if err != nil {
			return nil, err
		}
		if seen[weekday] {
			return nil, fmt.Errorf("%w: %s listed twice", domain.ErrInvalidSchedule, d.Weekday)
		}
		seen[weekday] = true

		day := domain.DaySchedule{Weekday: weekday, IsOpen: d.IsOpen}
		if d.IsOpen {
			if day.OpenTime, err = parseOptionalTime(d.OpenTime); err != nil {
				return nil, err
			}
			if day.CloseTime, err = parseOptionalTime(d.CloseTime); err != nil {
				return nil, err
			}
		}
		if err := day.Validate(); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, nil
}

// Response модели

// DayScheduleResponse расписание на один день недели
type DayScheduleResponse struct {
	Weekday   string  `json:"weekday"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// ConfigResponse конфигурация слотов и недельное расписание провайдера
type ConfigResponse struct {
	ProviderID              int64                 `json:"providerId"`
	SlotDurationMinutes     int                   `json:"slotDurationMinutes"`
	MaxConcurrentBookings   int                   `json:"maxConcurrentBookings"`
	AdvanceBookingDays      int                   `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int                   `json:"minBookingNoticeMinutes"`
	IsDefault               bool                  `json:"isDefault"`
	Schedule                []DayScheduleResponse `json:"schedule"`
	UpdatedAt               *time.Time            `json:"updatedAt,omitempty"`
}

// FromDomain собирает ответ из конфигурации и расписания
func FromDomain(c *domain.ProviderSlotsConfig, week domain.WeeklySchedule) *ConfigResponse {
	resp := &ConfigResponse{
		ProviderID:              c.ProviderID,
		SlotDurationMinutes:     c.SlotDurationMinutes,
		MaxConcurrentBookings:   c.MaxConcurrentBookings,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		IsDefault:               c.IsDefault(),
		Schedule:                make([]DayScheduleResponse, 0, 7),
	}

	if !c.IsDefault() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	for _, d := range week.Days() {
		day := DayScheduleResponse{
			Weekday: strings.ToLower(d.Weekday.String()),
			IsOpen:  d.IsOpen,
		}
		if d.IsOpen && d.OpenTime != nil && d.CloseTime != nil {
			open, closeAt := d.OpenTime.String(), d.CloseTime.String()
			day.OpenTime, day.CloseTime = &open, &closeAt
		}
		resp.Schedule = append(resp.Schedule, day)
	}

	return resp
}

// ParseWeekday разбирает английское название дня недели без учёта регистра
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

func parseOptionalTime(s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSchedule, err)
	}
	return &t, nil
}
