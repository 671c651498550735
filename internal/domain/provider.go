package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Provider is a farrier offering services to customers
type Provider struct {
	ID          int64
	OwnerUserID int64
	Name        string
	ServiceArea string
	CreatedAt   time.Time
}

// IsOwnedBy returns true if userID manages this provider
func (p *Provider) IsOwnedBy(userID int64) bool {
	return p.OwnerUserID == userID
}

// ProviderService is a bookable service (trim, shoeing, ...) with its price
type ProviderService struct {
	ID              int64
	ProviderID      int64
	Name            string
	DurationMinutes int // 0 = use the provider's slot duration
	Price           decimal.Decimal
	IsActive        bool
}

// ProviderSlotsConfig represents the booking configuration of a provider
type ProviderSlotsConfig struct {
	ID                      int64 // 0 = not persisted, defaults applied
	ProviderID              int64
	SlotDurationMinutes     int
	MaxConcurrentBookings   int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultSlotsConfig returns the configuration used when a provider has none
func DefaultSlotsConfig(providerID int64) *ProviderSlotsConfig {
	return &ProviderSlotsConfig{
		ProviderID:              providerID,
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		MaxConcurrentBookings:   DefaultMaxConcurrentBookings,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}

// IsDefault returns true if the configuration was not loaded from storage
func (c *ProviderSlotsConfig) IsDefault() bool {
	return c.ID == 0
}

// LastBookableDate returns the last calendar day that can be booked relative to now.
// ok is false when the provider sets no advance limit.
func (c *ProviderSlotsConfig) LastBookableDate(now time.Time) (last time.Time, ok bool) {
	if c.AdvanceBookingDays <= 0 {
		return time.Time{}, false
	}
	return DateOnly(now).AddDate(0, 0, c.AdvanceBookingDays), true
}

// WithinAdvanceWindow reports whether date is not beyond LastBookableDate.
func (c *ProviderSlotsConfig) WithinAdvanceWindow(date, now time.Time) bool {
	last, ok := c.LastBookableDate(now)
	return !ok || !DateOnly(date).After(last)
}
