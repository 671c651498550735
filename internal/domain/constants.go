package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes     = 60
	DefaultMaxConcurrentBookings   = 1
	DefaultAdvanceBookingDays      = 0   // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 720 // 12 hours, farriers plan their route the day before
	DefaultOpenTime                = "08:00"
	DefaultCloseTime               = "17:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 15
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinConcurrentBookings       = 1
	MaxConcurrentBookings       = 20
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinBookingNoticeMinutes     = 0
	MaxBookingNoticeMinutes     = 10080 // 1 week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxHorseNameLength          = 100
	MaxLocationLength           = 255
	MaxRouteOrderDays           = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
