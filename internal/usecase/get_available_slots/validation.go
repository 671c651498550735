package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

func validateRequest(req *Request) error {
	switch {
	case req.ProviderID <= 0:
		return fmt.Errorf("%w: provider id %d", ErrInvalidInput, req.ProviderID)
	case req.ServiceID <= 0:
		return fmt.Errorf("%w: service id %d", ErrInvalidInput, req.ServiceID)
	case req.Date.IsZero():
		return fmt.Errorf("%w: empty date", ErrInvalidInput)
	}
	return nil
}

// checkBookingWindow отсекает даты дальше окна записи провайдера
func checkBookingWindow(config *domain.ProviderSlotsConfig, date, now time.Time) error {
	if config.WithinAdvanceWindow(date, now) {
		return nil
	}
	last, _ := config.LastBookableDate(now)
	return fmt.Errorf("%w: last bookable date is %s", ErrDateTooFarInFuture, last.Format(domain.DateFormat))
}
