package get_route_order

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/routeorders/models"
)

type RouteOrderService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.RouteOrderResponse, error)
}
