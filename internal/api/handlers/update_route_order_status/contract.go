package update_route_order_status

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/routeorders/models"
)

type RouteOrderService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.RouteOrderResponse, error)
}
