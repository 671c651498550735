package create_route_order

import (
	"context"

	"github.com/m04kA/FarrierBookingService/internal/service/routeorders/models"
)

type RouteOrderService interface {
	Create(ctx context.Context, req *models.CreateRouteOrderRequest) (*models.RouteOrderResponse, error)
}
