package models

import (
	"time"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// Request модели

// CreateRouteOrderRequest запрос на создание заказа по маршруту
type CreateRouteOrderRequest struct {
	CustomerID int64   `json:"-"`
	ProviderID int64   `json:"providerId"`
	DateFrom   string  `json:"dateFrom"` // "2025-10-15"
	DateTo     string  `json:"dateTo"`
	HorseCount int     `json:"horseCount"`
	Location   string  `json:"location"`
	Notes      *string `json:"notes,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса заказа
type UpdateStatusRequest struct {
	UserID int64   `json:"-"`
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"` // только для отмены
}

// Response модели

// RouteOrderResponse ответ с данными заказа
type RouteOrderResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	ProviderID int64   `json:"providerId"`
	DateFrom   string  `json:"dateFrom"`
	DateTo     string  `json:"dateTo"`
	Status     string  `json:"status"`
	HorseCount int     `json:"horseCount"`
	Location   string  `json:"location"`
	Notes      *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainRouteOrder конвертирует domain модель в DTO
func FromDomainRouteOrder(o *domain.RouteOrder) *RouteOrderResponse {
	if o == nil {
		return nil
	}

	resp := &RouteOrderResponse{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		ProviderID:         o.ProviderID,
		DateFrom:           o.DateFrom.Format(domain.DateFormat),
		DateTo:             o.DateTo.Format(domain.DateFormat),
		Status:             string(o.Status),
		HorseCount:         o.HorseCount,
		Location:           o.Location,
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	if o.CancelledAt != nil {
		cancelledStr := o.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}
