package cli

import (
	"net/http"

	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/create_booking"
	createHorseHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/create_horse"
	createRouteOrderHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/create_route_order"
	deleteHorseHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/delete_horse"
	getAvailableSlotsHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/get_booking"
	getBookingStepsHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/get_booking_steps"
	getCustomerBookingsHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/get_customer_bookings"
	getProviderBookingsHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/get_provider_bookings"
	getProviderConfigHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/get_provider_config"
	getRouteOrderHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/get_route_order"
	listHorsesHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/list_horses"
	updateBookingStatusHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/update_booking_status"
	updateProviderConfigHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/update_provider_config"
	updateRouteOrderStatusHandler "github.com/m04kA/FarrierBookingService/internal/api/handlers/update_route_order_status"
	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	bookingRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/booking"
	horseRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/horse"
	providerRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/provider"
	routeOrderRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/routeorder"
	bookingsService "github.com/m04kA/FarrierBookingService/internal/service/bookings"
	horsesService "github.com/m04kA/FarrierBookingService/internal/service/horses"
	providersService "github.com/m04kA/FarrierBookingService/internal/service/providers"
	routeOrdersService "github.com/m04kA/FarrierBookingService/internal/service/routeorders"
	createBookingUC "github.com/m04kA/FarrierBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/FarrierBookingService/internal/usecase/get_available_slots"
	resolveBookingStepsUC "github.com/m04kA/FarrierBookingService/internal/usecase/resolve_booking_steps"
	"github.com/m04kA/FarrierBookingService/pkg/dbmetrics"
	"github.com/m04kA/FarrierBookingService/pkg/logger"
	"github.com/m04kA/FarrierBookingService/pkg/metrics"
	"github.com/m04kA/FarrierBookingService/pkg/ratelimit"
	"github.com/m04kA/FarrierBookingService/pkg/txmanager"
)

type routerDeps struct {
	db             *dbmetrics.DB
	metrics        *metrics.Metrics // nil = метрики выключены
	metricsHandler http.Handler
	metricsPath    string
	limiter        ratelimit.Limiter // nil = без ограничения
	log            *logger.Logger
}

// newRouter собирает репозитории, сервисы, use cases и маршруты
func newRouter(d routerDeps) *mux.Router {
	log := d.log

	// Репозитории
	bookings := bookingRepo.NewRepository(d.db)
	providers := providerRepo.NewRepository(d.db)
	horses := horseRepo.NewRepository(d.db)
	routeOrders := routeOrderRepo.NewRepository(d.db)
	txMgr := txmanager.NewTransactionManager(d.db)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookings, routeOrders, providers, log)
	providerSvc := providersService.NewService(providers, txMgr, log)
	horseSvc := horsesService.NewService(horses, log)
	routeOrderSvc := routeOrdersService.NewService(routeOrders, providers, txMgr, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookings, providers, horses, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookings, providers, log)
	resolveStepsUseCase := resolveBookingStepsUC.NewUseCase(horses, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookingSteps := getBookingStepsHandler.NewHandler(resolveStepsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, log)
	getProviderConfig := getProviderConfigHandler.NewHandler(providerSvc, log)
	updateProviderConfig := updateProviderConfigHandler.NewHandler(providerSvc, log)
	createRouteOrder := createRouteOrderHandler.NewHandler(routeOrderSvc, log)
	getRouteOrder := getRouteOrderHandler.NewHandler(routeOrderSvc, log)
	updateRouteOrderStatus := updateRouteOrderStatusHandler.NewHandler(routeOrderSvc, log)
	createHorse := createHorseHandler.NewHandler(horseSvc, log)
	listHorses := listHorsesHandler.NewHandler(horseSvc, log)
	deleteHorse := deleteHorseHandler.NewHandler(horseSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if d.metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.metrics))
		r.Handle(d.metricsPath, d.metricsHandler).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", d.metricsPath)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	if d.limiter != nil {
		api.Use(middleware.RateLimit(d.limiter, d.metrics, log))
		log.Info("Rate limiting enabled")
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/providers/{providerId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/config", getProviderConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Мастер бронирования ---
	protected.HandleFunc("/booking-steps", getBookingSteps.Handle).Methods(http.MethodGet)

	// --- Бронирования на фиксированное время ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Объединённый список бронирований клиента
	protected.HandleFunc("/customers/me/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Заказы по маршруту ---
	protected.HandleFunc("/route-orders", createRouteOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/route-orders/{orderId}", getRouteOrder.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/route-orders/{orderId}/status", updateRouteOrderStatus.Handle).Methods(http.MethodPatch)

	// --- Лошади клиента ---
	protected.HandleFunc("/horses", createHorse.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/horses", listHorses.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/horses/{horseId}", deleteHorse.Handle).Methods(http.MethodDelete)

	// --- Управление провайдером (для владельца) ---
	protected.HandleFunc("/providers/{providerId}/bookings", getProviderBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/config", updateProviderConfig.Handle).Methods(http.MethodPut)

	return r
}
