package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusrun/internal/core/application/usecases/commands"
	"campusrun/internal/core/application/usecases/queries"
	"campusrun/internal/observability"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	restoreOrderHandler  commands.RestoreOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	reviewOrderHandler   commands.ReviewOrderCommandHandler

	addAddressHandler    commands.AddAddressCommandHandler
	updateAddressHandler commands.UpdateAddressCommandHandler
	deleteAddressHandler commands.DeleteAddressCommandHandler

	likeDelivererHandler commands.LikeDelivererCommandHandler

	// Query handlers
	listOrdersHandler          queries.ListOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	getOrderStatisticsHandler  queries.GetOrderStatisticsQueryHandler
	listAddressesHandler       queries.ListAddressesQueryHandler
	getDefaultAddressesHandler queries.GetDefaultAddressesQueryHandler
	listDeliverersHandler      queries.ListDeliverersQueryHandler
	getDelivererHandler        queries.GetDelivererQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	CreateOrder   commands.CreateOrderCommandHandler
	CancelOrder   commands.CancelOrderCommandHandler
	RestoreOrder  commands.RestoreOrderCommandHandler
	CompleteOrder commands.CompleteOrderCommandHandler
	DeleteOrder   commands.DeleteOrderCommandHandler
	ReviewOrder   commands.ReviewOrderCommandHandler

	AddAddress    commands.AddAddressCommandHandler
	UpdateAddress commands.UpdateAddressCommandHandler
	DeleteAddress commands.DeleteAddressCommandHandler

	LikeDeliverer commands.LikeDelivererCommandHandler

	ListOrders          queries.ListOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetOrderStatistics  queries.GetOrderStatisticsQueryHandler
	ListAddresses       queries.ListAddressesQueryHandler
	GetDefaultAddresses queries.GetDefaultAddressesQueryHandler
	ListDeliverers      queries.ListDeliverersQueryHandler
	GetDeliverer        queries.GetDelivererQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:   handlers.CreateOrder,
		cancelOrderHandler:   handlers.CancelOrder,
		restoreOrderHandler:  handlers.RestoreOrder,
		completeOrderHandler: handlers.CompleteOrder,
		deleteOrderHandler:   handlers.DeleteOrder,
		reviewOrderHandler:   handlers.ReviewOrder,

		addAddressHandler:    handlers.AddAddress,
		updateAddressHandler: handlers.UpdateAddress,
		deleteAddressHandler: handlers.DeleteAddress,

		likeDelivererHandler: handlers.LikeDeliverer,

		listOrdersHandler:          handlers.ListOrders,
		getOrderHandler:            handlers.GetOrder,
		getOrderStatisticsHandler:  handlers.GetOrderStatistics,
		listAddressesHandler:       handlers.ListAddresses,
		getDefaultAddressesHandler: handlers.GetDefaultAddresses,
		listDeliverersHandler:      handlers.ListDeliverers,
		getDelivererHandler:        handlers.GetDeliverer,
	}
}

// RegisterRoutes wires all routes onto the echo instance. Everything under
// /api requires a valid Bearer token; health and metrics stay open.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(metricsMiddleware())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api", AuthMiddleware(jwtSecret))

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/statistics", s.GetOrderStatistics)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
	api.PUT("/orders/:id/restore", s.RestoreOrder)
	api.PUT("/orders/:id/complete", s.CompleteOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/review", s.ReviewOrder)

	api.POST("/addresses", s.AddAddress)
	api.GET("/addresses", s.ListAddresses)
	api.GET("/addresses/default", s.GetDefaultAddresses)
	api.PUT("/addresses/:id", s.UpdateAddress)
	api.DELETE("/addresses/:id", s.DeleteAddress)

	api.GET("/deliverers", s.ListDeliverers)
	api.GET("/deliverers/:id", s.GetDeliverer)
	api.POST("/deliverers/:id/like", s.LikeDeliverer)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			path := ctx.Path()
			method := ctx.Request().Method
			status := strconv.Itoa(ctx.Response().Status)

			observability.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			observability.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// idParam parses the numeric :id path parameter.
func idParam(ctx echo.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}
