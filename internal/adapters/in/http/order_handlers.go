package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campusrun/internal/core/application/usecases/commands"
	"campusrun/internal/core/application/usecases/queries"
	"campusrun/internal/core/domain/model/kernel"
	"campusrun/internal/observability"
)

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	}

	total, err := kernel.NewMoneyFromFloat(req.TotalAmount)
	if err != nil {
		return respondError(ctx, err)
	}

	discount, err := kernel.NewMoneyFromFloat(req.CouponDiscount)
	if err != nil {
		return respondError(ctx, err)
	}

	extras := commands.CreateOrderExtras{
		OriginDetail:         req.OriginDetail,
		DestinationDetail:    req.DestinationDetail,
		PickupCode:           req.PickupCode,
		LockerNumber:         req.LockerNumber,
		OrderImage:           req.OrderImage,
		EstimatedDistanceKm:  req.EstimatedDistanceKm,
		EstimatedDurationMin: req.EstimatedDurationMin,
	}

	if req.OriginLat != nil && req.OriginLng != nil {
		origin, pointErr := kernel.NewGeoPoint(*req.OriginLat, *req.OriginLng)
		if pointErr != nil {
			return respondError(ctx, pointErr)
		}
		extras.OriginLocation = &origin
	}

	if req.DestinationLat != nil && req.DestinationLng != nil {
		destination, pointErr := kernel.NewGeoPoint(*req.DestinationLat, *req.DestinationLng)
		if pointErr != nil {
			return respondError(ctx, pointErr)
		}
		extras.DestinationLocation = &destination
	}

	cmd, err := commands.NewCreateOrderCommand(
		userID, req.StartAddress, req.EndAddress, req.ItemDescription, total, discount, extras)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	observability.OrdersCreatedTotal.Inc()

	return ctx.JSON(http.StatusCreated, map[string]uint64{"id": orderID})
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))

	query, err := queries.NewListOrdersQuery(userID, ctx.QueryParam("status"), page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	orderID, err := idParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStatistics handles GET /api/orders/statistics.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	query, err := queries.NewGetOrderStatisticsQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles PUT /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID, userID uint64) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, userID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RestoreOrder handles PUT /api/orders/:id/restore.
func (s *Server) RestoreOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID, userID uint64) error {
		cmd, err := commands.NewRestoreOrderCommand(orderID, userID)
		if err != nil {
			return err
		}
		return s.restoreOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles PUT /api/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID, userID uint64) error {
		cmd, err := commands.NewCompleteOrderCommand(orderID, userID)
		if err != nil {
			return err
		}
		return s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	orderID, err := idParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewOrder handles POST /api/orders/:id/review.
func (s *Server) ReviewOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	orderID, err := idParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	var req ReviewOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	if err = ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	}

	cmd, err := commands.NewReviewOrderCommand(orderID, userID, req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reviewOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	observability.ReviewsSubmittedTotal.WithLabelValues(strconv.Itoa(req.Rating)).Inc()

	return ctx.NoContent(http.StatusOK)
}

// transitionOrder factors out the shared shape of the lifecycle endpoints.
func (s *Server) transitionOrder(ctx echo.Context, run func(orderID, userID uint64) error) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	orderID, err := idParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid order id"})
	}

	if err := run(orderID, userID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
