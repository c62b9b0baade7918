package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusrun/internal/core/application/usecases/commands"
	"campusrun/internal/core/application/usecases/queries"
)

// ListDeliverers handles GET /api/deliverers.
func (s *Server) ListDeliverers(ctx echo.Context) error {
	query := queries.NewListDeliverersQuery()

	response, err := s.listDeliverersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliverer handles GET /api/deliverers/:id.
func (s *Server) GetDeliverer(ctx echo.Context) error {
	delivererID, err := idParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid deliverer id"})
	}

	query, err := queries.NewGetDelivererQuery(delivererID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getDelivererHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// LikeDeliverer handles POST /api/deliverers/:id/like.
func (s *Server) LikeDeliverer(ctx echo.Context) error {
	delivererID, err := idParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid deliverer id"})
	}

	var req LikeDelivererRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewLikeDelivererCommand(delivererID, req.Unlike)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.likeDelivererHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
