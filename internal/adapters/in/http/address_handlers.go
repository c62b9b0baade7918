package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusrun/internal/core/application/usecases/commands"
	"campusrun/internal/core/application/usecases/queries"
	"campusrun/internal/core/domain/model/address"
)

// AddAddress handles POST /api/addresses.
func (s *Server) AddAddress(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	var req AddAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	}

	addressType, err := address.TypeFromString(req.AddressType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddAddressCommand(
		userID, addressType, req.Name, req.AddressDetail,
		req.ContactPerson, req.ContactPhone, req.Notes, req.IsDefault)
	if err != nil {
		return respondError(ctx, err)
	}

	addressID, err := s.addAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]uint64{"id": addressID})
}

// ListAddresses handles GET /api/addresses.
func (s *Server) ListAddresses(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	query, err := queries.NewListAddressesQuery(userID, ctx.QueryParam("type"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.listAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDefaultAddresses handles GET /api/addresses/default.
func (s *Server) GetDefaultAddresses(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	query, err := queries.NewGetDefaultAddressesQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getDefaultAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateAddress handles PUT /api/addresses/:id.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	addressID, err := idParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid address id"})
	}

	var req UpdateAddressRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	if err = ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	}

	cmd, err := commands.NewUpdateAddressCommand(
		addressID, userID, req.Name, req.AddressDetail,
		req.ContactPerson, req.ContactPhone, req.Notes, req.IsDefault)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteAddress handles DELETE /api/addresses/:id.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
	}

	addressID, err := idParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid address id"})
	}

	cmd, err := commands.NewDeleteAddressCommand(addressID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
