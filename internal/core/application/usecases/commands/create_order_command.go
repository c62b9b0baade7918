package commands

import (
	"errors"

	"campusrun/internal/core/domain/model/kernel"
	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderExtras carries the optional order attributes a client may send
// at creation time. All fields may be left at their zero values.
type CreateOrderExtras struct {
	OriginDetail         string
	DestinationDetail    string
	PickupCode           string
	LockerNumber         string
	OrderImage           string
	OriginLocation       *kernel.GeoPoint
	DestinationLocation  *kernel.GeoPoint
	EstimatedDistanceKm  *float64
	EstimatedDurationMin *int
}

// CreateOrderCommand represents a request to place a new delivery order.
// The amounts arrive already parsed into Money so the derivation rule for
// the actual amount runs entirely inside the aggregate.
//
// Example:
//
//	total, _ := kernel.NewMoneyFromFloat(25.00)
//	discount, _ := kernel.NewMoneyFromFloat(5.00)
//	cmd, err := NewCreateOrderCommand(userID, "Canteen 2", "Dorm 3",
//	    "bubble tea", total, discount, CreateOrderExtras{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID          uint64
	startAddress    string
	endAddress      string
	itemDescription string
	totalAmount     kernel.Money
	couponDiscount  kernel.Money
	extras          CreateOrderExtras

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the owner, both route endpoints, and the amounts.
func NewCreateOrderCommand(
	userID uint64,
	startAddress, endAddress, itemDescription string,
	totalAmount, couponDiscount kernel.Money,
	extras CreateOrderExtras,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		itemDescription: itemDescription,
		extras:          extras,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setRoute(startAddress, endAddress),
		orderCommand.setAmounts(totalAmount, couponDiscount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identity of the ordering user.
func (c CreateOrderCommand) UserID() uint64 {
	return c.userID
}

// StartAddress returns the pickup address text.
func (c CreateOrderCommand) StartAddress() string {
	return c.startAddress
}

// EndAddress returns the drop-off address text.
func (c CreateOrderCommand) EndAddress() string {
	return c.endAddress
}

// ItemDescription returns the free-form item description.
func (c CreateOrderCommand) ItemDescription() string {
	return c.itemDescription
}

// TotalAmount returns the gross order amount.
func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// CouponDiscount returns the applied coupon discount.
func (c CreateOrderCommand) CouponDiscount() kernel.Money {
	return c.couponDiscount
}

// Extras returns the optional order attributes.
func (c CreateOrderCommand) Extras() CreateOrderExtras {
	return c.extras
}

func (c *CreateOrderCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRoute(startAddress, endAddress string) error {
	if startAddress == "" {
		return errs.NewValueIsRequiredError("startAddress")
	}
	if endAddress == "" {
		return errs.NewValueIsRequiredError("endAddress")
	}

	c.startAddress = startAddress
	c.endAddress = endAddress
	return nil
}

func (c *CreateOrderCommand) setAmounts(totalAmount, couponDiscount kernel.Money) error {
	if err := errors.Join(totalAmount.Validate(), couponDiscount.Validate()); err != nil {
		return err
	}

	c.totalAmount = totalAmount
	c.couponDiscount = couponDiscount
	return nil
}
