package order

import (
	"errors"
	"fmt"
	"time"

	"campusrun/internal/core/domain/model/kernel"
	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RehydrateOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RehydrateOrder")

// Order represents a campus delivery request. It is the aggregate root that
// manages the order lifecycle from creation through cancellation, restore,
// completion, and review.
//
// Order maintains these invariants:
//   - belongs to exactly one user, immutable after creation
//   - total amount is positive; coupon discount never exceeds it
//   - actualAmount == max(0, totalAmount - couponDiscount) at all times
//   - exactly one lifecycle status holds at any observation point
//   - each lifecycle timestamp is set exactly once by its transition;
//     only restore clears cancelledAt
//   - a review is set at most once, and only while Completed
//
// The struct uses private fields so every mutation goes through a
// validated method.
type Order struct {
	// id is the numeric row identity, assigned by the store on first insert.
	id uint64

	// orderNo is the opaque external token clients quote.
	orderNo kernel.OrderNumber

	// userID is the owning user. Immutable.
	userID uint64

	// delivererID is the linked deliverer, nil until assignment.
	delivererID *uint64

	// Route endpoints as free text, with optional detail lines and
	// optional precise coordinates.
	startAddress      string
	endAddress        string
	originDetail      string
	destinationDetail string
	originLocation    *kernel.GeoPoint
	destLocation      *kernel.GeoPoint

	// Optional route estimate from the map service.
	estimatedDistanceKm  *float64
	estimatedDurationMin *int

	// What is being fetched.
	itemDescription string
	orderImage      string
	pickupCode      string
	lockerNumber    string

	// Economics. actualAmount is derived, never independently writable.
	totalAmount    kernel.Money
	couponDiscount kernel.Money
	actualAmount   kernel.Money

	status Status
	review *Review

	createdAt   time.Time
	acceptedAt  *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status for the given user.
// The origin, destination, and a positive total amount are required; the
// coupon discount must not exceed the total. The actual amount is derived
// as max(0, total - discount). An order number is generated and createdAt
// is set to the current UTC time.
func NewOrder(
	userID uint64,
	startAddress string,
	endAddress string,
	itemDescription string,
	totalAmount kernel.Money,
	couponDiscount kernel.Money,
) (*Order, error) {
	o := &Order{
		orderNo:         kernel.NewOrderNumber(),
		itemDescription: itemDescription,
		status:          Pending,
		createdAt:       time.Now().UTC(),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setRoute(startAddress, endAddress),
		o.setAmounts(totalAmount, couponDiscount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RehydrateOrderParams carries a persisted order's full state back into
// the domain. Used only by the persistence adapter.
type RehydrateOrderParams struct {
	ID                   uint64
	OrderNo              kernel.OrderNumber
	UserID               uint64
	DelivererID          *uint64
	StartAddress         string
	EndAddress           string
	OriginDetail         string
	DestinationDetail    string
	OriginLocation       *kernel.GeoPoint
	DestLocation         *kernel.GeoPoint
	EstimatedDistanceKm  *float64
	EstimatedDurationMin *int
	ItemDescription      string
	OrderImage           string
	PickupCode           string
	LockerNumber         string
	TotalAmount          kernel.Money
	CouponDiscount       kernel.Money
	ActualAmount         kernel.Money
	Status               Status
	Review               *Review
	CreatedAt            time.Time
	AcceptedAt           *time.Time
	CompletedAt          *time.Time
	CancelledAt          *time.Time
}

// RehydrateOrder reconstructs an Order from persistence, re-checking the
// aggregate's invariants so a corrupt row never becomes a live aggregate.
func RehydrateOrder(p RehydrateOrderParams) (*Order, error) {
	if p.ID == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := p.OrderNo.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.ValidateCanHaveDeliverer(p.DelivererID != nil); err != nil {
		return nil, err
	}
	if p.Review != nil && p.Status != Completed {
		return nil, errs.NewValueIsInvalidErrorWithCause("review",
			fmt.Errorf("%s order cannot carry a review", p.Status))
	}
	if !p.ActualAmount.IsEqual(p.TotalAmount.SubFloorZero(p.CouponDiscount)) {
		return nil, errs.NewValueIsInvalidErrorWithCause("actualAmount",
			fmt.Errorf("%s != max(0, %s - %s)", p.ActualAmount, p.TotalAmount, p.CouponDiscount))
	}

	o := &Order{
		id:                   p.ID,
		orderNo:              p.OrderNo,
		delivererID:          p.DelivererID,
		originDetail:         p.OriginDetail,
		destinationDetail:    p.DestinationDetail,
		originLocation:       p.OriginLocation,
		destLocation:         p.DestLocation,
		estimatedDistanceKm:  p.EstimatedDistanceKm,
		estimatedDurationMin: p.EstimatedDurationMin,
		itemDescription:      p.ItemDescription,
		orderImage:           p.OrderImage,
		pickupCode:           p.PickupCode,
		lockerNumber:         p.LockerNumber,
		status:               p.Status,
		review:               p.Review,
		createdAt:            p.CreatedAt,
		acceptedAt:           p.AcceptedAt,
		completedAt:          p.CompletedAt,
		cancelledAt:          p.CancelledAt,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setUserID(p.UserID),
		o.setRoute(p.StartAddress, p.EndAddress),
		o.setAmounts(p.TotalAmount, p.CouponDiscount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AssignID sets the store-assigned numeric identity after the first insert.
// It can only be called once, on an order that has no id yet.
func (o *Order) AssignID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already has id %d", o.id))
	}
	o.id = id
	return nil
}

// IsEqual compares two orders by their order number, which is unique and
// assigned before persistence.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNo.IsEqual(other.orderNo)
}

// EnsureOwnedBy checks the hard ownership precondition that precedes every
// lifecycle guard: the requester must be the order's owner.
func (o *Order) EnsureOwnedBy(userID uint64) error {
	if o.userID != userID {
		return errs.NewNotOwnerError("order", o.id)
	}
	return nil
}

// AttachRoute records precise coordinates and the map service's estimate
// for the order's route. Both points must be valid.
func (o *Order) AttachRoute(origin, dest kernel.GeoPoint, distanceKm float64, durationMin int) error {
	if err := errors.Join(origin.Validate(), dest.Validate()); err != nil {
		return err
	}
	if distanceKm < 0 {
		return errs.NewValueIsInvalidError("estimatedDistanceKm")
	}
	if durationMin < 0 {
		return errs.NewValueIsInvalidError("estimatedDurationMin")
	}
	o.originLocation = &origin
	o.destLocation = &dest
	o.estimatedDistanceKm = &distanceKm
	o.estimatedDurationMin = &durationMin
	return nil
}

// SetAddressDetails records the free-text detail lines for origin and
// destination.
func (o *Order) SetAddressDetails(originDetail, destinationDetail string) {
	o.originDetail = originDetail
	o.destinationDetail = destinationDetail
}

// SetOrderImage records the uploaded order image URL.
func (o *Order) SetOrderImage(url string) {
	o.orderImage = url
}

// SetPickupInfo records the pickup code and locker number, when the request
// is a parcel collection.
func (o *Order) SetPickupInfo(pickupCode, lockerNumber string) {
	o.pickupCode = pickupCode
	o.lockerNumber = lockerNumber
}

// Cancel transitions the order from Pending to Cancelled and stamps
// cancelledAt. Any other current status yields a status-conflict error and
// leaves the order unchanged.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.cancelledAt = &now
	return nil
}

// Restore transitions the order from Cancelled back to Pending and clears
// cancelledAt. This is the only transition that ever unsets a lifecycle
// timestamp.
func (o *Order) Restore() error {
	newStatus, err := o.status.Restore()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelledAt = nil
	return nil
}

// Complete transitions the order from Pending to Completed and stamps
// completedAt. The simplified flow completes directly from Pending.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.completedAt = &now
	return nil
}

// Accept links a deliverer and moves the order to Accepted, stamping
// acceptedAt. Used by the external assignment process, not by order owners.
func (o *Order) Accept(delivererID uint64) error {
	if delivererID == 0 {
		return errs.NewValueIsRequiredError("delivererId")
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.delivererID = &delivererID
	o.acceptedAt = &now
	return nil
}

// StartDelivering moves an Accepted order to Delivering.
func (o *Order) StartDelivering() error {
	newStatus, err := o.status.StartDelivering()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetReview records the order's single review. The rating must be within
// [1,5], the order must be Completed, and no review may already exist.
// A second review attempt is a status conflict and leaves the first
// review untouched.
func (o *Order) SetReview(rating int, comment string) error {
	review, err := NewReview(rating, comment, time.Now().UTC())
	if err != nil {
		return err
	}
	if err := o.status.ValidateReview(); err != nil {
		return err
	}
	if o.review != nil {
		return errs.NewStatusConflictErrorWithCause(eventReview, o.status.String(),
			errors.New("review already present"))
	}

	o.review = &review
	return nil
}

// EnsureDeletable checks that the order may be hard-deleted, which is only
// allowed from Cancelled.
func (o *Order) EnsureDeletable() error {
	return o.status.ValidateDelete()
}

// ID returns the numeric identity, zero until first persisted.
func (o *Order) ID() uint64 { return o.id }

// OrderNo returns the external order token.
func (o *Order) OrderNo() kernel.OrderNumber { return o.orderNo }

// UserID returns the owning user's id.
func (o *Order) UserID() uint64 { return o.userID }

// DelivererID returns the linked deliverer's id, nil if none.
func (o *Order) DelivererID() *uint64 { return o.delivererID }

// StartAddress returns the origin address text.
func (o *Order) StartAddress() string { return o.startAddress }

// EndAddress returns the destination address text.
func (o *Order) EndAddress() string { return o.endAddress }

// OriginDetail returns the origin detail line.
func (o *Order) OriginDetail() string { return o.originDetail }

// DestinationDetail returns the destination detail line.
func (o *Order) DestinationDetail() string { return o.destinationDetail }

// OriginLocation returns the optional origin coordinates.
func (o *Order) OriginLocation() *kernel.GeoPoint { return o.originLocation }

// DestLocation returns the optional destination coordinates.
func (o *Order) DestLocation() *kernel.GeoPoint { return o.destLocation }

// EstimatedDistanceKm returns the optional route distance estimate.
func (o *Order) EstimatedDistanceKm() *float64 { return o.estimatedDistanceKm }

// EstimatedDurationMin returns the optional route duration estimate.
func (o *Order) EstimatedDurationMin() *int { return o.estimatedDurationMin }

// ItemDescription returns the item description.
func (o *Order) ItemDescription() string { return o.itemDescription }

// OrderImage returns the order image URL, empty if none.
func (o *Order) OrderImage() string { return o.orderImage }

// PickupCode returns the parcel pickup code, empty if none.
func (o *Order) PickupCode() string { return o.pickupCode }

// LockerNumber returns the locker number, empty if none.
func (o *Order) LockerNumber() string { return o.lockerNumber }

// TotalAmount returns the requested price.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// CouponDiscount returns the applied discount.
func (o *Order) CouponDiscount() kernel.Money { return o.couponDiscount }

// ActualAmount returns the derived amount due: max(0, total - discount).
func (o *Order) ActualAmount() kernel.Money { return o.actualAmount }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Review returns the review, nil until one is set.
func (o *Order) Review() *Review { return o.review }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// AcceptedAt returns the acceptance time, nil if never accepted.
func (o *Order) AcceptedAt() *time.Time { return o.acceptedAt }

// CompletedAt returns the completion time, nil if not completed.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// CancelledAt returns the cancellation time, nil if not cancelled or
// restored since.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

func (o *Order) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setRoute(startAddress, endAddress string) error {
	if startAddress == "" {
		return errs.NewValueIsRequiredError("startAddress")
	}
	if endAddress == "" {
		return errs.NewValueIsRequiredError("endAddress")
	}
	o.startAddress = startAddress
	o.endAddress = endAddress
	return nil
}

// setAmounts validates the money fields and derives the actual amount.
// actualAmount is recomputed here and nowhere else.
func (o *Order) setAmounts(totalAmount, couponDiscount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}
	if !totalAmount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s is not greater than 0", totalAmount))
	}
	if err := couponDiscount.Validate(); err != nil {
		return err
	}
	if couponDiscount.GreaterThan(totalAmount) {
		return errs.NewValueIsInvalidErrorWithCause("couponDiscount",
			fmt.Errorf("%s exceeds total amount %s", couponDiscount, totalAmount))
	}

	o.totalAmount = totalAmount
	o.couponDiscount = couponDiscount
	o.actualAmount = totalAmount.SubFloorZero(couponDiscount)
	return nil
}
