package deliverer

import (
	"errors"
	"fmt"
	"time"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

const (
	// RatingMin and RatingMax bound the aggregate rating. New deliverers
	// start at RatingMax until their first reviews arrive.
	RatingMin = 0.0
	RatingMax = 5.0

	// OnTimeRateMax is the starting on-time percentage.
	OnTimeRateMax = 100.0
)

// ErrDelivererIsNotConstructed is returned when a Deliverer instance was not
// created through NewDeliverer or RehydrateDeliverer.
var ErrDelivererIsNotConstructed = errors.New(
	"Deliverer must be created via NewDeliverer or RehydrateDeliverer")

// Status represents a deliverer's availability.
type Status int

const (
	Unknown Status = iota
	Online
	Offline
)

// StatusFromString parses a persisted availability string.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "online":
		return Online, nil
	case "offline":
		return Offline, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid deliverer status", s))
	}
}

func (s Status) String() string {
	switch s {
	case Online:
		return "online"
	case Offline:
		return "offline"
	default:
		return "unknown"
	}
}

// Validate checks that the Status is Online or Offline.
func (s Status) Validate() error {
	if s != Online && s != Offline {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// Deliverer is an agent who can be linked to orders. It carries an
// aggregate rating recomputed from the review scores of the deliverer's
// completed orders; the recomputation itself happens atomically in the
// persistence layer, so the rating field here is a read model of that
// aggregate, not an independently writable value.
type Deliverer struct {
	id          uint64
	name        string
	avatar      string
	phone       string
	rating      float64
	onTimeRate  float64
	dailyOrders int
	totalLikes  int
	status      Status
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewDeliverer creates a new Online deliverer with the starting rating and
// on-time rate. The name is required.
func NewDeliverer(name, avatar, phone string) (*Deliverer, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Deliverer{
		name:       name,
		avatar:     avatar,
		phone:      phone,
		rating:     RatingMax,
		onTimeRate: OnTimeRateMax,
		status:     Online,
		createdAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RehydrateDeliverer reconstructs a Deliverer from persistence.
func RehydrateDeliverer(
	id uint64,
	name, avatar, phone string,
	rating, onTimeRate float64,
	dailyOrders, totalLikes int,
	status Status,
	createdAt time.Time,
) (*Deliverer, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if rating < RatingMin || rating > RatingMax {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if totalLikes < 0 {
		return nil, errs.NewValueIsInvalidError("totalLikes")
	}

	return &Deliverer{
		id:          id,
		name:        name,
		avatar:      avatar,
		phone:       phone,
		rating:      rating,
		onTimeRate:  onTimeRate,
		dailyOrders: dailyOrders,
		totalLikes:  totalLikes,
		status:      status,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Deliverer was properly constructed.
func (d *Deliverer) Validate() error {
	if d == nil {
		return ErrDelivererIsNotConstructed
	}
	return d.guard.Validate(ErrDelivererIsNotConstructed)
}

// AssignID sets the store-assigned identity after the first insert.
func (d *Deliverer) AssignID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if d.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("deliverer already has id %d", d.id))
	}
	d.id = id
	return nil
}

// Like increments the like counter.
func (d *Deliverer) Like() {
	d.totalLikes++
}

// Unlike decrements the like counter, flooring at zero.
func (d *Deliverer) Unlike() {
	if d.totalLikes > 0 {
		d.totalLikes--
	}
}

// GoOnline marks the deliverer as available.
func (d *Deliverer) GoOnline() {
	d.status = Online
}

// GoOffline marks the deliverer as unavailable.
func (d *Deliverer) GoOffline() {
	d.status = Offline
}

// ID returns the numeric identity, zero until first persisted.
func (d *Deliverer) ID() uint64 { return d.id }

// Name returns the display name.
func (d *Deliverer) Name() string { return d.name }

// Avatar returns the avatar URL.
func (d *Deliverer) Avatar() string { return d.avatar }

// Phone returns the contact phone.
func (d *Deliverer) Phone() string { return d.phone }

// Rating returns the aggregate review rating.
func (d *Deliverer) Rating() float64 { return d.rating }

// OnTimeRate returns the on-time delivery percentage.
func (d *Deliverer) OnTimeRate() float64 { return d.onTimeRate }

// DailyOrders returns the average daily order count.
func (d *Deliverer) DailyOrders() int { return d.dailyOrders }

// TotalLikes returns the like counter.
func (d *Deliverer) TotalLikes() int { return d.totalLikes }

// Status returns the availability status.
func (d *Deliverer) Status() Status { return d.status }

// CreatedAt returns the registration time.
func (d *Deliverer) CreatedAt() time.Time { return d.createdAt }
