package order

import (
	"fmt"

	"campusrun/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the delivery workflow.
//
// State transitions driven by the owning user:
//
//	(create) ──> pending ──cancel──> cancelled ──delete──> (removed)
//	                │  ^                 │
//	                │  └────restore──────┘
//	                └──complete──> completed ──review (once, no status change)
//
// Transitions driven by the external assignment process:
//
//	pending ──accept──> accepted ──start delivering──> delivering
//
// Status is a value object that validates transitions and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is waiting to be accepted.
	Pending

	// Accepted indicates a deliverer has taken the order.
	Accepted

	// Delivering indicates the order is on its way.
	Delivering

	// Completed indicates the order has been delivered. Terminal for status
	// transitions, but still accepts exactly one review.
	Completed

	// Cancelled is terminal except for the explicit restore transition
	// back to Pending, and permits hard deletion.
	Cancelled
)

// Event names used in status-conflict errors.
const (
	eventCancel          = "cancel"
	eventRestore         = "restore"
	eventComplete        = "complete"
	eventAccept          = "accept"
	eventStartDelivering = "start delivering"
	eventReview          = "review"
	eventDelete          = "delete"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Accepted:   "accepted",
		Delivering: "delivering",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Accepted:   "accepted",
		Delivering: "delivering",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a persisted status string. Returns an error for
// anything outside the status vocabulary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the five defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the lowercase status name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Cancel transitions the status to Cancelled.
// Only Pending orders can be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStatusConflictError(eventCancel, s.String())
	}
	return Cancelled, nil
}

// Restore transitions the status back to Pending.
// Only Cancelled orders can be restored.
func (s Status) Restore() (Status, error) {
	if s != Cancelled {
		return Unknown, errs.NewStatusConflictError(eventRestore, s.String())
	}
	return Pending, nil
}

// Complete transitions the status to Completed. The simplified flow
// completes directly from Pending; no explicit accept or deliver step is
// enforced.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStatusConflictError(eventComplete, s.String())
	}
	return Completed, nil
}

// Accept transitions the status to Accepted, used by the external
// assignment process when a deliverer takes the order.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStatusConflictError(eventAccept, s.String())
	}
	return Accepted, nil
}

// StartDelivering transitions the status to Delivering.
func (s Status) StartDelivering() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewStatusConflictError(eventStartDelivering, s.String())
	}
	return Delivering, nil
}

// ValidateReview checks that the status accepts a review without
// performing any transition: reviews are only allowed on Completed orders.
func (s Status) ValidateReview() error {
	if s != Completed {
		return errs.NewStatusConflictError(eventReview, s.String())
	}
	return nil
}

// ValidateDelete checks that the order may be hard-deleted.
// Only Cancelled orders can be removed.
func (s Status) ValidateDelete() error {
	if s != Cancelled {
		return errs.NewStatusConflictError(eventDelete, s.String())
	}
	return nil
}

// ValidateCanHaveDeliverer validates consistency between status and
// deliverer linkage: a deliverer may only be linked once the order has
// moved into Accepted, Delivering, or Completed.
func (s Status) ValidateCanHaveDeliverer(hasDeliverer bool) error {
	if hasDeliverer && s != Accepted && s != Delivering && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot have a deliverer", s))
	}
	return nil
}
