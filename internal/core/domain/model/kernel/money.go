package kernel

import (
	"fmt"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney")

// Money is an immutable value object for monetary amounts. It wraps
// decimal.Decimal so that amount arithmetic (discount subtraction, totals)
// stays exact instead of accumulating float error.
//
// Money is never negative. The zero value is invalid; use a constructor.
//
// Example:
//
//	total, err := kernel.NewMoneyFromFloat(35.50)
//	if err != nil {
//	    // handle validation error
//	}
//	actual := total.SubFloorZero(discount)
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount, as received
// from JSON payloads. Returns an error if the amount is negative.
func NewMoneyFromFloat(v float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(v))
}

// ZeroMoney returns a valid Money of zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate ensures the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for serialization.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// SubFloorZero subtracts other from m, flooring the result at zero.
// This is the derivation rule for an order's actual amount:
// actual = max(0, total - discount).
func (m Money) SubFloorZero(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		result = decimal.Zero
	}
	return Money{amount: result, guard: guard.NewConstructorGuard()}
}
