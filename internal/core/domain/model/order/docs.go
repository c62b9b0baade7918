// Package order provides the domain model for campus delivery requests.
// It implements the Order aggregate root with lifecycle management, money
// derivation, and review rules.
//
// The package includes:
//   - Order: the aggregate root owning identity, route, economics, and lifecycle
//   - Status: a state machine enforcing valid lifecycle transitions
//   - Review: the one-shot user review a completed order may carry
//
// Key business rules:
//   - Orders are created Pending with a positive total amount; the actual
//     amount is always derived as max(0, total - discount)
//   - pending -> cancelled -> pending (restore) -> completed are the
//     owner-driven transitions; accepted/delivering belong to the external
//     assignment process
//   - Completed orders accept exactly one review with a rating in [1,5]
//   - Only Cancelled orders may be hard-deleted
//   - Every operation against an order is preceded by an ownership check,
//     reported distinctly from lifecycle guard failures
package order
