// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - Money: exact decimal monetary amounts, never negative
//   - OrderNumber: the opaque external order token (32 hex characters)
//   - GeoPoint: a validated WGS84 coordinate pair
//
// All value objects are immutable, validate their inputs on construction,
// and reject their zero values through a constructor guard, following
// Domain-Driven Design conventions.
package kernel
