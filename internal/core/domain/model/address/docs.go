// Package address contains the address book entity. Each entry belongs to
// one user and is either a pickup or a delivery address; at most one entry
// per user and type is marked as the default.
package address
