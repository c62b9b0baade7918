package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request body validation.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs struct tag validation on the bound request body.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// CreateOrderRequest is the body of POST /api/orders. Coordinates and route
// estimates are optional; when both endpoints carry coordinates the order
// stores the route for the deliverer.
type CreateOrderRequest struct {
	StartAddress      string  `json:"start_address"      validate:"required"`
	EndAddress        string  `json:"end_address"        validate:"required"`
	ItemDescription   string  `json:"item_description"`
	TotalAmount       float64 `json:"total_amount"       validate:"gte=0"`
	CouponDiscount    float64 `json:"coupon_discount"    validate:"gte=0"`
	OriginDetail      string  `json:"origin_detail"`
	DestinationDetail string  `json:"destination_detail"`
	PickupCode        string  `json:"pickup_code"`
	LockerNumber      string  `json:"locker_number"`
	OrderImage        string  `json:"order_image"`

	OriginLat            *float64 `json:"origin_lat"`
	OriginLng            *float64 `json:"origin_lng"`
	DestinationLat       *float64 `json:"destination_lat"`
	DestinationLng       *float64 `json:"destination_lng"`
	EstimatedDistanceKm  *float64 `json:"estimated_distance_km"`
	EstimatedDurationMin *int     `json:"estimated_duration_min"`
}

// ReviewOrderRequest is the body of POST /api/orders/:id/review.
type ReviewOrderRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=500"`
}

// AddAddressRequest is the body of POST /api/addresses.
type AddAddressRequest struct {
	AddressType   string `json:"address_type"   validate:"required,oneof=pickup delivery"`
	Name          string `json:"name"           validate:"required,max=50"`
	AddressDetail string `json:"address_detail" validate:"required,max=200"`
	ContactPerson string `json:"contact_person" validate:"max=50"`
	ContactPhone  string `json:"contact_phone"  validate:"max=20"`
	Notes         string `json:"notes"          validate:"max=200"`
	IsDefault     bool   `json:"is_default"`
}

// UpdateAddressRequest is the body of PUT /api/addresses/:id. The address
// type is fixed at creation and cannot be changed here.
type UpdateAddressRequest struct {
	Name          string `json:"name"           validate:"required,max=50"`
	AddressDetail string `json:"address_detail" validate:"required,max=200"`
	ContactPerson string `json:"contact_person" validate:"max=50"`
	ContactPhone  string `json:"contact_phone"  validate:"max=20"`
	Notes         string `json:"notes"          validate:"max=200"`
	IsDefault     bool   `json:"is_default"`
}

// LikeDelivererRequest is the body of POST /api/deliverers/:id/like.
type LikeDelivererRequest struct {
	Unlike bool `json:"unlike"`
}
