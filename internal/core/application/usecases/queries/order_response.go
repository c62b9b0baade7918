// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection-friendly rows
// straight from the database.
package queries

import (
	"time"
)

// OrderResponse is the read model for a single order. It is shared by the
// listentry and single-order queries so clients see one shape everywhere.
type OrderResponse struct {
	ID                   uint64     `json:"id"`
	OrderNo              string     `json:"order_no"`
	UserID               uint64     `json:"user_id"`
	DelivererID          *uint64    `json:"deliverer_id,omitempty"`
	DelivererName        *string    `json:"deliverer_name,omitempty"`
	DelivererPhone       *string    `json:"deliverer_phone,omitempty"`
	StartAddress         string     `json:"start_address"`
	EndAddress           string     `json:"end_address"`
	OriginDetail         string     `json:"origin_detail,omitempty"`
	DestinationDetail    string     `json:"destination_detail,omitempty"`
	OriginLat            *float64   `json:"origin_lat,omitempty"`
	OriginLng            *float64   `json:"origin_lng,omitempty"`
	DestLat              *float64   `json:"dest_lat,omitempty"`
	DestLng              *float64   `json:"dest_lng,omitempty"`
	EstimatedDistanceKm  *float64   `json:"estimated_distance_km,omitempty"`
	EstimatedDurationMin *int       `json:"estimated_duration_min,omitempty"`
	ItemDescription      string     `json:"item_description,omitempty"`
	OrderImage           string     `json:"order_image,omitempty"`
	PickupCode           string     `json:"pickup_code,omitempty"`
	LockerNumber         string     `json:"locker_number,omitempty"`
	TotalAmount          float64    `json:"total_amount"`
	CouponDiscount       float64    `json:"coupon_discount"`
	ActualAmount         float64    `json:"actual_amount"`
	Status               string     `json:"status"`
	Rating               *int       `json:"rating,omitempty"`
	Comment              string     `json:"comment,omitempty"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
}

// orderRow mirrors the SELECT column list shared by the order queries.
type orderRow struct {
	ID                   uint64
	OrderNo              string
	UserID               uint64
	DelivererID          *uint64
	DelivererName        *string
	DelivererPhone       *string
	StartAddress         string
	EndAddress           string
	OriginDetail         string
	DestinationDetail    string
	OriginLat            *float64
	OriginLng            *float64
	DestLat              *float64
	DestLng              *float64
	EstimatedDistanceKm  *float64
	EstimatedDurationMin *int
	ItemDescription      string
	OrderImage           string
	PickupCode           string
	LockerNumber         string
	TotalAmount          float64
	CouponDiscount       float64
	ActualAmount         float64
	Status               string
	Rating               *int
	Comment              *string
	ReviewedAt           *time.Time
	CreatedAt            time.Time
	AcceptedAt           *time.Time
	CompletedAt          *time.Time
	CancelledAt          *time.Time
}

// orderSelectColumns is the column list every order query selects, joined
// with the deliverer directory for display fields.
const orderSelectColumns = `
	o.id,
	o.order_no,
	o.user_id,
	o.deliverer_id,
	d.name AS deliverer_name,
	d.phone AS deliverer_phone,
	o.start_address,
	o.end_address,
	o.origin_detail,
	o.destination_detail,
	o.origin_lat,
	o.origin_lng,
	o.dest_lat,
	o.dest_lng,
	o.estimated_distance_km,
	o.estimated_duration_min,
	o.item_description,
	o.order_image,
	o.pickup_code,
	o.locker_number,
	o.total_amount,
	o.coupon_discount,
	o.actual_amount,
	o.status,
	o.rating,
	o.comment,
	o.reviewed_at,
	o.created_at,
	o.accepted_at,
	o.completed_at,
	o.cancelled_at`

func (r orderRow) toResponse() OrderResponse {
	resp := OrderResponse{
		ID:                   r.ID,
		OrderNo:              r.OrderNo,
		UserID:               r.UserID,
		DelivererID:          r.DelivererID,
		DelivererName:        r.DelivererName,
		DelivererPhone:       r.DelivererPhone,
		StartAddress:         r.StartAddress,
		EndAddress:           r.EndAddress,
		OriginDetail:         r.OriginDetail,
		DestinationDetail:    r.DestinationDetail,
		OriginLat:            r.OriginLat,
		OriginLng:            r.OriginLng,
		DestLat:              r.DestLat,
		DestLng:              r.DestLng,
		EstimatedDistanceKm:  r.EstimatedDistanceKm,
		EstimatedDurationMin: r.EstimatedDurationMin,
		ItemDescription:      r.ItemDescription,
		OrderImage:           r.OrderImage,
		PickupCode:           r.PickupCode,
		LockerNumber:         r.LockerNumber,
		TotalAmount:          r.TotalAmount,
		CouponDiscount:       r.CouponDiscount,
		ActualAmount:         r.ActualAmount,
		Status:               r.Status,
		Rating:               r.Rating,
		ReviewedAt:           r.ReviewedAt,
		CreatedAt:            r.CreatedAt,
		AcceptedAt:           r.AcceptedAt,
		CompletedAt:          r.CompletedAt,
		CancelledAt:          r.CancelledAt,
	}
	if r.Comment != nil {
		resp.Comment = *r.Comment
	}
	return resp
}
