package http

import "time"

// Error is the JSON error body returned for rejected requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OutcomeResponse reports the result code of a lifecycle command. Redirecting
// outcomes additionally set the Location header on the HTTP response.
type OutcomeResponse struct {
	Outcome string `json:"outcome"`
}

// SaveOrderRequest is the body of POST /api/v1/radiology/orders. A zero or absent
// order_id creates a new order; an assigned one updates the existing order.
type SaveOrderRequest struct {
	OrderID   int64  `json:"order_id,omitempty"`
	PatientID int64  `json:"patient_id"`
	OrdererID int64  `json:"orderer_id"`
	Modality  string `json:"modality"`
	Priority  string `json:"priority"`
}

// VoidOrderRequest is the body of POST /api/v1/radiology/orders/:id/void.
type VoidOrderRequest struct {
	Reason string `json:"reason"`
}

// DiscontinueOrderRequest is the body of POST /api/v1/radiology/orders/:id/discontinue.
type DiscontinueOrderRequest struct {
	Reason string    `json:"reason"`
	Date   time.Time `json:"date"`
}
