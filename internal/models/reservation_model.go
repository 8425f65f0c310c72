package models

// Reservation binds a user to a spot. The document is keyed by the spot ID, so
// a spot holds at most one reservation document at a time.
type Reservation struct {
	UserID string `json:"userId" firestore:"userId"`
	ParkID string `json:"parkId" firestore:"parkId"`
}

// ReservationUpdate lists the reservation fields to overwrite. Nil fields are
// left as stored.
type ReservationUpdate struct {
	UserID *string
	ParkID *string
}

// ReservationEvent is published after a reservation changes.
type ReservationEvent struct {
	Type   string `json:"type"`
	ParkID string `json:"parkId"`
	UserID string `json:"userId"`
	At     int64  `json:"at"`
}

const (
	ReservationCreated   = "reservation.created"
	ReservationUpdated   = "reservation.updated"
	ReservationCancelled = "reservation.cancelled"
)
