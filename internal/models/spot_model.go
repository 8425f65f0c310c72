package models

// ParkingSpot is a single reservable unit. Reserve is empty when the spot is
// free, otherwise it holds the reserving user's ID.
type ParkingSpot struct {
	ID      string `json:"id" firestore:"id"`
	Word    string `json:"word" firestore:"word"`
	Reserve string `json:"reserve" firestore:"reserve"`
}

// IsReserved reports whether a user ID is mirrored on the spot.
func (s *ParkingSpot) IsReserved() bool {
	return s.Reserve != ""
}
