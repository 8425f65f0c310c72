package models

// ParkingLocation is a physical site holding parking spots. Park keeps the
// spot document IDs in creation order.
type ParkingLocation struct {
	ID          string   `json:"id" firestore:"id"`
	Label       string   `json:"ParkingLocations" firestore:"ParkingLocations"`
	Description string   `json:"description" firestore:"description"`
	Images      []string `json:"images" firestore:"images"`
	Park        []string `json:"Park" firestore:"Park"`
}

// LocationUpdate lists the fields overwritten by an update. Nil fields are
// left as stored.
type LocationUpdate struct {
	Label       *string
	Description *string
	Images      []string
	Park        []string
}

// LocationDetail is a location with its spot IDs resolved to spot documents.
type LocationDetail struct {
	ID          string         `json:"id"`
	Label       string         `json:"ParkingLocations"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Park        []*ParkingSpot `json:"Park"`
}
