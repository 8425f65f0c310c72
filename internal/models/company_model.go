package models

// Company is a tenant owning parking locations. CountParking is stored exactly
// as the client sent it.
type Company struct {
	ID                      string      `json:"id" firestore:"id"`
	Name                    string      `json:"nameCompany" firestore:"nameCompany"`
	Email                   string      `json:"emailCompany" firestore:"emailCompany"`
	CountParking            interface{} `json:"countParking" firestore:"countParking"`
	Subscription            string      `json:"Subscription" firestore:"Subscription"`
	ParkingIDs              []string    `json:"CompanyParking" firestore:"CompanyParking"`
	CompanyParkingLocations []string    `json:"CompanyParkingLocations,omitempty" firestore:"CompanyParkingLocations,omitempty"`
	Token                   string      `json:"token,omitempty" firestore:"token,omitempty"`
}

// CompanyUpdate lists the fields overwritten by an update. All of them are written.
type CompanyUpdate struct {
	Name                    string
	Email                   string
	CountParking            interface{}
	Subscription            string
	CompanyParkingLocations []string
}
