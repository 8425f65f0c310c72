package models

// SignUpRequest is the body of POST /singup.
type SignUpRequest struct {
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"City"`
	Nationality string `json:"nationality"`
	Gender      string `json:"jins"`
	PhotoURL    string `json:"photoURL"`
}

// CreateCompanyRequest is the body of POST /create-company.
type CreateCompanyRequest struct {
	Name           string      `json:"nameCompany"`
	Email          string      `json:"emailCompany"`
	CountParking   interface{} `json:"countParking"`
	Subscription   string      `json:"Subscription"`
	CompanyParking []string    `json:"CompanyParking"`
}

// UpdateCompanyRequest is the body of POST /update-company/:id.
type UpdateCompanyRequest struct {
	Name                    string      `json:"nameCompany"`
	Email                   string      `json:"emailCompany"`
	CountParking            interface{} `json:"countParking"`
	Subscription            string      `json:"Subscription"`
	CompanyParkingLocations []string    `json:"CompanyParkingLocations"`
}

// SubscribeCompanyRequest is the body of POST /subscripe-company/:id.
// ExpiresIn is a number of seconds, a millisecond count string or a string such as "30d".
type SubscribeCompanyRequest struct {
	UpdateCompanyRequest
	ExpiresIn interface{} `json:"expiresIn"`
}

// CreateLocationRequest is the body of POST /create-location-park/:companyId.
type CreateLocationRequest struct {
	Label       string   `json:"ParkingLocations"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// UpdateLocationRequest is the body of POST /update-parking/:id. Only the
// fields present in the body are written.
type UpdateLocationRequest struct {
	Label       *string  `json:"ParkingLocations"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
	Park        []string `json:"Park"`
}

// Empty reports whether the body carried none of the location fields.
func (r UpdateLocationRequest) Empty() bool {
	return r.Label == nil && r.Description == nil && r.Images == nil && r.Park == nil
}

// CreateSpotRequest is the body of POST /create-parking/:ParkingId.
type CreateSpotRequest struct {
	Word string `json:"word"`
}

// UpdateSpotRequest is the body of POST /update-park/:ParkId.
type UpdateSpotRequest struct {
	Word string `json:"word"`
}

// ReserveSpotRequest is the body of POST /reserve-parking/:parkId.
type ReserveSpotRequest struct {
	UserID string `json:"userId"`
}

// UpdateReservationRequest is the body of POST /update-reserve/:reserveId.
// Empty fields are left unchanged.
type UpdateReservationRequest struct {
	UserID string `json:"userId"`
	ParkID string `json:"parkId"`
}
