package models

// User is the profile mirrored into the "users" collection after the identity
// provider has issued an account. The document ID is the auth UID.
type User struct {
	ID           string   `json:"id" firestore:"id"`
	FullName     string   `json:"fullname" firestore:"fullname"`
	Email        string   `json:"email" firestore:"email"`
	PhoneNumber  string   `json:"phoneNumber" firestore:"phoneNumber"`
	City         string   `json:"City" firestore:"City"`
	Nationality  string   `json:"nationality" firestore:"nationality"`
	Gender       string   `json:"jins" firestore:"jins"`
	PhotoURL     string   `json:"photoURL" firestore:"photoURL"`
	Reservations []string `json:"reservations" firestore:"reservations"`
	Role         []string `json:"role" firestore:"role"`
}

// RoleCustomer is assigned to every account created through sign-up.
const RoleCustomer = "Customer"

// IdentityToCreate carries the fields handed to the identity provider on sign-up.
type IdentityToCreate struct {
	Email    string
	Password string
	PhotoURL string
}
