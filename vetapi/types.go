// Package vetapi provides the Go client for the vet-system REST API.
//
// The client wraps every outbound request through a single choke point,
// attaches bearer-token authentication from a pluggable session store,
// and normalizes error responses into *Error values.
package vetapi

import "time"

// User represents a user account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// CreateUserRequest is the request for registering a new user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the credentials exchanged for a session.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the full login payload: an opaque bearer token plus
// a snapshot of the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Owner represents a pet guardian/customer record.
type Owner struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	Street       string    `json:"street,omitempty"`
	Number       string    `json:"number,omitempty"`
	Complement   string    `json:"complement,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	ZipCode      string    `json:"zipCode,omitempty"`
	UserID       string    `json:"userId"`
	Animals      []Animal  `json:"animals,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateOwnerRequest is the request for creating an owner.
type CreateOwnerRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"`
}

// UpdateOwnerRequest is a partial update. Nil fields are omitted from
// the wire payload so the server only touches what the caller supplied.
type UpdateOwnerRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Street       *string `json:"street,omitempty"`
	Number       *string `json:"number,omitempty"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zipCode,omitempty"`
}

// Animal represents a pet belonging to an Owner.
type Animal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed,omitempty"`
	OwnerID   string    `json:"ownerId"`
	Owner     *Owner    `json:"owner,omitempty"`
	Records   []Record  `json:"records,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAnimalRequest is the request for creating an animal.
type CreateAnimalRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`
	OwnerID string `json:"ownerId"`
}

// UpdateAnimalRequest is a partial update. The owning relation is fixed
// at creation and cannot be moved.
type UpdateAnimalRequest struct {
	Name    *string `json:"name,omitempty"`
	Species *string `json:"species,omitempty"`
	Breed   *string `json:"breed,omitempty"`
}

// Record represents a single veterinary visit/medical entry tied to an
// Animal.
type Record struct {
	ID          string    `json:"id"`
	Weight      string    `json:"weight"`
	Medications string    `json:"medications"`
	Dosage      string    `json:"dosage"`
	Notes       string    `json:"notes"`
	AttendedAt  time.Time `json:"attendedAt"`
	AnimalID    string    `json:"animalId"`
	Animal      *Animal   `json:"animal,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateRecordRequest is the request for creating a medical record.
type CreateRecordRequest struct {
	Weight      string    `json:"weight"`
	Medications string    `json:"medications"`
	Dosage      string    `json:"dosage"`
	Notes       string    `json:"notes"`
	AttendedAt  time.Time `json:"attendedAt"`
	AnimalID    string    `json:"animalId"`
}

// UpdateRecordRequest is a partial update. The owning relation is fixed
// at creation and cannot be moved.
type UpdateRecordRequest struct {
	Weight      *string    `json:"weight,omitempty"`
	Medications *string    `json:"medications,omitempty"`
	Dosage      *string    `json:"dosage,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	AttendedAt  *time.Time `json:"attendedAt,omitempty"`
}
