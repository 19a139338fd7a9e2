package domain

import "time"

// Address is the fixed-shape postal address shared by customers and job sites.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Customer represents a residential or business client.
type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ContactPerson  string    `json:"contactPerson,omitempty"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PrimaryAddress Address   `json:"primaryAddress"`
	BillingAddress *Address  `json:"billingAddress,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	IsActive       bool      `json:"isActive"`
}
