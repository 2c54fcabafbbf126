// Package models defines the Person record persisted by the service.
package models

// Person is the stored record. AddressID references address.address_id;
// the reference is enforced by the store, never pre-validated here.
type Person struct {
	ID        int64
	Name      string
	AddressID int64
}
