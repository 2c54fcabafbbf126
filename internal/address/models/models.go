// Package models defines the Address record persisted by the service.
package models

// Address is the stored record. All fields plus the generated id form the
// public projection returned to API callers; there is no hidden state.
type Address struct {
	ID         int64
	Logradouro string
	Numero     int64
	Estado     string
	Cidade     string
	Bairro     string
}
