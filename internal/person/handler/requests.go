package handler

import (
	"strings"

	"cadastro/internal/person/service"
	dErrors "cadastro/pkg/domain-errors"
)

// CreatePersonRequest is the wire shape for person creation. address_id is
// optional here; the store's constraints decide its fate.
type CreatePersonRequest struct {
	Name      *string `json:"name"`
	AddressID *int64  `json:"address_id"`
}

func (r *CreatePersonRequest) Normalize() {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
	}
}

func (r *CreatePersonRequest) Validate() error {
	if r.Name == nil || *r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func (r *CreatePersonRequest) ToCommand() *service.CreatePersonCommand {
	return &service.CreatePersonCommand{
		Name:      *r.Name,
		AddressID: r.AddressID,
	}
}

// UpdatePersonRequest is the wire shape for partial person updates.
// Absent fields leave the stored values untouched.
type UpdatePersonRequest struct {
	Name      *string `json:"name"`
	AddressID *int64  `json:"address_id"`
}

func (r *UpdatePersonRequest) Normalize() {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
	}
}

func (r *UpdatePersonRequest) ToCommand() *service.UpdatePersonCommand {
	return &service.UpdatePersonCommand{
		Name:      r.Name,
		AddressID: r.AddressID,
	}
}
