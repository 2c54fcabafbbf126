package service

import (
	"strings"

	"cadastro/internal/person/models"
	dErrors "cadastro/pkg/domain-errors"
)

// CreatePersonCommand contains validated input for person creation.
// AddressID is optional on the wire and passed through to the store
// untouched; an absent reference fails at the NOT NULL constraint, a
// dangling one at the FK constraint.
type CreatePersonCommand struct {
	Name      string
	AddressID *int64
}

func (c *CreatePersonCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

// UpdatePersonCommand contains validated input for partial person updates.
// All fields are optional; nil means "leave unchanged".
type UpdatePersonCommand struct {
	Name      *string
	AddressID *int64
}

func (c *UpdatePersonCommand) Validate() error {
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "name cannot be blank")
	}
	return nil
}

// IsEmpty returns true if the command contains no updates.
func (c *UpdatePersonCommand) IsEmpty() bool {
	return c.Name == nil && c.AddressID == nil
}

// ApplyTo merges the present fields onto the stored record, field by field.
// Absent fields keep their persisted values.
func (c *UpdatePersonCommand) ApplyTo(p *models.Person) {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.AddressID != nil {
		p.AddressID = *c.AddressID
	}
}
