package service

import (
	"strings"

	"cadastro/internal/address/models"
	dErrors "cadastro/pkg/domain-errors"
)

// CreateAddressCommand contains validated input for address creation.
// Every field is required; a street number of zero is a legal value.
type CreateAddressCommand struct {
	Logradouro string
	Numero     int64
	Estado     string
	Cidade     string
	Bairro     string
}

func (c *CreateAddressCommand) Validate() error {
	if err := requireField("logradouro", c.Logradouro); err != nil {
		return err
	}
	if err := requireField("estado", c.Estado); err != nil {
		return err
	}
	if err := requireField("cidade", c.Cidade); err != nil {
		return err
	}
	return requireField("bairro", c.Bairro)
}

// UpdateAddressCommand contains validated input for partial address updates.
// All fields are optional; nil means "leave unchanged". Pointer fields keep
// "omitted" distinguishable from "set to the zero value".
type UpdateAddressCommand struct {
	Logradouro *string
	Numero     *int64
	Estado     *string
	Cidade     *string
	Bairro     *string
}

// Validate applies the creation-time field rules to every field that is
// present. A field carrying only whitespace cannot be patched in.
func (c *UpdateAddressCommand) Validate() error {
	if err := requireOptionalField("logradouro", c.Logradouro); err != nil {
		return err
	}
	if err := requireOptionalField("estado", c.Estado); err != nil {
		return err
	}
	if err := requireOptionalField("cidade", c.Cidade); err != nil {
		return err
	}
	return requireOptionalField("bairro", c.Bairro)
}

// IsEmpty returns true if the command contains no updates.
func (c *UpdateAddressCommand) IsEmpty() bool {
	return c.Logradouro == nil &&
		c.Numero == nil &&
		c.Estado == nil &&
		c.Cidade == nil &&
		c.Bairro == nil
}

// ApplyTo merges the present fields onto the stored record, field by field.
// Absent fields keep their persisted values.
func (c *UpdateAddressCommand) ApplyTo(a *models.Address) {
	if c.Logradouro != nil {
		a.Logradouro = *c.Logradouro
	}
	if c.Numero != nil {
		a.Numero = *c.Numero
	}
	if c.Estado != nil {
		a.Estado = *c.Estado
	}
	if c.Cidade != nil {
		a.Cidade = *c.Cidade
	}
	if c.Bairro != nil {
		a.Bairro = *c.Bairro
	}
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return dErrors.New(dErrors.CodeValidation, name+" is required")
	}
	return nil
}

func requireOptionalField(name string, value *string) error {
	if value == nil {
		return nil
	}
	if strings.TrimSpace(*value) == "" {
		return dErrors.New(dErrors.CodeValidation, name+" cannot be blank")
	}
	return nil
}
