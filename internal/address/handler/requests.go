package handler

import (
	"strings"

	"cadastro/internal/address/service"
	dErrors "cadastro/pkg/domain-errors"
)

// CreateAddressRequest is the wire shape for address creation. Pointer
// fields distinguish "omitted" from "present with a zero value" so required
// fields can be reported precisely.
type CreateAddressRequest struct {
	Logradouro *string `json:"logradouro"`
	Numero     *int64  `json:"numero"`
	Estado     *string `json:"estado"`
	Cidade     *string `json:"cidade"`
	Bairro     *string `json:"bairro"`
}

func (r *CreateAddressRequest) Normalize() {
	trim(r.Logradouro)
	trim(r.Estado)
	trim(r.Cidade)
	trim(r.Bairro)
}

func (r *CreateAddressRequest) Validate() error {
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"logradouro", r.Logradouro},
		{"estado", r.Estado},
		{"cidade", r.Cidade},
		{"bairro", r.Bairro},
	} {
		if field.value == nil || *field.value == "" {
			return dErrors.New(dErrors.CodeValidation, field.name+" is required")
		}
	}
	if r.Numero == nil {
		return dErrors.New(dErrors.CodeValidation, "numero is required")
	}
	return nil
}

func (r *CreateAddressRequest) ToCommand() *service.CreateAddressCommand {
	return &service.CreateAddressCommand{
		Logradouro: *r.Logradouro,
		Numero:     *r.Numero,
		Estado:     *r.Estado,
		Cidade:     *r.Cidade,
		Bairro:     *r.Bairro,
	}
}

// UpdateAddressRequest is the wire shape for partial address updates.
// Absent fields leave the stored values untouched.
type UpdateAddressRequest struct {
	Logradouro *string `json:"logradouro"`
	Numero     *int64  `json:"numero"`
	Estado     *string `json:"estado"`
	Cidade     *string `json:"cidade"`
	Bairro     *string `json:"bairro"`
}

func (r *UpdateAddressRequest) Normalize() {
	trim(r.Logradouro)
	trim(r.Estado)
	trim(r.Cidade)
	trim(r.Bairro)
}

func (r *UpdateAddressRequest) ToCommand() *service.UpdateAddressCommand {
	return &service.UpdateAddressCommand{
		Logradouro: r.Logradouro,
		Numero:     r.Numero,
		Estado:     r.Estado,
		Cidade:     r.Cidade,
		Bairro:     r.Bairro,
	}
}

func trim(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}
