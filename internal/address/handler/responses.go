package handler

import "cadastro/internal/address/models"

// AddressResponse is the public projection of an address: every stored
// field plus the generated id.
type AddressResponse struct {
	AddressID  int64  `json:"address_id"`
	Logradouro string `json:"logradouro"`
	Numero     int64  `json:"numero"`
	Estado     string `json:"estado"`
	Cidade     string `json:"cidade"`
	Bairro     string `json:"bairro"`
}

func NewAddressResponse(a *models.Address) *AddressResponse {
	return &AddressResponse{
		AddressID:  a.ID,
		Logradouro: a.Logradouro,
		Numero:     a.Numero,
		Estado:     a.Estado,
		Cidade:     a.Cidade,
		Bairro:     a.Bairro,
	}
}

func newAddressResponses(addresses []models.Address) []AddressResponse {
	responses := make([]AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, *NewAddressResponse(&addresses[i]))
	}
	return responses
}
