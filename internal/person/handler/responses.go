package handler

import "cadastro/internal/person/models"

// PersonResponse is the public projection of a person: every stored field
// plus the generated id.
type PersonResponse struct {
	PersonID  int64  `json:"person_id"`
	Name      string `json:"name"`
	AddressID int64  `json:"address_id"`
}

func toPersonResponse(p *models.Person) *PersonResponse {
	return &PersonResponse{
		PersonID:  p.ID,
		Name:      p.Name,
		AddressID: p.AddressID,
	}
}

func toPersonResponses(persons []models.Person) []PersonResponse {
	responses := make([]PersonResponse, 0, len(persons))
	for i := range persons {
		responses = append(responses, *toPersonResponse(&persons[i]))
	}
	return responses
}
