package client

import "github.com/storalia/bodega/internal/domain"

// ClientRequest represents the input for creating or updating a client.
type ClientRequest struct {
	Name                string `json:"name" form:"name" binding:"required,max=100"`
	Identification      string `json:"identification" form:"identification" binding:"required,max=50"`
	Phone               string `json:"phone" form:"phone" binding:"max=30"`
	SecondaryPhone      string `json:"secondary_phone" form:"secondary_phone" binding:"max=30"`
	Email               string `json:"email" form:"email" binding:"omitempty,email"`
	LegalRepresentative string `json:"legal_representative" form:"legal_representative" binding:"max=100"`
	Activity            string `json:"activity" form:"activity" binding:"max=100"`
}

func (r *ClientRequest) toEntity() *domain.Client {
	return &domain.Client{
		Name:                r.Name,
		Identification:      r.Identification,
		Phone:               r.Phone,
		SecondaryPhone:      r.SecondaryPhone,
		Email:               r.Email,
		LegalRepresentative: r.LegalRepresentative,
		Activity:            r.Activity,
	}
}
