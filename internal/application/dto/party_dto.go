package dto

import "time"

// PartyRequest criação/atualização de cliente ou fornecedor.
type PartyRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"` // CPF ou CNPJ
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// PartyResponse cliente ou fornecedor.
type PartyResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartyListResponse listagem paginada.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
