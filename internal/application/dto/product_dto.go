package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest criação de produto. Cost inicia em 0 e só muda via movimentações.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	MinStock    decimal.Decimal `json:"min_stock"`
}

// UpdateProductRequest atualização parcial de produto (ponteiros = campos opcionais).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Unit        *string          `json:"unit"`
	MinStock    *decimal.Decimal `json:"min_stock"`
}

// ProductResponse produto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Unit        string          `json:"unit"`
	MinStock    decimal.Decimal `json:"min_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listagem paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
