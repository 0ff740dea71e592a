package repository

import "github.com/flexigestor/flexi-gestor-api/internal/domain/entity"

// CustomerRepository porta de persistência para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}

// SupplierRepository porta de persistência para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
