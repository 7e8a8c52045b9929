package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos *WithBOM devuelven el producto con sus líneas BOM resueltas
// (id, nombre de material y cantidad requerida) en orden estable.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIDWithBOM(id string) (*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	ListAllWithBOM() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) (bool, error)
}
