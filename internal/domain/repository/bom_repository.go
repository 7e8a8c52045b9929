package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// BOMRepository define el puerto para las asociaciones producto ↔ materia
// prima (líneas del bill-of-materials).
type BOMRepository interface {
	ListByProduct(productID string) ([]entity.BOMLine, error)
	Exists(productID, rawMaterialID string) (bool, error)
	Add(productID, rawMaterialID string, quantityPerUnit int) error
	UpdateQuantity(productID, rawMaterialID string, quantityPerUnit int) (bool, error)
	Remove(productID, rawMaterialID string) (bool, error)
}
