package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// RawMaterialRepository define el puerto de persistencia para RawMaterial.
type RawMaterialRepository interface {
	Create(material *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	ListAll() ([]*entity.RawMaterial, error)
	SearchByName(name string) ([]*entity.RawMaterial, error)
	FindLowStock(threshold int) ([]*entity.RawMaterial, error)
	Update(material *entity.RawMaterial) error
	UpdateStock(id string, quantity int) error
	Delete(id string) (bool, error)
	// StockSnapshot devuelve materialID → stock actual de TODAS las materias
	// primas, para sembrar el ledger de una corrida de planificación.
	StockSnapshot() (map[string]int, error)
}
