package entity

import "time"

// RawMaterial representa una materia prima con su stock disponible.
// StockQuantity es unidades enteras; nunca puede quedar negativo.
type RawMaterial struct {
	ID            string
	Name          string
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
