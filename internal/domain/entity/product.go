package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto fabricable. Value es el valor monetario por
// unidad; las materias primas requeridas se modelan como líneas BOM
// (BOMLine) asociadas al producto.
type Product struct {
	ID        string
	Name      string
	Value     decimal.Decimal // valor de venta por unidad
	BOM       []BOMLine       // lista ordenada de requerimientos de materia prima
	CreatedAt time.Time
	UpdatedAt time.Time
}
