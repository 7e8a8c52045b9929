package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=100"`
	Value decimal.Decimal `json:"value"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Value *decimal.Decimal `json:"value"`
}

// AddBOMLineRequest entrada tipada para asociar una materia prima a un
// producto (reemplaza el payload genérico clave/valor del cliente legado).
type AddBOMLineRequest struct {
	RawMaterialID    string `json:"raw_material_id" validate:"required"`
	QuantityRequired int    `json:"quantity_required" validate:"required,min=1"`
}

// UpdateBOMLineRequest entrada para cambiar la cantidad requerida de una línea.
type UpdateBOMLineRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// BOMLineResponse una línea BOM resuelta (con nombre y stock del material).
type BOMLineResponse struct {
	RawMaterialID    string `json:"raw_material_id"`
	RawMaterialName  string `json:"raw_material_name"`
	QuantityRequired int    `json:"quantity_required"`
	StockQuantity    int    `json:"stock_quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Value     decimal.Decimal   `json:"value"`
	BOM       []BOMLineResponse `json:"raw_materials,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
