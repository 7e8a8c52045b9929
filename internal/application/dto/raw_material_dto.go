package dto

import "time"

// CreateRawMaterialRequest entrada para crear una materia prima.
type CreateRawMaterialRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
}

// UpdateRawMaterialRequest entrada para actualizar una materia prima.
type UpdateRawMaterialRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	StockQuantity *int    `json:"stock_quantity" validate:"omitempty,min=0"`
}

// StockAdjustmentRequest entrada para incrementar o decrementar stock.
type StockAdjustmentRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// RawMaterialResponse salida de una materia prima.
type RawMaterialResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
