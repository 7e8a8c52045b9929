package dto

import "github.com/shopspring/decimal"

// ProductionItemResponse una asignación del plan de producción.
type ProductionItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

// ProductionPlanResponse plan completo: items en orden de asignación y valor agregado.
type ProductionPlanResponse struct {
	Items      []ProductionItemResponse `json:"items"`
	TotalValue decimal.Decimal          `json:"total_value"`
}

// CanProduceResponse respuesta del chequeo de factibilidad.
type CanProduceResponse struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	CanProduce bool   `json:"can_produce"`
}
