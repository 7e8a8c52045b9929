// Package planning implementa el núcleo de planificación de producción:
// dado un catálogo de productos con sus líneas BOM y un snapshot de stock de
// materias primas, decide cuántas unidades de cada producto fabricar sin
// sobre-consumir ningún material (servicio de dominio puro, sin I/O).
package planning

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// PlanItem es una asignación del plan: cuántas unidades de un producto se
// fabrican y su valor total (Value * Quantity, decimal exacto).
type PlanItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitValue   decimal.Decimal
	TotalValue  decimal.Decimal
}

// Plan es el resultado de una corrida completa: items en orden de asignación
// (solo cantidades > 0) y el valor agregado.
type Plan struct {
	Items      []PlanItem
	TotalValue decimal.Decimal
}

// MaxProducible calcula cuántas unidades del producto caben en el stock
// restante del ledger: regla del eslabón más débil, el mínimo sobre las
// líneas BOM de floor(disponible / requerido por unidad).
//
// Es una consulta pura (no muta el ledger), para poder reutilizarla tanto en
// el plan completo como en consultas por producto. Un producto sin líneas BOM
// nunca se fabrica (0): evita producción "infinita" de items sin costo. Una
// línea con requerimiento <= 0 es un error de integridad del catálogo y hace
// al producto no fabricable, nunca se divide por un divisor no positivo.
func MaxProducible(product entity.Product, ledger *Ledger) int {
	if len(product.BOM) == 0 {
		return 0
	}
	maxQty := math.MaxInt
	for _, line := range product.BOM {
		if line.QuantityPerUnit <= 0 {
			return 0
		}
		possible := ledger.Available(line.RawMaterialID) / line.QuantityPerUnit
		if possible < maxQty {
			maxQty = possible
		}
	}
	return maxQty
}

// ComputeFullPlan calcula el plan de producción completo sobre un snapshot.
//
// Asignador greedy de una sola pasada: ordena los productos por valor
// unitario descendente (empates conservan el orden del catálogo, para que el
// resultado sea determinista) y asigna a cada uno su máximo fabricable
// contra el stock restante, reservando los materiales consumidos. Un
// producto de mayor valor reclama primero los materiales compartidos; no hay
// backtracking ni lookahead, ese trade-off de simplicidad es deliberado y
// debe preservarse.
//
// Falla con domain.ErrInvalidStock (snapshot con cantidad negativa) antes de
// asignar nada; nunca se retorna un plan parcial.
func ComputeFullPlan(products []entity.Product, snapshot map[string]int) (*Plan, error) {
	ledger, err := NewLedger(snapshot)
	if err != nil {
		return nil, err
	}

	// Prioriza por valor (mayor primero); sort estable para empates
	sorted := make([]entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value.GreaterThan(sorted[j].Value)
	})

	plan := &Plan{Items: []PlanItem{}, TotalValue: decimal.Zero}
	for _, product := range sorted {
		qty := MaxProducible(product, ledger)
		if qty == 0 {
			continue // no entra al plan y no consume nada
		}
		for _, line := range product.BOM {
			if err := ledger.Reserve(line.RawMaterialID, line.QuantityPerUnit*qty); err != nil {
				// Imposible si MaxProducible es correcto; se propaga como bug de programación.
				return nil, err
			}
		}
		item := newPlanItem(product, qty)
		plan.Items = append(plan.Items, item)
		plan.TotalValue = plan.TotalValue.Add(item.TotalValue)
	}
	return plan, nil
}

// ComputeForProduct calcula cuántas unidades de UN producto caben en el
// snapshot, ignorando el resto del catálogo ("si este producto se fabricara
// primero, cuántas unidades salen"). Quantity puede ser 0.
func ComputeForProduct(product entity.Product, snapshot map[string]int) (*PlanItem, error) {
	ledger, err := NewLedger(snapshot)
	if err != nil {
		return nil, err
	}
	item := newPlanItem(product, MaxProducible(product, ledger))
	return &item, nil
}

// CanProduce responde si el stock del snapshot alcanza para fabricar
// requested unidades del producto. Verifica contra el snapshot crudo, sin
// descontar lo que otros productos reclamarían en un plan completo, y no
// muta nada (idempotente). Una cantidad solicitada <= 0 se trata como no
// factible (false) en vez de error, para mantener la función total sobre los
// enteros.
func CanProduce(product entity.Product, snapshot map[string]int, requested int) bool {
	if requested <= 0 {
		return false
	}
	// Sin líneas BOM no hay restricción que verificar: true por vacuidad.
	// Nótese la asimetría con MaxProducible, que para BOM vacío devuelve 0.
	for _, line := range product.BOM {
		if line.QuantityPerUnit <= 0 {
			return false
		}
		if line.QuantityPerUnit*requested > snapshot[line.RawMaterialID] {
			return false
		}
	}
	return true
}

func newPlanItem(product entity.Product, qty int) PlanItem {
	return PlanItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    qty,
		UnitValue:   product.Value,
		TotalValue:  product.Value.Mul(decimal.NewFromInt(int64(qty))),
	}
}
