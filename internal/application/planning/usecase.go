package planning

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/planning"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// PlanUseCase orquesta una corrida de planificación: toma un snapshot
// consistente de catálogo y stock (una transacción de lectura), invoca el
// núcleo puro y mapea el resultado a DTOs. El núcleo nunca toca la DB ni se
// consulta a mitad de corrida.
type PlanUseCase struct {
	snapshots SnapshotRunner
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(snapshots SnapshotRunner) *PlanUseCase {
	return &PlanUseCase{snapshots: snapshots}
}

// FullPlan calcula el plan de producción completo.
func (uc *PlanUseCase) FullPlan(ctx context.Context) (*dto.ProductionPlanResponse, error) {
	plan, err := uc.ComputePlan(ctx)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// ComputePlan calcula el plan y lo devuelve en tipos de dominio (lo usa
// FullPlan para el JSON y el use case de PDF para el reporte).
func (uc *PlanUseCase) ComputePlan(ctx context.Context) (*planning.Plan, error) {
	var products []*entity.Product
	var snapshot map[string]int

	err := uc.snapshots.Read(ctx, func(
		productRepo repository.ProductRepository,
		materialRepo repository.RawMaterialRepository,
	) error {
		var err error
		if products, err = productRepo.ListAllWithBOM(); err != nil {
			return err
		}
		snapshot, err = materialRepo.StockSnapshot()
		return err
	})
	if err != nil {
		return nil, err
	}

	return planning.ComputeFullPlan(derefProducts(products), snapshot)
}

// ForProduct calcula cuántas unidades de un producto caben en el stock
// actual, ignorando el resto del catálogo. domain.ErrNotFound si el producto
// no existe.
func (uc *PlanUseCase) ForProduct(ctx context.Context, productID string) (*dto.ProductionItemResponse, error) {
	product, snapshot, err := uc.productSnapshot(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	item, err := planning.ComputeForProduct(*product, snapshot)
	if err != nil {
		return nil, err
	}
	out := toItemResponse(*item)
	return &out, nil
}

// CanProduce responde si el stock actual alcanza para fabricar la cantidad
// solicitada del producto. Un producto inexistente no es factible (false),
// igual que una cantidad no positiva.
func (uc *PlanUseCase) CanProduce(ctx context.Context, productID string, quantity int) (bool, error) {
	product, snapshot, err := uc.productSnapshot(ctx, productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	return planning.CanProduce(*product, snapshot, quantity), nil
}

// productSnapshot lee producto (con BOM) y snapshot de stock bajo la misma
// transacción.
func (uc *PlanUseCase) productSnapshot(ctx context.Context, productID string) (*entity.Product, map[string]int, error) {
	var product *entity.Product
	var snapshot map[string]int

	err := uc.snapshots.Read(ctx, func(
		productRepo repository.ProductRepository,
		materialRepo repository.RawMaterialRepository,
	) error {
		var err error
		if product, err = productRepo.GetByIDWithBOM(productID); err != nil {
			return err
		}
		snapshot, err = materialRepo.StockSnapshot()
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return product, snapshot, nil
}

func derefProducts(list []*entity.Product) []entity.Product {
	out := make([]entity.Product, 0, len(list))
	for _, p := range list {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func toPlanResponse(plan *planning.Plan) *dto.ProductionPlanResponse {
	items := make([]dto.ProductionItemResponse, 0, len(plan.Items))
	for _, item := range plan.Items {
		items = append(items, toItemResponse(item))
	}
	return &dto.ProductionPlanResponse{Items: items, TotalValue: plan.TotalValue}
}

func toItemResponse(item planning.PlanItem) dto.ProductionItemResponse {
	return dto.ProductionItemResponse{
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitValue:   item.UnitValue,
		TotalValue:  item.TotalValue,
	}
}
