package planning

import (
	"context"
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/planning"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// SnapshotRunner ejecuta fn con repositorios atados a UNA transacción de
// lectura. Garantiza que catálogo y stock se lean bajo una vista consistente:
// el planificador asume su snapshot congelado durante toda la corrida y no
// tiene mecanismo para reaccionar a stock cambiando a mitad de cálculo.
type SnapshotRunner interface {
	Read(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		materialRepo repository.RawMaterialRepository,
	) error) error
}

// PlanPDFGenerator puerto para la representación PDF del plan de producción.
type PlanPDFGenerator interface {
	GeneratePlanPDF(ctx context.Context, plan *planning.Plan, generatedAt time.Time) ([]byte, error)
}
