package planning

import (
	"context"
	"time"
)

// PlanPDFUseCase genera la representación PDF del plan de producción completo.
type PlanPDFUseCase struct {
	planUC    *PlanUseCase
	generator PlanPDFGenerator
}

// NewPlanPDFUseCase construye el caso de uso.
func NewPlanPDFUseCase(planUC *PlanUseCase, generator PlanPDFGenerator) *PlanPDFUseCase {
	return &PlanPDFUseCase{planUC: planUC, generator: generator}
}

// GeneratePDF calcula el plan sobre un snapshot fresco y lo renderiza.
func (uc *PlanPDFUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	plan, err := uc.planUC.ComputePlan(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GeneratePlanPDF(ctx, plan, time.Now())
}
