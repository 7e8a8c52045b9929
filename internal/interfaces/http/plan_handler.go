package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	appplanning "github.com/jhoicas/Produccion-api/internal/application/planning"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// PlanHandler expone la planificación de producción (protegido).
type PlanHandler struct {
	planUC *appplanning.PlanUseCase
	pdfUC  *appplanning.PlanPDFUseCase
}

// NewPlanHandler construye el handler de planificación.
func NewPlanHandler(planUC *appplanning.PlanUseCase, pdfUC *appplanning.PlanPDFUseCase) *PlanHandler {
	return &PlanHandler{planUC: planUC, pdfUC: pdfUC}
}

// FullPlan godoc
// @Summary      Plan de producción completo
// @Description  Asigna el stock actual de materias primas a los productos por prioridad de valor unitario (mayor primero) y devuelve cantidades producibles y valor total.
// @Tags         production-plan
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductionPlanResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/production-plan [get]
func (h *PlanHandler) FullPlan(c *fiber.Ctx) error {
	out, err := h.planUC.FullPlan(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ForProduct godoc
// @Summary      Producción máxima de un producto
// @Description  Calcula cuántas unidades del producto caben en el stock actual, sin considerar el resto del catálogo.
// @Tags         production-plan
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductionItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-plan/product/{id} [get]
func (h *PlanHandler) ForProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.planUC.ForProduct(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CanProduce godoc
// @Summary      Factibilidad de una cantidad
// @Description  Responde si el stock actual alcanza para fabricar la cantidad solicitada. No reserva ni modifica stock.
// @Tags         production-plan
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true  "ID del producto"
// @Param        quantity  query  int     true  "Cantidad solicitada"
// @Success      200  {object}  dto.CanProduceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production-plan/product/{id}/can-produce [get]
func (h *PlanHandler) CanProduce(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.Query("quantity") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es requerido"})
	}
	quantity := c.QueryInt("quantity", 0)
	ok, err := h.planUC.CanProduce(c.UserContext(), id, quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CanProduceResponse{
		ProductID:  id,
		Quantity:   quantity,
		CanProduce: ok,
	})
}

// PDF godoc
// @Summary      Plan de producción en PDF
// @Tags         production-plan
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/production-plan/pdf [get]
func (h *PlanHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdfUC.GeneratePDF(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "plan-produccion-" + time.Now().Format("20060102-150405") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
