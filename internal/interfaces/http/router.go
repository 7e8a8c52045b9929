package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/auth"
	appplanning "github.com/jhoicas/Produccion-api/internal/application/planning"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RawMaterialUC *usecase.RawMaterialUseCase
	ProductUC     *usecase.ProductUseCase
	PlanUC        *appplanning.PlanUseCase
	PlanPDFUC     *appplanning.PlanPDFUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Raw materials (protegido). Las rutas fijas van antes de /:id.
	materials := protected.Group("/raw-materials")
	materialHandler := NewRawMaterialHandler(deps.RawMaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/search", materialHandler.Search)
	materials.Get("/low-stock", materialHandler.LowStock)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)
	materials.Patch("/:id/stock", materialHandler.SetStock)
	materials.Post("/:id/stock/increase", materialHandler.IncreaseStock)
	materials.Post("/:id/stock/decrease", materialHandler.DecreaseStock)

	// Products y sus líneas BOM (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/raw-materials", productHandler.GetBOM)
	products.Post("/:id/raw-materials", productHandler.AddBOMLine)
	products.Put("/:id/raw-materials/:materialId", productHandler.UpdateBOMLine)
	products.Delete("/:id/raw-materials/:materialId", productHandler.RemoveBOMLine)

	// Production plan (protegido)
	plan := protected.Group("/production-plan")
	planHandler := NewPlanHandler(deps.PlanUC, deps.PlanPDFUC)
	plan.Get("/", planHandler.FullPlan)
	plan.Get("/pdf", planHandler.PDF)
	plan.Get("/product/:id", planHandler.ForProduct)
	plan.Get("/product/:id/can-produce", planHandler.CanProduce)
}
