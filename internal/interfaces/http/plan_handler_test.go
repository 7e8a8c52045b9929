package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appplanning "github.com/jhoicas/Produccion-api/internal/application/planning"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Produccion-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: snapshot en memoria de catálogo y stock
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products []*entity.Product
}

func (s *stubProductRepo) Create(*entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return s.GetByIDWithBOM(id)
}
func (s *stubProductRepo) GetByIDWithBOM(id string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (s *stubProductRepo) ListAll() ([]*entity.Product, error)        { return s.products, nil }
func (s *stubProductRepo) ListAllWithBOM() ([]*entity.Product, error) { return s.products, nil }
func (s *stubProductRepo) Update(*entity.Product) error               { return nil }
func (s *stubProductRepo) Delete(string) (bool, error)                { return false, nil }

type stubMaterialRepo struct {
	snapshot map[string]int
}

func (s *stubMaterialRepo) Create(*entity.RawMaterial) error                   { return nil }
func (s *stubMaterialRepo) GetByID(string) (*entity.RawMaterial, error)        { return nil, nil }
func (s *stubMaterialRepo) ListAll() ([]*entity.RawMaterial, error)            { return nil, nil }
func (s *stubMaterialRepo) SearchByName(string) ([]*entity.RawMaterial, error) { return nil, nil }
func (s *stubMaterialRepo) FindLowStock(int) ([]*entity.RawMaterial, error)    { return nil, nil }
func (s *stubMaterialRepo) Update(*entity.RawMaterial) error                   { return nil }
func (s *stubMaterialRepo) UpdateStock(string, int) error                      { return nil }
func (s *stubMaterialRepo) Delete(string) (bool, error)                        { return false, nil }
func (s *stubMaterialRepo) StockSnapshot() (map[string]int, error) {
	out := make(map[string]int, len(s.snapshot))
	for k, v := range s.snapshot {
		out[k] = v
	}
	return out, nil
}

type stubSnapshotRunner struct {
	products *stubProductRepo
	material *stubMaterialRepo
}

func (s *stubSnapshotRunner) Read(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
) error) error {
	return fn(s.products, s.material)
}

// buildPlanApp arma una app Fiber con las rutas de planificación sin auth.
func buildPlanApp(products []*entity.Product, snapshot map[string]int) *fiber.App {
	runner := &stubSnapshotRunner{
		products: &stubProductRepo{products: products},
		material: &stubMaterialRepo{snapshot: snapshot},
	}
	planUC := appplanning.NewPlanUseCase(runner)
	pdfUC := appplanning.NewPlanPDFUseCase(planUC, infrapdf.NewMarotoPlanGenerator())
	handler := apphttp.NewPlanHandler(planUC, pdfUC)

	app := fiber.New()
	app.Get("/api/production-plan", handler.FullPlan)
	app.Get("/api/production-plan/pdf", handler.PDF)
	app.Get("/api/production-plan/product/:id", handler.ForProduct)
	app.Get("/api/production-plan/product/:id/can-produce", handler.CanProduce)
	return app
}

func planProduct(id, name, value string, bom ...entity.BOMLine) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  name,
		Value: decimal.RequireFromString(value),
		BOM:   bom,
	}
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/production-plan
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanHandler_FullPlan(t *testing.T) {
	app := buildPlanApp(
		[]*entity.Product{
			planProduct("silla", "Silla", "50", entity.BOMLine{RawMaterialID: "madera", QuantityPerUnit: 2}),
			planProduct("mesa", "Mesa", "200", entity.BOMLine{RawMaterialID: "madera", QuantityPerUnit: 5}),
		},
		map[string]int{"madera": 12},
	)

	resp := get(t, app, "/api/production-plan")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []struct {
			ProductID string `json:"product_id"`
			Quantity  int    `json:"quantity"`
		} `json:"items"`
		TotalValue string `json:"total_value"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "mesa", body.Items[0].ProductID, "mayor valor primero")
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, "silla", body.Items[1].ProductID)
	assert.Equal(t, 1, body.Items[1].Quantity)
	assert.Equal(t, "450", body.TotalValue)
}

func TestPlanHandler_FullPlan_CatalogoVacio(t *testing.T) {
	app := buildPlanApp(nil, map[string]int{})

	resp := get(t, app, "/api/production-plan")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"items":[]`)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/production-plan/product/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanHandler_ForProduct(t *testing.T) {
	app := buildPlanApp(
		[]*entity.Product{
			planProduct("silla", "Silla", "50", entity.BOMLine{RawMaterialID: "madera", QuantityPerUnit: 2}),
		},
		map[string]int{"madera": 12},
	)

	resp := get(t, app, "/api/production-plan/product/silla")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Quantity int `json:"quantity"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 6, body.Quantity)
}

func TestPlanHandler_ForProduct_NoExiste404(t *testing.T) {
	app := buildPlanApp(nil, map[string]int{})

	resp := get(t, app, "/api/production-plan/product/fantasma")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/production-plan/product/:id/can-produce
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanHandler_CanProduce(t *testing.T) {
	app := buildPlanApp(
		[]*entity.Product{
			planProduct("silla", "Silla", "50", entity.BOMLine{RawMaterialID: "madera", QuantityPerUnit: 2}),
		},
		map[string]int{"madera": 10},
	)

	resp := get(t, app, "/api/production-plan/product/silla/can-produce?quantity=5")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		CanProduce bool `json:"can_produce"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.CanProduce)

	resp2 := get(t, app, "/api/production-plan/product/silla/can-produce?quantity=6")
	defer resp2.Body.Close()
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	assert.False(t, body.CanProduce, "6 sillas requieren 12 de madera y hay 10")
}

func TestPlanHandler_CanProduce_SinQuantity400(t *testing.T) {
	app := buildPlanApp(nil, map[string]int{})

	resp := get(t, app, "/api/production-plan/product/silla/can-produce")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlanHandler_CanProduce_ProductoInexistenteEsFalse(t *testing.T) {
	app := buildPlanApp(nil, map[string]int{})

	resp := get(t, app, "/api/production-plan/product/fantasma/can-produce?quantity=1")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		CanProduce bool `json:"can_produce"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.CanProduce)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/production-plan/pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanHandler_PDF(t *testing.T) {
	app := buildPlanApp(
		[]*entity.Product{
			planProduct("silla", "Silla", "50", entity.BOMLine{RawMaterialID: "madera", RawMaterialName: "Madera", QuantityPerUnit: 2}),
		},
		map[string]int{"madera": 4},
	)

	resp := get(t, app, "/api/production-plan/pdf")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, body)
	assert.Equal(t, "%PDF", string(body[:4]), "el cuerpo debe ser un PDF válido")
}
