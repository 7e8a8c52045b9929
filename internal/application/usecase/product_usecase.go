package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y gestión de sus líneas BOM.
// La positividad de las cantidades BOM se valida aquí, al construir el
// catálogo; el planificador asume líneas ya válidas.
type ProductUseCase struct {
	repo         repository.ProductRepository
	materialRepo repository.RawMaterialRepository
	bomRepo      repository.BOMRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
	bomRepo repository.BOMRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, materialRepo: materialRepo, bomRepo: bomRepo}
}

// Create crea un producto. El valor unitario debe ser positivo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Value.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Value:     in.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, nil), nil
}

// GetByID obtiene un producto con sus líneas BOM resueltas.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDWithBOM(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	bom, err := uc.resolveBOM(product.BOM)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, bom), nil
}

// List lista todos los productos (sin BOM, como el listado liviano del API).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, nil))
	}
	return items, nil
}

// Update actualiza nombre y/o valor de un producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Value != nil {
		if in.Value.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Value = *in.Value
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, nil), nil
}

// Delete elimina un producto (las líneas BOM caen por cascada en la DB).
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

// ── Gestión de líneas BOM ─────────────────────────────────────────────────────

// GetBOM devuelve las líneas BOM del producto con nombre y stock del material.
func (uc *ProductUseCase) GetBOM(productID string) ([]dto.BOMLineResponse, error) {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.bomRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.resolveBOM(lines)
}

// AddBOMLine asocia una materia prima al producto. La cantidad requerida debe
// ser estrictamente positiva y la asociación no puede duplicarse.
func (uc *ProductUseCase) AddBOMLine(productID string, in dto.AddBOMLineRequest) (*dto.ProductResponse, error) {
	if in.QuantityRequired <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	material, err := uc.materialRepo.GetByID(in.RawMaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	exists, err := uc.bomRepo.Exists(productID, in.RawMaterialID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	if err := uc.bomRepo.Add(productID, in.RawMaterialID, in.QuantityRequired); err != nil {
		return nil, err
	}
	return uc.GetByID(productID)
}

// UpdateBOMLine cambia la cantidad requerida de una asociación existente.
func (uc *ProductUseCase) UpdateBOMLine(productID, rawMaterialID string, quantity int) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	updated, err := uc.bomRepo.UpdateQuantity(productID, rawMaterialID, quantity)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrNotFound
	}
	return uc.GetByID(productID)
}

// RemoveBOMLine elimina la asociación producto ↔ materia prima.
func (uc *ProductUseCase) RemoveBOMLine(productID, rawMaterialID string) error {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	removed, err := uc.bomRepo.Remove(productID, rawMaterialID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// resolveBOM completa cada línea con el stock actual del material.
func (uc *ProductUseCase) resolveBOM(lines []entity.BOMLine) ([]dto.BOMLineResponse, error) {
	out := make([]dto.BOMLineResponse, 0, len(lines))
	for _, l := range lines {
		stock := 0
		material, err := uc.materialRepo.GetByID(l.RawMaterialID)
		if err != nil {
			return nil, err
		}
		name := l.RawMaterialName
		if material != nil {
			stock = material.StockQuantity
			name = material.Name
		}
		out = append(out, dto.BOMLineResponse{
			RawMaterialID:    l.RawMaterialID,
			RawMaterialName:  name,
			QuantityRequired: l.QuantityPerUnit,
			StockQuantity:    stock,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product, bom []dto.BOMLineResponse) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Value:     p.Value,
		BOM:       bom,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
