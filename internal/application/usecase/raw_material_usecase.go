package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// RawMaterialUseCase casos de uso CRUD y ajustes de stock para materias primas.
// Los ajustes operan sobre el stock persistido; el planificador nunca pasa
// por aquí, trabaja sobre snapshots.
type RawMaterialUseCase struct {
	repo repository.RawMaterialRepository
}

// NewRawMaterialUseCase construye el caso de uso.
func NewRawMaterialUseCase(repo repository.RawMaterialRepository) *RawMaterialUseCase {
	return &RawMaterialUseCase{repo: repo}
}

// Create crea una materia prima. El stock inicial no puede ser negativo.
func (uc *RawMaterialUseCase) Create(in dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if in.Name == "" || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	material := &entity.RawMaterial{
		ID:            uuid.New().String(),
		Name:          in.Name,
		StockQuantity: in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toRawMaterialResponse(material), nil
}

// GetByID obtiene una materia prima por ID.
func (uc *RawMaterialUseCase) GetByID(id string) (*dto.RawMaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	return toRawMaterialResponse(material), nil
}

// List lista todas las materias primas.
func (uc *RawMaterialUseCase) List() ([]dto.RawMaterialResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponses(list), nil
}

// SearchByName busca materias primas por nombre (substring, case-insensitive).
func (uc *RawMaterialUseCase) SearchByName(name string) ([]dto.RawMaterialResponse, error) {
	list, err := uc.repo.SearchByName(name)
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponses(list), nil
}

// FindLowStock lista materias primas con stock por debajo del umbral.
func (uc *RawMaterialUseCase) FindLowStock(threshold int) ([]dto.RawMaterialResponse, error) {
	list, err := uc.repo.FindLowStock(threshold)
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponses(list), nil
}

// Update actualiza nombre y/o stock de una materia prima.
func (uc *RawMaterialUseCase) Update(id string, in dto.UpdateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		material.Name = *in.Name
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		material.StockQuantity = *in.StockQuantity
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toRawMaterialResponse(material), nil
}

// SetStock fija el stock en un valor absoluto (>= 0).
func (uc *RawMaterialUseCase) SetStock(id string, quantity int) (*dto.RawMaterialResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStock(id, quantity); err != nil {
		return nil, err
	}
	material.StockQuantity = quantity
	material.UpdatedAt = time.Now()
	return toRawMaterialResponse(material), nil
}

// IncreaseStock suma quantity (>= 0) al stock actual.
func (uc *RawMaterialUseCase) IncreaseStock(id string, quantity int) (*dto.RawMaterialResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	newQty := material.StockQuantity + quantity
	if err := uc.repo.UpdateStock(id, newQty); err != nil {
		return nil, err
	}
	material.StockQuantity = newQty
	return toRawMaterialResponse(material), nil
}

// DecreaseStock resta quantity del stock actual. Falla con
// domain.ErrInsufficientStock si dejaría el stock negativo.
func (uc *RawMaterialUseCase) DecreaseStock(id string, quantity int) (*dto.RawMaterialResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	if material.StockQuantity < quantity {
		return nil, domain.ErrInsufficientStock
	}
	newQty := material.StockQuantity - quantity
	if err := uc.repo.UpdateStock(id, newQty); err != nil {
		return nil, err
	}
	material.StockQuantity = newQty
	return toRawMaterialResponse(material), nil
}

// Delete elimina una materia prima. Devuelve false si no existía.
func (uc *RawMaterialUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toRawMaterialResponse(m *entity.RawMaterial) *dto.RawMaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.RawMaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		StockQuantity: m.StockQuantity,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRawMaterialResponses(list []*entity.RawMaterial) []dto.RawMaterialResponse {
	items := make([]dto.RawMaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toRawMaterialResponse(m))
	}
	return items
}
