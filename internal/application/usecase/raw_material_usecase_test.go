package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory del repositorio
// ──────────────────────────────────────────────────────────────────────────────

type memMaterialRepo struct {
	items map[string]*entity.RawMaterial
}

func newMemMaterialRepo() *memMaterialRepo {
	return &memMaterialRepo{items: make(map[string]*entity.RawMaterial)}
}

func (r *memMaterialRepo) Create(m *entity.RawMaterial) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *memMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMaterialRepo) ListAll() ([]*entity.RawMaterial, error) {
	out := make([]*entity.RawMaterial, 0, len(r.items))
	for _, m := range r.items {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMaterialRepo) SearchByName(name string) ([]*entity.RawMaterial, error) {
	var out []*entity.RawMaterial
	for _, m := range r.items {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(name)) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMaterialRepo) FindLowStock(threshold int) ([]*entity.RawMaterial, error) {
	var out []*entity.RawMaterial
	for _, m := range r.items {
		if m.StockQuantity < threshold {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMaterialRepo) Update(m *entity.RawMaterial) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *memMaterialRepo) UpdateStock(id string, quantity int) error {
	if m, ok := r.items[id]; ok {
		m.StockQuantity = quantity
	}
	return nil
}

func (r *memMaterialRepo) Delete(id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *memMaterialRepo) StockSnapshot() (map[string]int, error) {
	out := make(map[string]int, len(r.items))
	for id, m := range r.items {
		out[id] = m.StockQuantity
	}
	return out, nil
}

func seedMaterial(t *testing.T, uc *usecase.RawMaterialUseCase, name string, stock int) string {
	t.Helper()
	out, err := uc.Create(dto.CreateRawMaterialRequest{Name: name, StockQuantity: stock})
	require.NoError(t, err)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestRawMaterialCreate_StockNegativoFalla(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())

	_, err := uc.Create(dto.CreateRawMaterialRequest{Name: "Acero", StockQuantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRawMaterialGetByID_NoExisteDevuelveNil(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())

	out, err := uc.GetByID("fantasma")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRawMaterialUpdate_NombreVacioFalla(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	id := seedMaterial(t, uc, "Acero", 10)

	vacio := ""
	_, err := uc.Update(id, dto.UpdateRawMaterialRequest{Name: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRawMaterialDelete(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	id := seedMaterial(t, uc, "Acero", 10)

	deleted, err := uc.Delete(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(id)
	require.NoError(t, err)
	assert.False(t, deleted, "segundo delete debe reportar inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStock_FijaValorAbsoluto(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	id := seedMaterial(t, uc, "Madera", 5)

	out, err := uc.SetStock(id, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, out.StockQuantity)
}

func TestSetStock_NegativoFalla(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	id := seedMaterial(t, uc, "Madera", 5)

	_, err := uc.SetStock(id, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIncreaseStock_Suma(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	id := seedMaterial(t, uc, "Madera", 5)

	out, err := uc.IncreaseStock(id, 7)
	require.NoError(t, err)
	assert.Equal(t, 12, out.StockQuantity)
}

func TestDecreaseStock_Resta(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	id := seedMaterial(t, uc, "Madera", 5)

	out, err := uc.DecreaseStock(id, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, out.StockQuantity, "bajar hasta cero es válido")
}

func TestDecreaseStock_NoPuedeQuedarNegativo(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	id := seedMaterial(t, uc, "Madera", 5)

	_, err := uc.DecreaseStock(id, 6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	out, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 5, out.StockQuantity, "el stock no debe cambiar tras el rechazo")
}

func TestAdjustStock_MaterialInexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())

	out, err := uc.IncreaseStock("fantasma", 1)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda y stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestSearchByName_Substring(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	seedMaterial(t, uc, "Acero inoxidable", 10)
	seedMaterial(t, uc, "Madera de pino", 10)

	out, err := uc.SearchByName("acero")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Acero inoxidable", out[0].Name)
}

func TestFindLowStock(t *testing.T) {
	uc := usecase.NewRawMaterialUseCase(newMemMaterialRepo())
	seedMaterial(t, uc, "Acero", 3)
	seedMaterial(t, uc, "Madera", 50)

	out, err := uc.FindLowStock(10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Acero", out[0].Name)
}
