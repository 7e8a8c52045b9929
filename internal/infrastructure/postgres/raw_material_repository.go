package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo implementación de RawMaterialRepository sobre PostgreSQL (usable con pool o tx).
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

const rawMaterialColumns = `id, name, stock_quantity, created_at, updated_at`

// Create persiste una materia prima.
func (r *RawMaterialRepo) Create(material *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (id, name, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.StockQuantity, material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por ID.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1`
	var m entity.RawMaterial
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.StockQuantity, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}

// ListAll lista todas las materias primas en orden estable.
func (r *RawMaterialRepo) ListAll() ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials ORDER BY created_at, id`
	return r.queryList(query)
}

// SearchByName busca por substring de nombre, case-insensitive.
func (r *RawMaterialRepo) SearchByName(name string) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials
		WHERE name ILIKE '%' || $1 || '%' ORDER BY name`
	return r.queryList(query, name)
}

// FindLowStock lista materias primas con stock por debajo del umbral.
func (r *RawMaterialRepo) FindLowStock(threshold int) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials
		WHERE stock_quantity < $1 ORDER BY stock_quantity, name`
	return r.queryList(query, threshold)
}

// Update actualiza nombre y stock.
func (r *RawMaterialRepo) Update(material *entity.RawMaterial) error {
	query := `
		UPDATE raw_materials SET name = $2, stock_quantity = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.StockQuantity, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update raw material: %w", err)
	}
	return nil
}

// UpdateStock fija el stock en un valor absoluto. El CHECK de la tabla
// (stock_quantity >= 0) respalda el invariante también a nivel de DB.
func (r *RawMaterialRepo) UpdateStock(id string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE raw_materials SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update raw material stock: %w", err)
	}
	return nil
}

// Delete elimina una materia prima por ID. Devuelve false si no existía.
func (r *RawMaterialRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM raw_materials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete raw material: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// StockSnapshot devuelve materialID → stock actual de todas las materias
// primas. Ejecutado dentro de la transacción del SnapshotReader da la vista
// consistente que el planificador necesita.
func (r *RawMaterialRepo) StockSnapshot() (map[string]int, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, stock_quantity FROM raw_materials`)
	if err != nil {
		return nil, fmt.Errorf("stock snapshot: %w", err)
	}
	defer rows.Close()
	snapshot := make(map[string]int)
	for rows.Next() {
		var id string
		var qty int
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("scan stock snapshot: %w", err)
		}
		snapshot[id] = qty
	}
	return snapshot, rows.Err()
}

func (r *RawMaterialRepo) queryList(query string, args ...any) ([]*entity.RawMaterial, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.StockQuantity, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
