package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación de BOMRepository sobre PostgreSQL (usable con pool o tx).
// Cada fila de product_raw_materials es una línea del bill-of-materials.
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// ListByProduct devuelve las líneas BOM de un producto en orden estable.
func (r *BOMRepo) ListByProduct(productID string) ([]entity.BOMLine, error) {
	query := `
		SELECT prm.raw_material_id, rm.name, prm.quantity_required
		FROM product_raw_materials prm
		JOIN raw_materials rm ON rm.id = prm.raw_material_id
		WHERE prm.product_id = $1
		ORDER BY prm.created_at, prm.raw_material_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list bom by product: %w", err)
	}
	defer rows.Close()
	var lines []entity.BOMLine
	for rows.Next() {
		var line entity.BOMLine
		if err := rows.Scan(&line.RawMaterialID, &line.RawMaterialName, &line.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan bom line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Exists verifica si la asociación producto ↔ material ya existe.
func (r *BOMRepo) Exists(productID, rawMaterialID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM product_raw_materials WHERE product_id = $1 AND raw_material_id = $2)`,
		productID, rawMaterialID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("bom exists: %w", err)
	}
	return exists, nil
}

// Add crea la asociación con su cantidad requerida.
func (r *BOMRepo) Add(productID, rawMaterialID string, quantityPerUnit int) error {
	query := `
		INSERT INTO product_raw_materials (product_id, raw_material_id, quantity_required, created_at)
		VALUES ($1, $2, $3, now())`
	_, err := r.q.Exec(context.Background(), query, productID, rawMaterialID, quantityPerUnit)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bom line: %w", err)
	}
	return nil
}

// UpdateQuantity cambia la cantidad requerida. Devuelve false si la
// asociación no existe.
func (r *BOMRepo) UpdateQuantity(productID, rawMaterialID string, quantityPerUnit int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE product_raw_materials SET quantity_required = $3 WHERE product_id = $1 AND raw_material_id = $2`,
		productID, rawMaterialID, quantityPerUnit,
	)
	if err != nil {
		return false, fmt.Errorf("update bom line: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Remove elimina la asociación. Devuelve false si no existía.
func (r *BOMRepo) Remove(productID, rawMaterialID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM product_raw_materials WHERE product_id = $1 AND raw_material_id = $2`,
		productID, rawMaterialID,
	)
	if err != nil {
		return false, fmt.Errorf("delete bom line: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
