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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto (sin líneas BOM; se asocian aparte).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Value, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, sin líneas BOM.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT id, name, value, created_at, updated_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Value, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByIDWithBOM obtiene un producto con sus líneas BOM en orden estable.
func (r *ProductRepo) GetByIDWithBOM(id string) (*entity.Product, error) {
	product, err := r.GetByID(id)
	if err != nil || product == nil {
		return product, err
	}
	bom, err := r.bomForProduct(id)
	if err != nil {
		return nil, err
	}
	product.BOM = bom
	return product, nil
}

// ListAll lista todos los productos sin BOM, en orden estable.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `SELECT id, name, value, created_at, updated_at FROM products ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Value, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListAllWithBOM lista todos los productos con sus líneas BOM resueltas, en
// orden de catálogo estable (created_at, id): ese orden define el desempate
// del planificador para productos de igual valor.
func (r *ProductRepo) ListAllWithBOM() ([]*entity.Product, error) {
	products, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}

	query := `
		SELECT prm.product_id, prm.raw_material_id, rm.name, prm.quantity_required
		FROM product_raw_materials prm
		JOIN raw_materials rm ON rm.id = prm.raw_material_id
		ORDER BY prm.product_id, prm.created_at, prm.raw_material_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bom lines: %w", err)
	}
	defer rows.Close()

	byProduct := make(map[string][]entity.BOMLine, len(products))
	for rows.Next() {
		var productID string
		var line entity.BOMLine
		if err := rows.Scan(&productID, &line.RawMaterialID, &line.RawMaterialName, &line.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan bom line: %w", err)
		}
		byProduct[productID] = append(byProduct[productID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range products {
		p.BOM = byProduct[p.ID]
	}
	return products, nil
}

// Update actualiza nombre y valor de un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `UPDATE products SET name = $2, value = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Value, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID (las líneas BOM caen por ON DELETE CASCADE).
func (r *ProductRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ProductRepo) bomForProduct(productID string) ([]entity.BOMLine, error) {
	query := `
		SELECT prm.raw_material_id, rm.name, prm.quantity_required
		FROM product_raw_materials prm
		JOIN raw_materials rm ON rm.id = prm.raw_material_id
		WHERE prm.product_id = $1
		ORDER BY prm.created_at, prm.raw_material_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("get product bom: %w", err)
	}
	defer rows.Close()
	var bom []entity.BOMLine
	for rows.Next() {
		var line entity.BOMLine
		if err := rows.Scan(&line.RawMaterialID, &line.RawMaterialName, &line.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan bom line: %w", err)
		}
		bom = append(bom, line)
	}
	return bom, rows.Err()
}
