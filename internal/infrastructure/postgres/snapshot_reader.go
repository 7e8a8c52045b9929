package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appplanning "github.com/jhoicas/Produccion-api/internal/application/planning"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ appplanning.SnapshotRunner = (*SnapshotReader)(nil)

// SnapshotReader toma snapshots consistentes de catálogo y stock para el
// planificador: ejecuta el callback con repos atados a una transacción
// read-only con aislamiento REPEATABLE READ, de modo que productos, líneas
// BOM y stock se lean bajo la misma vista aunque haya escrituras concurrentes.
type SnapshotReader struct {
	pool *pgxpool.Pool
}

// NewSnapshotReader construye el reader con el pool.
func NewSnapshotReader(pool *pgxpool.Pool) *SnapshotReader {
	return &SnapshotReader{pool: pool}
}

// Read inicia la transacción de lectura, ejecuta fn y hace Commit (o Rollback
// si fn falla). El snapshot queda congelado para la corrida; la corrida nunca
// escribe.
func (r *SnapshotReader) Read(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	materialRepo := NewRawMaterialRepository(tx)

	if err := fn(productRepo, materialRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot tx: %w", err)
	}
	return nil
}
