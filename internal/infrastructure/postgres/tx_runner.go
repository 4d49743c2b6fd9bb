package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/area-freight/internal/application/freight"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

// Ensure TxRunner implements freight.TxRunner.
var _ freight.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db Beginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db Beginner) *TxRunner {
	return &TxRunner{db: db}
}

// RunFreight inicia una transacción, ejecuta fn con los repos del recálculo atados a la tx
// y hace Commit o Rollback. Los repos comparten la conexión y serializan sus sentencias,
// por lo que fn puede usarlos desde varias goroutines.
func (r *TxRunner) RunFreight(ctx context.Context, fn func(
	viewRepo repository.AreaFreightViewRepository,
	freightRepo repository.AreaFreightRepository,
	versionRepo repository.AreaVersionRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := newLockedQuerier(tx)
	viewRepo := NewAreaFreightViewRepository(q)
	freightRepo := NewAreaFreightRepository(q)
	versionRepo := NewAreaVersionRepository(q)

	if err := fn(viewRepo, freightRepo, versionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
