package freight

import (
	"context"
	"fmt"

	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

// SnapshotStamper reserva las filas pendientes de una empresa asignándoles la versión nueva.
type SnapshotStamper struct{}

// Stamp lee las filas sin versión, las marca con version y devuelve las filas marcadas.
// Sin filas pendientes devuelve ErrFreightUpdateTargetNotFound. Si la BD no actualiza
// exactamente las filas leídas devuelve ErrPersistenceFailure.
func (SnapshotStamper) Stamp(ctx context.Context, repo repository.AreaFreightViewRepository, companyID, version string) ([]*entity.AreaFreightView, error) {
	rows, err := repo.ListPendingByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list pending freight views: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrFreightUpdateTargetNotFound
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
		r.AreaFreightVersion = version
	}
	n, err := repo.StampVersion(ctx, ids, version)
	if err != nil {
		return nil, fmt.Errorf("%w: stamp version: %w", domain.ErrPersistenceFailure, err)
	}
	if n != int64(len(ids)) {
		return nil, fmt.Errorf("%w: stamp version: %d de %d filas actualizadas", domain.ErrPersistenceFailure, n, len(ids))
	}
	return rows, nil
}
