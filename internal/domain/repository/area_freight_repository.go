package repository

import (
	"context"

	"github.com/jhoicas/area-freight/internal/domain/entity"
)

// AreaFreightRepository define el puerto de persistencia de los fletes publicados.
type AreaFreightRepository interface {
	// BulkInsert persiste un lote completo en una sola escritura. Asigna ID a cada registro.
	BulkInsert(ctx context.Context, freights []*entity.AreaFreight) (int64, error)
	// ListByVersion devuelve una página del snapshot publicado de una versión.
	// limit <= 0 devuelve todos los registros desde offset.
	ListByVersion(ctx context.Context, companyID, version string, limit, offset int) ([]*entity.AreaFreight, error)
	// CountByVersion cuenta los registros de una versión.
	CountByVersion(ctx context.Context, companyID, version string) (int64, error)
}
