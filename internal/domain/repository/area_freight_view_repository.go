package repository

import (
	"context"

	"github.com/jhoicas/area-freight/internal/domain/entity"
)

// AreaFreightViewRepository define el puerto de persistencia de las filas pendientes de flete.
type AreaFreightViewRepository interface {
	// ListPendingByCompany devuelve las filas de la empresa sin versión asignada.
	ListPendingByCompany(ctx context.Context, companyID string) ([]*entity.AreaFreightView, error)
	// StampVersion asigna la versión a las filas indicadas y devuelve cuántas se actualizaron.
	// Solo toca filas aún pendientes.
	StampVersion(ctx context.Context, ids []int64, version string) (int64, error)
}
