package repository

import (
	"context"

	"github.com/jhoicas/area-freight/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura del árbol de categorías (DIP).
// El ciclo de vida (alta, baja, edición) pertenece a otro servicio.
type CategoryRepository interface {
	// ListByCompany devuelve todas las categorías de la empresa, habilitadas o no.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Category, error)
}
