package repository

import (
	"context"

	"github.com/jhoicas/area-freight/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura de empresas (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}
