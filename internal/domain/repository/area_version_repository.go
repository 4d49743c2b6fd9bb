package repository

import (
	"context"

	"github.com/jhoicas/area-freight/internal/domain/entity"
)

// AreaVersionRepository define el puerto del registro de versiones de área.
type AreaVersionRepository interface {
	Create(ctx context.Context, version *entity.AreaVersion) error
	GetLatest(ctx context.Context, companyID, versionType string) (*entity.AreaVersion, error)
}
