package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

var _ repository.AreaVersionRepository = (*AreaVersionRepo)(nil)

// AreaVersionRepo registro de versiones publicadas (area_version).
type AreaVersionRepo struct {
	q Querier
}

// NewAreaVersionRepository construye el adaptador.
func NewAreaVersionRepository(q Querier) *AreaVersionRepo {
	return &AreaVersionRepo{q: q}
}

// Create inserta la versión. Una versión repetida para la empresa y tipo devuelve domain.ErrDuplicate.
func (r *AreaVersionRepo) Create(ctx context.Context, v *entity.AreaVersion) error {
	query := `
		INSERT INTO area_version (id, company_id, version, type, remark, created_user_id, created_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.CompanyID, v.Version, v.Type, v.Remark, v.CreatedUserID, v.CreatedName, v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert area version %s: %w", v.Version, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert area version: %w", err)
	}
	return nil
}

// GetLatest última versión publicada del tipo; nil si no hay ninguna.
func (r *AreaVersionRepo) GetLatest(ctx context.Context, companyID, versionType string) (*entity.AreaVersion, error) {
	query := `
		SELECT id, company_id, version, type, COALESCE(remark, ''), created_user_id, created_name, created_at
		FROM area_version
		WHERE company_id = $1 AND type = $2
		ORDER BY created_at DESC
		LIMIT 1`
	var v entity.AreaVersion
	err := r.q.QueryRow(ctx, query, companyID, versionType).Scan(
		&v.ID, &v.CompanyID, &v.Version, &v.Type, &v.Remark, &v.CreatedUserID, &v.CreatedName, &v.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest area version: %w", err)
	}
	return &v, nil
}
