package freight

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

// PublishedVersion última versión publicada y cuántos fletes contiene.
type PublishedVersion struct {
	Version *entity.AreaVersion
	Records int64
}

// SnapshotPage página de fletes de una versión.
type SnapshotPage struct {
	Records []*entity.AreaFreight
	Total   int64
}

// QueryUseCase lecturas de las versiones ya publicadas.
type QueryUseCase struct {
	versionRepo repository.AreaVersionRepository
	freightRepo repository.AreaFreightRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(versionRepo repository.AreaVersionRepository, freightRepo repository.AreaFreightRepository) *QueryUseCase {
	return &QueryUseCase{versionRepo: versionRepo, freightRepo: freightRepo}
}

// Latest devuelve la última versión de fletes de la empresa. Sin versiones → domain.ErrNotFound.
func (uc *QueryUseCase) Latest(ctx context.Context, companyID string) (*PublishedVersion, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, domain.ErrInvalidInput
	}
	v, err := uc.versionRepo.GetLatest(ctx, companyID, entity.AreaVersionTypeFreight)
	if err != nil {
		return nil, fmt.Errorf("get latest version: %w", err)
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	n, err := uc.freightRepo.CountByVersion(ctx, companyID, v.Version)
	if err != nil {
		return nil, fmt.Errorf("count freights: %w", err)
	}
	return &PublishedVersion{Version: v, Records: n}, nil
}

// Snapshot devuelve una página de los fletes publicados en version. Versión sin fletes → domain.ErrNotFound.
func (uc *QueryUseCase) Snapshot(ctx context.Context, companyID, version string, limit, offset int) (*SnapshotPage, error) {
	if strings.TrimSpace(companyID) == "" || strings.TrimSpace(version) == "" || limit < 0 || offset < 0 {
		return nil, domain.ErrInvalidInput
	}
	total, err := uc.freightRepo.CountByVersion(ctx, companyID, version)
	if err != nil {
		return nil, fmt.Errorf("count freights: %w", err)
	}
	if total == 0 {
		return nil, domain.ErrNotFound
	}
	page := &SnapshotPage{Total: total}
	if int64(offset) >= total {
		return page, nil
	}
	page.Records, err = uc.freightRepo.ListByVersion(ctx, companyID, version, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list freights by version: %w", err)
	}
	return page, nil
}
