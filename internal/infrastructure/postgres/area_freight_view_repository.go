package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

var _ repository.AreaFreightViewRepository = (*AreaFreightViewRepo)(nil)

const areaFreightViewColumns = `
	id, company_id, shop_id, shop_name, category_id, COALESCE(area_freight_version, ''),
	area_id, area_name, province_code, province_name, city_code, city_name, county_code, county_name,
	truck_tax_exclusive_freight, truck_freight, train_open_freight, train_container_freight,
	created_at, updated_at`

// AreaFreightViewRepo filas pendientes de flete (area_freight_view).
type AreaFreightViewRepo struct {
	q Querier
}

// NewAreaFreightViewRepository construye el adaptador.
func NewAreaFreightViewRepository(q Querier) *AreaFreightViewRepo {
	return &AreaFreightViewRepo{q: q}
}

// ListPendingByCompany filas de la empresa con area_freight_version NULL, por id.
func (r *AreaFreightViewRepo) ListPendingByCompany(ctx context.Context, companyID string) ([]*entity.AreaFreightView, error) {
	query := `SELECT ` + areaFreightViewColumns + `
		FROM area_freight_view
		WHERE company_id = $1 AND area_freight_version IS NULL
		ORDER BY id`
	return r.list(ctx, "list pending freight views", query, companyID)
}

// StampVersion asigna la versión solo a filas aún pendientes; una fila ya estampada
// por otra invocación no se cuenta.
func (r *AreaFreightViewRepo) StampVersion(ctx context.Context, ids []int64, version string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `
		UPDATE area_freight_view
		SET area_freight_version = $1, updated_at = now()
		WHERE id = ANY($2) AND area_freight_version IS NULL`
	cmd, err := r.q.Exec(ctx, query, version, ids)
	if err != nil {
		return 0, fmt.Errorf("stamp freight views: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *AreaFreightViewRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.AreaFreightView, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.AreaFreightView
	for rows.Next() {
		v, err := scanAreaFreightView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan freight view: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanAreaFreightView(s scanner) (*entity.AreaFreightView, error) {
	var v entity.AreaFreightView
	err := s.Scan(
		&v.ID, &v.CompanyID, &v.ShopID, &v.ShopName, &v.CategoryID, &v.AreaFreightVersion,
		&v.AreaID, &v.AreaName, &v.ProvinceCode, &v.ProvinceName, &v.CityCode, &v.CityName, &v.CountyCode, &v.CountyName,
		&v.TruckTaxExclusiveFreight, &v.TruckFreight, &v.TrainOpenFreight, &v.TrainContainerFreight,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
