package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

var _ repository.AreaFreightRepository = (*AreaFreightRepo)(nil)

var areaFreightCopyColumns = []string{
	"id", "company_id", "shop_id", "shop_name", "category_id", "category_name", "area_freight_version",
	"area_id", "area_name", "province_code", "province_name", "city_code", "city_name", "county_code", "county_name",
	"truck_tax_exclusive_freight", "truck_freight", "train_open_freight", "train_container_freight",
	"created_user_id", "created_name", "created_at",
}

// AreaFreightRepo fletes publicados (area_freight).
type AreaFreightRepo struct {
	q Querier
}

// NewAreaFreightRepository construye el adaptador.
func NewAreaFreightRepository(q Querier) *AreaFreightRepo {
	return &AreaFreightRepo{q: q}
}

// BulkInsert copia el lote con el protocolo COPY. Asigna ID y CreatedAt a los registros que no los tengan.
func (r *AreaFreightRepo) BulkInsert(ctx context.Context, freights []*entity.AreaFreight) (int64, error) {
	if len(freights) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	rows := make([][]any, len(freights))
	for i, f := range freights {
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		if f.CreatedAt.IsZero() {
			f.CreatedAt = now
		}
		rows[i] = []any{
			f.ID, f.CompanyID, f.ShopID, f.ShopName, f.CategoryID, f.CategoryName, f.AreaFreightVersion,
			f.AreaID, f.AreaName, f.ProvinceCode, f.ProvinceName, f.CityCode, f.CityName, f.CountyCode, f.CountyName,
			f.TruckTaxExclusiveFreight, f.TruckFreight, f.TrainOpenFreight, f.TrainContainerFreight,
			f.CreatedUserID, f.CreatedName, f.CreatedAt,
		}
	}
	n, err := r.q.CopyFrom(ctx, pgx.Identifier{"area_freight"}, areaFreightCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy area_freight: %w", err)
	}
	return n, nil
}

// ListByVersion página del snapshot publicado, en el orden de la clave de deduplicación.
func (r *AreaFreightRepo) ListByVersion(ctx context.Context, companyID, version string, limit, offset int) ([]*entity.AreaFreight, error) {
	query := `
		SELECT id, company_id, shop_id, shop_name, category_id, category_name, area_freight_version,
			area_id, area_name, province_code, province_name, city_code, city_name, county_code, county_name,
			truck_tax_exclusive_freight, truck_freight, train_open_freight, train_container_freight,
			created_user_id, created_name, created_at
		FROM area_freight
		WHERE company_id = $1 AND area_freight_version = $2
		ORDER BY category_id, area_id, province_code, city_code, county_code
		OFFSET $3`
	args := []any{companyID, version, max(offset, 0)}
	if limit > 0 {
		query += ` LIMIT $4`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list area freights: %w", err)
	}
	defer rows.Close()

	var list []*entity.AreaFreight
	for rows.Next() {
		var f entity.AreaFreight
		if err := rows.Scan(
			&f.ID, &f.CompanyID, &f.ShopID, &f.ShopName, &f.CategoryID, &f.CategoryName, &f.AreaFreightVersion,
			&f.AreaID, &f.AreaName, &f.ProvinceCode, &f.ProvinceName, &f.CityCode, &f.CityName, &f.CountyCode, &f.CountyName,
			&f.TruckTaxExclusiveFreight, &f.TruckFreight, &f.TrainOpenFreight, &f.TrainContainerFreight,
			&f.CreatedUserID, &f.CreatedName, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan area freight: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// CountByVersion cantidad de fletes de una versión.
func (r *AreaFreightRepo) CountByVersion(ctx context.Context, companyID, version string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM area_freight WHERE company_id = $1 AND area_freight_version = $2`,
		companyID, version,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count area freights: %w", err)
	}
	return n, nil
}
