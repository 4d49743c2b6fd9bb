package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo lectura del árbol de categorías de producto.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de lectura de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// ListByCompany devuelve todas las categorías de la empresa ordenadas por nivel e id,
// de modo que los hijos de un mismo padre conserven un orden estable.
func (r *CategoryRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Category, error) {
	query := `
		SELECT id, company_id, COALESCE(parent_id, 0), name, level, status, created_at, updated_at
		FROM product_categories
		WHERE company_id = $1
		ORDER BY level, id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.ParentID, &c.Name, &c.Level, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
