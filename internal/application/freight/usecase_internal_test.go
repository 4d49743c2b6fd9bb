package freight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/freight"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

type brokenViews struct{ err error }

func (r brokenViews) ListPendingByCompany(context.Context, string) ([]*entity.AreaFreightView, error) {
	return nil, r.err
}

func (r brokenViews) StampVersion(context.Context, []int64, string) (int64, error) {
	return 0, r.err
}

type brokenTx struct{ views brokenViews }

func (tx brokenTx) RunFreight(_ context.Context, fn func(
	viewRepo repository.AreaFreightViewRepository,
	freightRepo repository.AreaFreightRepository,
	versionRepo repository.AreaVersionRepository,
) error) error {
	return fn(tx.views, nil, nil)
}

type fixedCategories []*entity.Category

func (c fixedCategories) ListByCompany(context.Context, string) ([]*entity.Category, error) {
	return c, nil
}

type oneVersion struct{}

func (oneVersion) Next(context.Context) (string, error) { return "AFD000001", nil }

// ──────────────────────────────────────────────────────────────────────────────
// Liberación del índice
// ──────────────────────────────────────────────────────────────────────────────

func TestLoadAndStamp_FalloLiberaIndice(t *testing.T) {
	boom := errors.New("connection reset")
	categories := fixedCategories{
		{ID: 1, CompanyID: "c1", Name: "A", Level: 1, Status: entity.CategoryStatusEnabled},
		{ID: 2, CompanyID: "c1", ParentID: 1, Name: "B", Level: 2, Status: entity.CategoryStatusEnabled},
	}
	uc := NewUpdateAreaFreightUseCase(brokenTx{brokenViews{boom}}, categories, nil, oneVersion{}, Options{}, nil, nil)

	var built *freight.CategoryIndex
	uc.buildIndex = func(cs []*entity.Category) *freight.CategoryIndex {
		built = freight.BuildCategoryIndex(cs)
		return built
	}

	_, err := uc.Execute(context.Background(), freight.UpdateCommand{CompanyID: "c1", CreatedUserID: "u1"})
	require.ErrorIs(t, err, boom)

	require.NotNil(t, built, "las categorías se cargan aunque falle el estampado")
	assert.Equal(t, 0, built.Len(), "el índice descartado debe quedar liberado")
}
