package freight_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/jhoicas/area-freight/internal/application/freight"
	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
)

func TestQuery_LatestDespuesDePublicar(t *testing.T) {
	store := &memStore{views: []*entity.AreaFreightView{pendingRow(1, 10, 2, 1)}}
	res, err := newUseCase(store, exampleTree(), app.Options{}).Execute(context.Background(), publishCmd)
	require.NoError(t, err)

	q := app.NewQueryUseCase(memVersions{store}, memFreights{store})
	latest, err := q.Latest(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, res.Version, latest.Version.Version)
	assert.EqualValues(t, 2, latest.Records)

	page, err := q.Snapshot(context.Background(), companyID, res.Version, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Records, 2)
	assert.EqualValues(t, 2, page.Total)
}

func TestQuery_SnapshotPaginado(t *testing.T) {
	cats, rows := wideFixture()
	store := &memStore{views: rows}
	res, err := newUseCase(store, cats, app.Options{}).Execute(context.Background(), publishCmd)
	require.NoError(t, err)
	q := app.NewQueryUseCase(memVersions{store}, memFreights{store})

	page, err := q.Snapshot(context.Background(), companyID, res.Version, 10, 30)
	require.NoError(t, err)
	assert.EqualValues(t, 36, page.Total)
	assert.Len(t, page.Records, 6, "la última página trae solo lo que resta")

	page, err = q.Snapshot(context.Background(), companyID, res.Version, 10, 40)
	require.NoError(t, err)
	assert.Empty(t, page.Records, "desplazamiento fuera de rango")
	assert.EqualValues(t, 36, page.Total)
}

func TestQuery_SinVersiones(t *testing.T) {
	store := &memStore{}
	q := app.NewQueryUseCase(memVersions{store}, memFreights{store})

	_, err := q.Latest(context.Background(), companyID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = q.Snapshot(context.Background(), companyID, "AFD000001", 10, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_EntradaInvalida(t *testing.T) {
	store := &memStore{}
	q := app.NewQueryUseCase(memVersions{store}, memFreights{store})

	_, err := q.Latest(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = q.Snapshot(context.Background(), companyID, "", 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = q.Snapshot(context.Background(), companyID, "AFD000001", 10, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
