package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfreight "github.com/jhoicas/area-freight/internal/application/freight"
	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/freight"
	apphttp "github.com/jhoicas/area-freight/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePublisher struct {
	res  *appfreight.UpdateResult
	err  error
	last freight.UpdateCommand
}

func (p *fakePublisher) Execute(_ context.Context, cmd freight.UpdateCommand) (*appfreight.UpdateResult, error) {
	p.last = cmd
	return p.res, p.err
}

type fakeQuery struct {
	latest  *appfreight.PublishedVersion
	records []*entity.AreaFreight
	err     error

	limit, offset int
}

func (q *fakeQuery) Latest(context.Context, string) (*appfreight.PublishedVersion, error) {
	return q.latest, q.err
}

func (q *fakeQuery) Snapshot(_ context.Context, _, _ string, limit, offset int) (*appfreight.SnapshotPage, error) {
	q.limit, q.offset = limit, offset
	if q.err != nil {
		return nil, q.err
	}
	end := min(offset+limit, len(q.records))
	return &appfreight.SnapshotPage{Records: q.records[min(offset, end):end], Total: int64(len(q.records))}, nil
}

func buildFreightApp(p *fakePublisher, q *fakeQuery) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Publisher: p, Query: q, JWTSecret: testJWTSecret})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "la respuesta debe ser JSON: %s", raw)
	}
	return resp.StatusCode, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Publish
// ──────────────────────────────────────────────────────────────────────────────

func TestPublish_Exito(t *testing.T) {
	p := &fakePublisher{res: &appfreight.UpdateResult{
		Version: "AFD000001", Stamped: 3, Produced: 5, Saved: 5, Batches: 1, BatchSize: 500,
		Duration: 1500 * time.Millisecond,
	}}
	app := buildFreightApp(p, &fakeQuery{})

	status, body := send(t, app, http.MethodPost, "/api/area-freights/publish",
		tokenForRole(t, "pricing"), `{"remark":"semanal"}`)

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "AFD000001", body["version"])
	assert.EqualValues(t, 5, body["saved"])
	assert.EqualValues(t, 1500, body["duration_ms"])

	assert.Equal(t, testCompanyID, p.last.CompanyID, "la empresa sale del token")
	assert.Equal(t, testUserID, p.last.CreatedUserID)
	assert.Equal(t, testUserName, p.last.CreatedName)
	assert.Equal(t, "semanal", p.last.Remark)
}

func TestPublish_SinCuerpo(t *testing.T) {
	p := &fakePublisher{res: &appfreight.UpdateResult{Version: "AFD000002"}}
	app := buildFreightApp(p, &fakeQuery{})

	status, _ := send(t, app, http.MethodPost, "/api/area-freights/publish", tokenForRole(t, "admin"), "")

	assert.Equal(t, http.StatusCreated, status)
	assert.Empty(t, p.last.Remark)
}

func TestPublish_RolViewerProhibido(t *testing.T) {
	p := &fakePublisher{}
	app := buildFreightApp(p, &fakeQuery{})

	status, body := send(t, app, http.MethodPost, "/api/area-freights/publish", tokenForRole(t, "viewer"), "")

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.Empty(t, p.last.CompanyID, "el caso de uso no debe ejecutarse")
}

func TestPublish_SinToken(t *testing.T) {
	status, body := send(t, buildFreightApp(&fakePublisher{}, &fakeQuery{}),
		http.MethodPost, "/api/area-freights/publish", "", "")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestPublish_TraduccionDeErrores(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrFreightUpdateTargetNotFound, http.StatusNotFound, "NO_PENDING_FREIGHT"},
		{domain.ErrFreightUpdateFailed, http.StatusUnprocessableEntity, "FREIGHT_UPDATE_FAILED"},
		{fmt.Errorf("%w: batch 0: disk full", domain.ErrPersistenceFailure), http.StatusInternalServerError, "PERSISTENCE_FAILURE"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			app := buildFreightApp(&fakePublisher{err: tc.err}, &fakeQuery{})
			status, body := send(t, app, http.MethodPost, "/api/area-freights/publish", tokenForRole(t, "admin"), "")
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body["code"])
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestLatestVersion_Exito(t *testing.T) {
	q := &fakeQuery{latest: &appfreight.PublishedVersion{
		Version: &entity.AreaVersion{Version: "AFD000009", Type: entity.AreaVersionTypeFreight, CreatedName: "Ana"},
		Records: 42,
	}}
	status, body := send(t, buildFreightApp(&fakePublisher{}, q),
		http.MethodGet, "/api/area-freights/versions/latest", tokenForRole(t, "viewer"), "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "AFD000009", body["version"])
	assert.EqualValues(t, 42, body["records"])
}

func TestLatestVersion_SinVersiones(t *testing.T) {
	status, body := send(t, buildFreightApp(&fakePublisher{}, &fakeQuery{err: domain.ErrNotFound}),
		http.MethodGet, "/api/area-freights/versions/latest", tokenForRole(t, "viewer"), "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestListByVersion_Paginado(t *testing.T) {
	var records []*entity.AreaFreight
	for i := int64(1); i <= 5; i++ {
		f := &entity.AreaFreight{ID: fmt.Sprintf("f-%d", i), CategoryID: i}
		f.TruckFreight = decimal.NewNullDecimal(decimal.RequireFromString("12.50"))
		records = append(records, f)
	}
	q := &fakeQuery{records: records}
	status, body := send(t, buildFreightApp(&fakePublisher{}, q),
		http.MethodGet, "/api/area-freights/versions/AFD000001?limit=2&offset=3", tokenForRole(t, "viewer"), "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, q.limit, "la paginación llega al caso de uso")
	assert.Equal(t, 3, q.offset)
	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "f-4", first["id"])
	assert.Equal(t, "12.5", first["truck_freight"])
	assert.NotContains(t, first, "train_open_freight", "los importes nulos se omiten")

	page := body["page"].(map[string]any)
	assert.EqualValues(t, 5, page["total"])
}

func TestHealth(t *testing.T) {
	status, body := send(t, buildFreightApp(&fakePublisher{}, &fakeQuery{}), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentación
// ──────────────────────────────────────────────────────────────────────────────

func TestSwaggerUI_Servida(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Publisher:   &fakePublisher{},
		Query:       &fakeQuery{},
		JWTSecret:   testJWTSecret,
		SwaggerFile: "../../../docs/swagger.json",
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "Area Freight API")

	status, _ := send(t, app, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status, "el middleware no intercepta otras rutas")
}
