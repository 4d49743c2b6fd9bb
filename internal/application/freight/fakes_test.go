package freight_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

const companyID = "00000000-0000-0000-0000-0000000000c1"

var errDiskFull = errors.New("disk full")

// memStore simula las tablas de la tx con snapshot y rollback.
type memStore struct {
	mu       sync.Mutex
	views    []*entity.AreaFreightView
	freights []*entity.AreaFreight
	versions []*entity.AreaVersion

	inserts    atomic.Int32
	failInsert int32 // n-ésima llamada a BulkInsert que falla (1-based); 0 = nunca
	failStamp  bool
	shortStamp bool
	failCreate bool
}

func (s *memStore) RunFreight(ctx context.Context, fn func(
	viewRepo repository.AreaFreightViewRepository,
	freightRepo repository.AreaFreightRepository,
	versionRepo repository.AreaVersionRepository,
) error) error {
	s.mu.Lock()
	stamps := make([]string, len(s.views))
	for i, v := range s.views {
		stamps[i] = v.AreaFreightVersion
	}
	nFreights, nVersions := len(s.freights), len(s.versions)
	s.mu.Unlock()

	if err := fn(memViews{s}, memFreights{s}, memVersions{s}); err != nil {
		s.mu.Lock()
		for i, v := range s.views {
			v.AreaFreightVersion = stamps[i]
		}
		s.freights = s.freights[:nFreights]
		s.versions = s.versions[:nVersions]
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) stampedWith(version string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.views {
		if v.AreaFreightVersion == version {
			n++
		}
	}
	return n
}

func (s *memStore) pending() int { return s.stampedWith("") }

type memViews struct{ s *memStore }

func (r memViews) ListPendingByCompany(_ context.Context, company string) ([]*entity.AreaFreightView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.AreaFreightView
	for _, v := range r.s.views {
		if v.CompanyID == company && v.IsPending() {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memViews) StampVersion(_ context.Context, ids []int64, version string) (int64, error) {
	if r.s.failStamp {
		return 0, errDiskFull
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var n int64
	for _, v := range r.s.views {
		if want[v.ID] && v.IsPending() {
			v.AreaFreightVersion = version
			n++
		}
	}
	if r.s.shortStamp && n > 0 {
		n--
	}
	return n, nil
}

type memFreights struct{ s *memStore }

func (r memFreights) BulkInsert(_ context.Context, freights []*entity.AreaFreight) (int64, error) {
	call := r.s.inserts.Add(1)
	if r.s.failInsert > 0 && call == r.s.failInsert {
		return 0, errDiskFull
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range freights {
		f.ID = uuid.NewString()
		r.s.freights = append(r.s.freights, f)
	}
	return int64(len(freights)), nil
}

func (r memFreights) ListByVersion(_ context.Context, company, version string, limit, offset int) ([]*entity.AreaFreight, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.AreaFreight
	for _, f := range r.s.freights {
		if f.CompanyID == company && f.AreaFreightVersion == version {
			out = append(out, f)
		}
	}
	out = out[min(max(offset, 0), len(out)):]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r memFreights) CountByVersion(ctx context.Context, company, version string) (int64, error) {
	out, _ := r.ListByVersion(ctx, company, version, 0, 0)
	return int64(len(out)), nil
}

type memVersions struct{ s *memStore }

func (r memVersions) Create(_ context.Context, v *entity.AreaVersion) error {
	if r.s.failCreate {
		return errDiskFull
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.versions = append(r.s.versions, v)
	return nil
}

func (r memVersions) GetLatest(_ context.Context, company, versionType string) (*entity.AreaVersion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := len(r.s.versions) - 1; i >= 0; i-- {
		v := r.s.versions[i]
		if v.CompanyID == company && v.Type == versionType {
			return v, nil
		}
	}
	return nil, nil
}

type memCategories struct {
	categories []*entity.Category
	err        error
}

func (r memCategories) ListByCompany(_ context.Context, company string) ([]*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Category
	for _, c := range r.categories {
		if c.CompanyID == company {
			out = append(out, c)
		}
	}
	return out, nil
}

type memCompanies map[string]*entity.Company

func (r memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r[id], nil
}

type seqVersions struct{ n atomic.Int64 }

func (g *seqVersions) Next(context.Context) (string, error) {
	return fmt.Sprintf("AFD%06d", g.n.Add(1)), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos
// ──────────────────────────────────────────────────────────────────────────────

func category(id, parent int64, level int, name string) *entity.Category {
	return &entity.Category{
		ID:        id,
		CompanyID: companyID,
		ParentID:  parent,
		Name:      name,
		Level:     level,
		Status:    entity.CategoryStatusEnabled,
	}
}

// A(1) → B(2) → {X(3), Y(4)}
func exampleTree() []*entity.Category {
	return []*entity.Category{
		category(1, 0, 1, "A"),
		category(2, 1, 2, "B"),
		category(3, 2, 3, "X"),
		category(4, 2, 3, "Y"),
	}
}

func pendingRow(id, shopID, categoryID, areaID int64) *entity.AreaFreightView {
	return &entity.AreaFreightView{
		ID:         id,
		CompanyID:  companyID,
		ShopID:     shopID,
		ShopName:   fmt.Sprintf("tienda-%d", shopID),
		CategoryID: categoryID,
		Geography: entity.Geography{
			AreaID:       areaID,
			AreaName:     fmt.Sprintf("A%d", areaID),
			ProvinceCode: "11",
			CityCode:     "11001",
			CountyCode:   "001",
		},
		FreightAmounts: entity.FreightAmounts{
			TruckFreight:     decimal.NewNullDecimal(decimal.NewFromInt(100 + shopID)),
			TrainOpenFreight: decimal.NewNullDecimal(decimal.RequireFromString("80.50")),
		},
	}
}

func activeCompanies() memCompanies {
	return memCompanies{companyID: {ID: companyID, Name: "Fletes SAS", Status: entity.CompanyStatusActive}}
}
