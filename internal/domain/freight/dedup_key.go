package freight

import (
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/area-freight/internal/domain/entity"
)

// FreightKey identidad de deduplicación: (categoría hoja, geografía).
// No incluye la tienda: filas de distintas tiendas con la misma hoja y geografía colapsan en un solo flete.
type FreightKey struct {
	CategoryID   int64
	AreaID       int64
	ProvinceCode string
	CityCode     string
	CountyCode   string
}

// KeyOf calcula la clave de forma pura a partir de la hoja y la fila.
func KeyOf(leaf *entity.Category, view *entity.AreaFreightView) FreightKey {
	return FreightKey{
		CategoryID:   leaf.ID,
		AreaID:       view.AreaID,
		ProvinceCode: view.ProvinceCode,
		CityCode:     view.CityCode,
		CountyCode:   view.CountyCode,
	}
}

// String forma textual estable "categoria:area:provincia:ciudad:condado".
func (k FreightKey) String() string {
	var b strings.Builder
	b.Grow(64)
	b.WriteString(strconv.FormatInt(k.CategoryID, 10))
	b.WriteByte(':')
	b.WriteString(strconv.FormatInt(k.AreaID, 10))
	b.WriteByte(':')
	b.WriteString(k.ProvinceCode)
	b.WriteByte(':')
	b.WriteString(k.CityCode)
	b.WriteByte(':')
	b.WriteString(k.CountyCode)
	return b.String()
}

// KeySet conjunto de claves seguro para escrituras concurrentes.
type KeySet struct {
	mu   sync.RWMutex
	keys map[FreightKey]struct{}
}

// NewKeySet crea un conjunto vacío.
func NewKeySet() *KeySet {
	return &KeySet{keys: make(map[FreightKey]struct{})}
}

// Add agrega la clave.
func (s *KeySet) Add(k FreightKey) {
	s.mu.Lock()
	s.keys[k] = struct{}{}
	s.mu.Unlock()
}

// Has indica si la clave existe.
func (s *KeySet) Has(k FreightKey) bool {
	s.mu.RLock()
	_, ok := s.keys[k]
	s.mu.RUnlock()
	return ok
}

// Claim agrega la clave y devuelve true solo para el primer llamador.
func (s *KeySet) Claim(k FreightKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

// Release vacía el conjunto.
func (s *KeySet) Release() {
	s.mu.Lock()
	s.keys = make(map[FreightKey]struct{})
	s.mu.Unlock()
}
