package freight

import "github.com/jhoicas/area-freight/internal/domain/entity"

// RowOutcome resultado de procesar una fila pendiente.
type RowOutcome struct {
	Dropped    bool // categoría desconocida o deshabilitada
	Leaves     int  // hojas alcanzadas por la expansión
	Suppressed int  // hojas cubiertas por una fila explícita de nivel 3
	Collapsed  int  // hojas cuya clave ya había sido emitida por otra fila
	Produced   int
}

// Scope estado transitorio de un recálculo: índice, expansor,
// claves explícitas y claves ya emitidas. Se crea por invocación y se libera al salir.
// Todos sus métodos son seguros para uso concurrente.
type Scope struct {
	index    *CategoryIndex
	expander *LeafExpander
	explicit *KeySet
	emitted  *KeySet
}

// NewScope arma el estado del recálculo sobre un índice ya construido.
func NewScope(index *CategoryIndex, maxDepth int) *Scope {
	return &Scope{
		index:    index,
		expander: NewLeafExpander(index, maxDepth),
		explicit: NewKeySet(),
		emitted:  NewKeySet(),
	}
}

// MarkExplicit registra la clave de una fila que referencia directamente una hoja conocida.
func (s *Scope) MarkExplicit(view *entity.AreaFreightView) bool {
	category, ok := s.index.Get(view.CategoryID)
	if !ok || !category.IsLeaf() {
		return false
	}
	s.explicit.Add(KeyOf(category, view))
	return true
}

// Materialize expande la fila a sus hojas y proyecta un flete por hoja aceptada.
// Una hoja alcanzada desde un ancestro se suprime si su clave es explícita. Entre las filas
// que compiten por la misma clave gana la primera en reclamarla; bajo ejecución paralela
// ese orden no es determinista.
func (s *Scope) Materialize(view *entity.AreaFreightView, cmd UpdateCommand, version string) ([]*entity.AreaFreight, RowOutcome) {
	var out RowOutcome
	category, ok := s.index.Get(view.CategoryID)
	if !ok {
		out.Dropped = true
		return nil, out
	}

	leaves := s.expander.Expand(category)
	out.Leaves = len(leaves)
	records := make([]*entity.AreaFreight, 0, len(leaves))
	for _, leaf := range leaves {
		key := KeyOf(leaf, view)
		if category.Level < entity.CategoryLevelLeaf && s.explicit.Has(key) {
			out.Suppressed++
			continue
		}
		if !s.emitted.Claim(key) {
			out.Collapsed++
			continue
		}
		records = append(records, NewAreaFreight(leaf, view, cmd, version))
	}
	out.Produced = len(records)
	return records, out
}

// Guarded nodos omitidos por el guardián de ciclos/profundidad.
func (s *Scope) Guarded() int64 {
	return s.expander.Guarded()
}

// Release libera índices y caches. Es idempotente.
func (s *Scope) Release() {
	s.index.Release()
	s.explicit.Release()
	s.emitted.Release()
}
