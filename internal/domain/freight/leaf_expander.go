package freight

import (
	"sync/atomic"

	"github.com/jhoicas/area-freight/internal/domain/entity"
)

// DefaultMaxCategoryDepth profundidad máxima recorrida al expandir. El árbol modelado tiene 3 niveles.
const DefaultMaxCategoryDepth = 8

// LeafExpander expande una categoría a sus descendientes hoja (nivel 3) usando el CategoryIndex.
// Seguro para uso concurrente.
type LeafExpander struct {
	index    *CategoryIndex
	maxDepth int
	guarded  atomic.Int64
}

// NewLeafExpander construye el expansor. maxDepth <= 0 usa DefaultMaxCategoryDepth.
func NewLeafExpander(index *CategoryIndex, maxDepth int) *LeafExpander {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxCategoryDepth
	}
	return &LeafExpander{index: index, maxDepth: maxDepth}
}

type frame struct {
	category *entity.Category
	depth    int
}

// Expand devuelve las hojas descendientes en orden de recorrido en profundidad.
// Una hoja se devuelve a sí misma; un nodo intermedio sin hijos habilitados devuelve vacío.
// Nodos ya visitados o más profundos que maxDepth se omiten y se cuentan en Guarded.
func (e *LeafExpander) Expand(category *entity.Category) []*entity.Category {
	if category == nil {
		return nil
	}
	if category.IsLeaf() {
		return []*entity.Category{category}
	}

	var leaves []*entity.Category
	visited := map[int64]struct{}{category.ID: {}}
	stack := []frame{{category: category}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.category.IsLeaf() {
			leaves = append(leaves, top.category)
			continue
		}
		children := e.index.Children(top.category.ID)
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if _, seen := visited[child.ID]; seen || top.depth+1 > e.maxDepth {
				e.guarded.Add(1)
				continue
			}
			visited[child.ID] = struct{}{}
			stack = append(stack, frame{category: child, depth: top.depth + 1})
		}
	}
	return leaves
}

// Guarded cantidad de nodos omitidos por ciclo o profundidad desde la construcción.
func (e *LeafExpander) Guarded() int64 {
	return e.guarded.Load()
}
