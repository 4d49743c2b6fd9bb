package freight

import "github.com/jhoicas/area-freight/internal/domain/entity"

// CategoryIndex índice en memoria del árbol de categorías habilitadas de una empresa.
// Se construye una vez por recálculo y queda de solo lectura; las lecturas concurrentes son seguras.
type CategoryIndex struct {
	byID     map[int64]*entity.Category
	children map[int64][]*entity.Category
}

// BuildCategoryIndex filtra las categorías habilitadas y arma id→categoría y padre→hijos.
// Ante IDs duplicados conserva la primera aparición, sin error. Los hijos mantienen el orden de entrada.
func BuildCategoryIndex(categories []*entity.Category) *CategoryIndex {
	idx := &CategoryIndex{
		byID:     make(map[int64]*entity.Category, len(categories)),
		children: make(map[int64][]*entity.Category),
	}
	for _, c := range categories {
		if c == nil || !c.IsEnabled() {
			continue
		}
		if _, dup := idx.byID[c.ID]; dup {
			continue
		}
		idx.byID[c.ID] = c
		idx.children[c.ParentID] = append(idx.children[c.ParentID], c)
	}
	return idx
}

// Get devuelve la categoría habilitada con ese ID.
func (i *CategoryIndex) Get(id int64) (*entity.Category, bool) {
	c, ok := i.byID[id]
	return c, ok
}

// Children devuelve los hijos directos habilitados. Para raíces usar entity.CategoryRootParentID.
func (i *CategoryIndex) Children(parentID int64) []*entity.Category {
	return i.children[parentID]
}

// Len cantidad de categorías indexadas.
func (i *CategoryIndex) Len() int {
	return len(i.byID)
}

// Release descarta los mapas. El índice queda vacío.
func (i *CategoryIndex) Release() {
	i.byID = map[int64]*entity.Category{}
	i.children = map[int64][]*entity.Category{}
}
