package entity

import "time"

// Niveles del árbol de categorías. El nivel 3 es la hoja.
const (
	CategoryLevelRoot   = 1
	CategoryLevelMiddle = 2
	CategoryLevelLeaf   = 3
)

// Estados de una categoría.
const (
	CategoryStatusEnabled  = "enabled"
	CategoryStatusDisabled = "disabled"
)

// CategoryRootParentID identifica a las categorías sin padre.
const CategoryRootParentID int64 = 0

// Category representa una categoría de productos dentro del bosque de una empresa.
type Category struct {
	ID        int64
	CompanyID string
	ParentID  int64 // 0 si es raíz
	Name      string
	Level     int    // 1..3, 3 = hoja
	Status    string // enabled, disabled
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLeaf indica si la categoría es de último nivel.
func (c *Category) IsLeaf() bool {
	return c.Level == CategoryLevelLeaf
}

// IsEnabled indica si la categoría participa en el cálculo.
func (c *Category) IsEnabled() bool {
	return c.Status == CategoryStatusEnabled
}
