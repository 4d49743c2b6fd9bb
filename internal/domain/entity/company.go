package entity

import "time"

// Estados de una empresa.
const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
	CompanyStatusInactive  = "inactive"
)

// Company representa una organización/tenant dueña de su tabla de fletes.
type Company struct {
	ID        string
	Name      string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si la empresa puede publicar nuevas versiones.
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}
