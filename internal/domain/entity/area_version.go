package entity

import "time"

// Tipos de versión de área.
const (
	AreaVersionTypeFreight = "Freight" // fletes por categoría
)

// AreaVersion registro de una generación publicada (una por recálculo).
type AreaVersion struct {
	ID            string
	CompanyID     string
	Version       string
	Type          string // ver AreaVersionType*
	Remark        string
	CreatedUserID string
	CreatedName   string
	CreatedAt     time.Time
}
