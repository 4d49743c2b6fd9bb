package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Geography ubicación de un flete: área comercial y división política.
type Geography struct {
	AreaID       int64
	AreaName     string
	ProvinceCode string
	ProvinceName string
	CityCode     string
	CityName     string
	CountyCode   string
	CountyName   string
}

// FreightAmounts los cuatro importes de flete. Null = tarifa no ofrecida.
type FreightAmounts struct {
	TruckTaxExclusiveFreight decimal.NullDecimal // camión sin impuestos
	TruckFreight             decimal.NullDecimal // camión
	TrainOpenFreight         decimal.NullDecimal // tren vagón abierto
	TrainContainerFreight    decimal.NullDecimal // tren contenedor
}

// AreaFreightView fila pendiente de flete: hecho aún no publicado.
// AreaFreightVersion vacío = pendiente; el recálculo la estampa una sola vez.
type AreaFreightView struct {
	ID                 int64
	CompanyID          string
	ShopID             int64
	ShopName           string
	CategoryID         int64 // cualquier nivel
	AreaFreightVersion string
	Geography
	FreightAmounts
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending indica si la fila aún no pertenece a ninguna versión.
func (v *AreaFreightView) IsPending() bool {
	return v.AreaFreightVersion == ""
}

// AreaFreight registro publicado de flete por (categoría hoja, geografía). Inmutable una vez confirmado.
type AreaFreight struct {
	ID                 string // asignado al persistir
	CompanyID          string
	ShopID             int64
	ShopName           string
	CategoryID         int64 // siempre nivel 3
	CategoryName       string
	AreaFreightVersion string
	Geography
	FreightAmounts
	CreatedUserID string
	CreatedName   string
	CreatedAt     time.Time
}
