package dto

import "time"

// PublishAreaFreightRequest cuerpo de POST /api/area-freights/publish.
type PublishAreaFreightRequest struct {
	Remark string `json:"remark"`
}

// PublishAreaFreightResponse resumen de la publicación.
type PublishAreaFreightResponse struct {
	Version    string `json:"version"`
	Stamped    int    `json:"stamped"`
	Produced   int    `json:"produced"`
	Saved      int64  `json:"saved"`
	Dropped    int    `json:"dropped"`
	Suppressed int    `json:"suppressed"`
	Collapsed  int    `json:"collapsed"`
	Batches    int    `json:"batches"`
	BatchSize  int    `json:"batch_size"`
	DurationMS int64  `json:"duration_ms"`
}

// AreaVersionResponse versión publicada.
type AreaVersionResponse struct {
	Version     string    `json:"version"`
	Type        string    `json:"type"`
	Remark      string    `json:"remark,omitempty"`
	CreatedName string    `json:"created_name"`
	CreatedAt   time.Time `json:"created_at"`
	Records     int64     `json:"records"`
}

// AreaFreightResponse flete publicado. Los importes nulos se omiten.
type AreaFreightResponse struct {
	ID                       string  `json:"id"`
	ShopID                   int64   `json:"shop_id"`
	ShopName                 string  `json:"shop_name"`
	CategoryID               int64   `json:"category_id"`
	CategoryName             string  `json:"category_name"`
	AreaID                   int64   `json:"area_id"`
	AreaName                 string  `json:"area_name"`
	ProvinceCode             string  `json:"province_code"`
	CityCode                 string  `json:"city_code"`
	CountyCode               string  `json:"county_code"`
	TruckTaxExclusiveFreight *string `json:"truck_tax_exclusive_freight,omitempty"`
	TruckFreight             *string `json:"truck_freight,omitempty"`
	TrainOpenFreight         *string `json:"train_open_freight,omitempty"`
	TrainContainerFreight    *string `json:"train_container_freight,omitempty"`
}

// AreaFreightPageResponse página de fletes de una versión.
type AreaFreightPageResponse struct {
	Items []AreaFreightResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
