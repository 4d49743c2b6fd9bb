package freight

import "github.com/jhoicas/area-freight/internal/domain/entity"

// UpdateCommand orden de recálculo de fletes de una empresa.
type UpdateCommand struct {
	CompanyID     string
	CreatedUserID string
	CreatedName   string
	Remark        string // se copia al registro de versión
}

// NewAreaFreight proyecta (hoja, fila, comando) en un flete. Sin efectos secundarios;
// el ID queda vacío hasta persistir.
func NewAreaFreight(leaf *entity.Category, view *entity.AreaFreightView, cmd UpdateCommand, version string) *entity.AreaFreight {
	return &entity.AreaFreight{
		CompanyID:          cmd.CompanyID,
		ShopID:             view.ShopID,
		ShopName:           view.ShopName,
		CategoryID:         leaf.ID,
		CategoryName:       leaf.Name,
		AreaFreightVersion: version,
		Geography:          view.Geography,
		FreightAmounts:     view.FreightAmounts,
		CreatedUserID:      cmd.CreatedUserID,
		CreatedName:        cmd.CreatedName,
	}
}
