package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/area-freight/internal/application/dto"
	appfreight "github.com/jhoicas/area-freight/internal/application/freight"
	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/freight"
)

// FreightPublisher ejecuta el recálculo de fletes.
type FreightPublisher interface {
	Execute(ctx context.Context, cmd freight.UpdateCommand) (*appfreight.UpdateResult, error)
}

// FreightQuery lecturas de versiones publicadas.
type FreightQuery interface {
	Latest(ctx context.Context, companyID string) (*appfreight.PublishedVersion, error)
	Snapshot(ctx context.Context, companyID, version string, limit, offset int) (*appfreight.SnapshotPage, error)
}

// AreaFreightHandler maneja la publicación y consulta de fletes por área (protegido).
type AreaFreightHandler struct {
	publisher FreightPublisher
	query     FreightQuery
}

// NewAreaFreightHandler construye el handler.
func NewAreaFreightHandler(publisher FreightPublisher, query FreightQuery) *AreaFreightHandler {
	return &AreaFreightHandler{publisher: publisher, query: query}
}

// Publish godoc
// @Summary      Publicar fletes por área
// @Description  Estampa las filas pendientes de la empresa con una versión nueva y materializa
//
//	un flete por categoría hoja y geografía.
//
// @Tags         area-freights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PublishAreaFreightRequest  false  "remark"
// @Success      201   {object}  dto.PublishAreaFreightResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/area-freights/publish [post]
func (h *AreaFreightHandler) Publish(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PublishAreaFreightRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	res, err := h.publisher.Execute(c.Context(), freight.UpdateCommand{
		CompanyID:     companyID,
		CreatedUserID: userID,
		CreatedName:   GetUserName(c),
		Remark:        in.Remark,
	})
	if err != nil {
		return writeFreightError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PublishAreaFreightResponse{
		Version:    res.Version,
		Stamped:    res.Stamped,
		Produced:   res.Produced,
		Saved:      res.Saved,
		Dropped:    res.Dropped,
		Suppressed: res.Suppressed,
		Collapsed:  res.Collapsed,
		Batches:    res.Batches,
		BatchSize:  res.BatchSize,
		DurationMS: res.Duration.Milliseconds(),
	})
}

// LatestVersion godoc
// @Summary      Última versión de fletes publicada
// @Tags         area-freights
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AreaVersionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/area-freights/versions/latest [get]
func (h *AreaFreightHandler) LatestVersion(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pv, err := h.query.Latest(c.Context(), companyID)
	if err != nil {
		return writeFreightError(c, err)
	}
	return c.JSON(dto.AreaVersionResponse{
		Version:     pv.Version.Version,
		Type:        pv.Version.Type,
		Remark:      pv.Version.Remark,
		CreatedName: pv.Version.CreatedName,
		CreatedAt:   pv.Version.CreatedAt,
		Records:     pv.Records,
	})
}

// ListByVersion godoc
// @Summary      Fletes de una versión
// @Tags         area-freights
// @Security     Bearer
// @Produce      json
// @Param        version  path   string  true   "versión"
// @Param        limit    query  int     false  "límite (def. 20)"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200  {object}  dto.AreaFreightPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/area-freights/versions/{version} [get]
func (h *AreaFreightHandler) ListByVersion(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	snap, err := h.query.Snapshot(c.Context(), companyID, c.Params("version"), page.Limit, page.Offset)
	if err != nil {
		return writeFreightError(c, err)
	}
	items := make([]dto.AreaFreightResponse, 0, len(snap.Records))
	for _, f := range snap.Records {
		items = append(items, toAreaFreightResponse(f))
	}
	return c.JSON(dto.AreaFreightPageResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: int(snap.Total)},
	})
}

func toAreaFreightResponse(f *entity.AreaFreight) dto.AreaFreightResponse {
	return dto.AreaFreightResponse{
		ID:                       f.ID,
		ShopID:                   f.ShopID,
		ShopName:                 f.ShopName,
		CategoryID:               f.CategoryID,
		CategoryName:             f.CategoryName,
		AreaID:                   f.AreaID,
		AreaName:                 f.AreaName,
		ProvinceCode:             f.ProvinceCode,
		CityCode:                 f.CityCode,
		CountyCode:               f.CountyCode,
		TruckTaxExclusiveFreight: amount(f.TruckTaxExclusiveFreight),
		TruckFreight:             amount(f.TruckFreight),
		TrainOpenFreight:         amount(f.TrainOpenFreight),
		TrainContainerFreight:    amount(f.TrainContainerFreight),
	}
}

func amount(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

// writeFreightError traduce los errores del recálculo a códigos HTTP.
func writeFreightError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrFreightUpdateTargetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_PENDING_FREIGHT", Message: err.Error()})
	case errors.Is(err, domain.ErrFreightUpdateFailed):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "FREIGHT_UPDATE_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrPersistenceFailure):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE_FAILURE", Message: "no se pudo guardar la publicación"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
