package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/poi-catalog/internal/domain"
	"github.com/poi-catalog/internal/pkg/errors"
	"github.com/poi-catalog/internal/pkg/utils"
	"github.com/poi-catalog/internal/pkg/validator"
	"github.com/poi-catalog/internal/usecase"
	"github.com/poi-catalog/internal/usecase/dto"
	"go.uber.org/zap"
)

// POIHandler - обработчик CRUD/поиска/импорта точек интереса
type POIHandler struct {
	poiUC  *usecase.POIUseCase
	logger *zap.Logger
}

// NewPOIHandler - создание нового POIHandler
func NewPOIHandler(poiUC *usecase.POIUseCase, logger *zap.Logger) *POIHandler {
	return &POIHandler{
		poiUC:  poiUC,
		logger: logger,
	}
}

// Create - создание POI
func (h *POIHandler) Create(c *fiber.Ctx) error {
	var req dto.POICreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.Validation(validator.Message(err)))
	}

	result, err := h.poiUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.StatusCreated, result)
}

// List - постраничный список POI с фильтрами type/verified
func (h *POIHandler) List(c *fiber.Ctx) error {
	req := dto.ListPOIRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
		Type:  c.Query("type"),
	}
	if req.Type != "" && !domain.IsValidPOIType(req.Type) {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if raw := c.Query("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		req.Verified = &verified
	}

	result, err := h.poiUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.StatusOK, result)
}

// Get - получение POI по идентификатору
func (h *POIHandler) Get(c *fiber.Ctx) error {
	result, err := h.poiUC.FindByID(c.Context(), c.Params("poiId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.StatusOK, result)
}

// Update - частичное обновление POI
func (h *POIHandler) Update(c *fiber.Ctx) error {
	var req dto.POIUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.Validation(validator.Message(err)))
	}

	result, err := h.poiUC.Update(c.Context(), c.Params("poiId"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.StatusOK, result)
}

// Delete - удаление POI
func (h *POIHandler) Delete(c *fiber.Ctx) error {
	if err := h.poiUC.Delete(c.Context(), c.Params("poiId")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.StatusOK, nil)
}

// BulkImport - пакетное создание с поэлементным отчётом
func (h *POIHandler) BulkImport(c *fiber.Ctx) error {
	var req dto.BulkImportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.Validation(validator.Message(err)))
	}

	result, err := h.poiUC.BulkImport(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.StatusCreated, result)
}

// Search - поиск по подстроке/тегам с той же пагинацией, что и List.
// lat/lng/radius принимаются для совместимости, но не фильтруют.
func (h *POIHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchPOIRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
		Query: c.Query("q"),
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				req.Tags = append(req.Tags, tag)
			}
		}
	}
	if raw := c.Query("lat"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		req.Lat = &lat
	}
	if raw := c.Query("lng"); raw != "" {
		lng, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		req.Lng = &lng
	}
	if raw := c.Query("radius"); raw != "" {
		radius, err := strconv.Atoi(raw)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		req.Radius = &radius
	}

	result, err := h.poiUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.StatusOK, result)
}
