package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/poi-catalog/internal/domain"
	"github.com/poi-catalog/internal/pkg/errors"
	"github.com/poi-catalog/internal/pkg/utils"
	"github.com/poi-catalog/internal/usecase"
	"go.uber.org/zap"
)

// MediaHandler - attach/detach медиа для POI. Бинарное содержимое формы
// игнорируется: сервис ведёт только метаданные и фабрикует URL.
type MediaHandler struct {
	mediaUC *usecase.MediaUseCase
	poiUC   *usecase.POIUseCase
	logger  *zap.Logger
}

// NewMediaHandler - создание нового MediaHandler
func NewMediaHandler(mediaUC *usecase.MediaUseCase, poiUC *usecase.POIUseCase, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUC: mediaUC,
		poiUC:   poiUC,
		logger:  logger,
	}
}

// Upload - привязка медиа к существующему POI
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	poiID := c.Params("poiId")
	if _, err := h.poiUC.FindByID(c.Context(), poiID); err != nil {
		return utils.SendError(c, err)
	}

	mediaType := c.FormValue("type", string(domain.MediaTypeImage))
	if !domain.IsValidMediaType(mediaType) {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var caption *string
	if v := c.FormValue("caption"); v != "" {
		caption = &v
	}

	item := h.mediaUC.Upload(poiID, domain.MediaType(mediaType), caption)
	return utils.SendSuccess(c, fiber.StatusCreated, item)
}

// Delete - отвязка медиа от POI
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	poiID := c.Params("poiId")
	if _, err := h.poiUC.FindByID(c.Context(), poiID); err != nil {
		return utils.SendError(c, err)
	}

	if !h.mediaUC.Delete(poiID, c.Params("mediaId")) {
		return utils.SendError(c, errors.ErrMediaNotFound)
	}
	return utils.SendSuccess(c, fiber.StatusOK, nil)
}
