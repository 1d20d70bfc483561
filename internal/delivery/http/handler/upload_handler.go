package handler

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/poi-catalog/internal/pkg/errors"
	"github.com/poi-catalog/internal/pkg/utils"
	"github.com/poi-catalog/internal/usecase"
	"go.uber.org/zap"
)

// maxUploadSize ограничивает размер файла до разбора содержимого.
const maxUploadSize = 10 * 1024 * 1024

// UploadHandler - multipart-загрузка файла с готовыми записями POI
type UploadHandler struct {
	uploadUC *usecase.UploadUseCase
	logger   *zap.Logger
}

// NewUploadHandler - создание нового UploadHandler
func NewUploadHandler(uploadUC *usecase.UploadUseCase, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUC: uploadUC,
		logger:   logger,
	}
}

// UploadFile - пакетная загрузка. 201 при полном успехе, 206 при частичном.
func (h *UploadHandler) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, errors.ErrFileRequired)
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".json") {
		return utils.SendError(c, errors.ErrInvalidFileType)
	}
	if fileHeader.Size > maxUploadSize {
		return utils.SendError(c, errors.ErrFileTooLarge)
	}

	h.logger.Info("Processing file upload", zap.String("filename", fileHeader.Filename))

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	result, err := h.uploadUC.UploadPOIs(c.Context(), data)
	if err != nil {
		return utils.SendError(c, err)
	}

	status := fiber.StatusCreated
	if result.Failed > 0 {
		status = fiber.StatusPartialContent
	}
	return utils.SendSuccess(c, status, result)
}
