package usecase

import (
	"context"
	"encoding/json"

	"github.com/poi-catalog/internal/domain/repository"
	"github.com/poi-catalog/internal/pkg/errors"
	"github.com/poi-catalog/internal/usecase/dto"
	"go.uber.org/zap"
)

// UploadUseCase - файловая пакетная загрузка. Двухуровневая модель отказов:
// структурная ошибка или пустой файл валят весь вызов, ошибка отдельной
// записи изолируется и не трогает соседей.
type UploadUseCase struct {
	poiRepo repository.POIRepository
	logger  *zap.Logger
}

func NewUploadUseCase(poiRepo repository.POIRepository, logger *zap.Logger) *UploadUseCase {
	return &UploadUseCase{
		poiRepo: poiRepo,
		logger:  logger,
	}
}

// UploadPOIs ingests a JSON payload of fully formed records. Records arrive
// pre-stamped (id and timestamps included), so successes persist directly
// through the store adapter without re-stamping. Per-record rule failures
// are collected in input order; nothing is rolled back.
func (uc *UploadUseCase) UploadPOIs(ctx context.Context, data []byte) (*dto.FileUploadResult, error) {
	var payload dto.POIFileUpload
	if err := json.Unmarshal(data, &payload); err != nil {
		uc.logger.Error("Failed to parse upload file", zap.Error(err))
		return nil, errors.Validation("Invalid file format: " + err.Error())
	}
	if len(payload.POIs) == 0 {
		return nil, errors.Validation("Invalid file format: file contains no POIs")
	}

	uc.logger.Info("Processing POIs from file", zap.Int("count", len(payload.POIs)))

	result := &dto.FileUploadResult{
		Errors: make([]dto.UploadError, 0),
	}
	for _, poi := range payload.POIs {
		if err := poi.Validate(); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.UploadError{
				POIID:   poi.ID,
				POIName: poi.Name,
				Error:   err.Error(),
			})
			uc.logger.Warn("Rejected POI record",
				zap.String("id", poi.ID),
				zap.String("reason", err.Error()),
			)
			continue
		}

		if _, err := uc.poiRepo.Save(ctx, &poi); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.UploadError{
				POIID:   poi.ID,
				POIName: poi.Name,
				Error:   errors.ErrDatabaseError.Message,
			})
			uc.logger.Error("Failed to save POI record",
				zap.String("id", poi.ID),
				zap.Error(err),
			)
			continue
		}
		result.Successful++
	}

	result.TotalProcessed = result.Successful + result.Failed
	uc.logger.Info("Upload completed",
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
