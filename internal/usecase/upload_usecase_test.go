package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/poi-catalog/internal/domain/repository"
	"github.com/poi-catalog/internal/pkg/errors"
	"github.com/poi-catalog/internal/repository/document"
	"github.com/poi-catalog/internal/repository/memory"
	"github.com/poi-catalog/internal/usecase"
)

func newUploadFixture() (*usecase.UploadUseCase, repository.POIRepository) {
	logger := zap.NewNop()
	repo := document.NewPOIRepository(memory.NewDocumentStore(), logger)
	return usecase.NewUploadUseCase(repo, logger), repo
}

func record(id, name string, lat float64) string {
	return fmt.Sprintf(
		`{"id":%q,"name":%q,"latitude":%g,"longitude":2.0,"type":"park","createdAt":1700000000000,"updatedAt":1700000000000,"source":"bulk_import"}`,
		id, name, lat,
	)
}

func TestUploadUseCase_PartialFailure(t *testing.T) {
	uc, repo := newUploadFixture()
	ctx := context.Background()

	payload := `{"pois":[` +
		record("poi_1", "One", 1) + `,` +
		record("poi_2", "Two", 1) + `,` +
		record("poi_3", "Three", 200) + `,` +
		record("poi_4", "Four", 1) + `,` +
		record("poi_5", "Five", 1) + `]}`

	result, err := uc.UploadPOIs(ctx, []byte(payload))
	assert.NoError(t, err)
	assert.Equal(t, 5, result.TotalProcessed)
	assert.Equal(t, 4, result.Successful)
	assert.Equal(t, 1, result.Failed)

	// the one error cites the first violated rule of the bad record
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, "poi_3", result.Errors[0].POIID)
	assert.Equal(t, "Three", result.Errors[0].POIName)
	assert.Equal(t, "Invalid latitude: 200", result.Errors[0].Error)

	// the bad record is not persisted, its siblings are
	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	missing, err := repo.FindByID(ctx, "poi_3")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUploadUseCase_RecordsArrivePreStamped(t *testing.T) {
	uc, repo := newUploadFixture()
	ctx := context.Background()

	_, err := uc.UploadPOIs(ctx, []byte(`{"pois":[`+record("poi_7", "Seven", 1)+`]}`))
	assert.NoError(t, err)

	saved, err := repo.FindByID(ctx, "poi_7")
	assert.NoError(t, err)
	// caller-supplied id and timestamps survive untouched
	assert.Equal(t, "poi_7", saved.ID)
	assert.Equal(t, int64(1700000000000), saved.CreatedAt)
	assert.Equal(t, int64(1700000000000), saved.UpdatedAt)
	assert.Equal(t, "bulk_import", saved.Source)
}

func TestUploadUseCase_EmptyPayloadAbortsWhole(t *testing.T) {
	uc, repo := newUploadFixture()
	ctx := context.Background()

	result, err := uc.UploadPOIs(ctx, []byte(`{"pois":[]}`))
	assert.Nil(t, result)

	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	all, findErr := repo.FindAll(ctx)
	assert.NoError(t, findErr)
	assert.Empty(t, all)
}

func TestUploadUseCase_MalformedPayloadAbortsWhole(t *testing.T) {
	uc, repo := newUploadFixture()
	ctx := context.Background()

	result, err := uc.UploadPOIs(ctx, []byte(`{"pois": not json`))
	assert.Nil(t, result)

	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "Invalid file format")

	all, findErr := repo.FindAll(ctx)
	assert.NoError(t, findErr)
	assert.Empty(t, all)
}

func TestUploadUseCase_FirstViolatedRuleReported(t *testing.T) {
	uc, _ := newUploadFixture()
	ctx := context.Background()

	// id missing AND latitude broken: the id rule comes first
	payload := `{"pois":[{"id":"","name":"Broken","latitude":200,"longitude":2.0,"type":"park","createdAt":1,"updatedAt":1}]}`
	result, err := uc.UploadPOIs(ctx, []byte(payload))
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "POI ID is required", result.Errors[0].Error)
}
