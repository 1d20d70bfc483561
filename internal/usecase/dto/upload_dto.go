package dto

import "github.com/poi-catalog/internal/domain"

// POIFileUpload - десериализованное содержимое файла пакетной загрузки.
// Записи приходят полностью сформированными, включая id и таймстемпы.
type POIFileUpload struct {
	POIs []domain.POIEntity `json:"pois"`
}

// UploadError - одна отклонённая запись с причиной (первое нарушенное
// правило)
type UploadError struct {
	POIID   string `json:"poiId"`
	POIName string `json:"poiName"`
	Error   string `json:"error"`
}

// FileUploadResult - итог пакетной загрузки; успехи считаются, но не
// перечисляются
type FileUploadResult struct {
	TotalProcessed int           `json:"totalProcessed"`
	Successful     int           `json:"successful"`
	Failed         int           `json:"failed"`
	Errors         []UploadError `json:"errors"`
}
