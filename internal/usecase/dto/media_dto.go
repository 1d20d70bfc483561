package dto

// MediaUploadRequest - параметры attach, извлекаются из multipart-формы
type MediaUploadRequest struct {
	Type    string  `json:"type" validate:"omitempty,oneof=image video"`
	Caption *string `json:"caption,omitempty"`
}
