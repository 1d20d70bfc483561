package domain

// Identity - результат проверки токена у внешнего провайдера
type Identity struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
}
