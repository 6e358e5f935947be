package dto

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// IDResponse - ответ с id созданной записи
type IDResponse struct {
	ID int64 `json:"id"`
}

// HealthResponse - состояние зависимостей сервиса
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
