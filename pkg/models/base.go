package models

import "encoding/json"

type ColorInfo struct {
	Color  string `json:"color"`
	IsDark bool   `json:"isDark"`
}

// TaskFollowers userId -> роль подписчика (creator)
type TaskFollowers map[string]string

// CustomField значение кастомного поля задачи. Value строка либо массив строк.
type CustomField struct {
	ID    string `json:"id" validate:"required"`
	Value any    `json:"value"`
}

type HistoryItem struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Action    string          `json:"action"`
	UserID    string          `json:"userId"`
	CreatedAt string          `json:"createdAt"`
	Changes   json.RawMessage `json:"changes,omitempty"`
}

type GetHistoryRequest struct {
	Kind   Kind   `json:"kind" validate:"required"`
	KindID string `json:"kindId" validate:"required"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1"`
	Offset int    `json:"offset,omitempty" validate:"omitempty,min=0"`
}

type GetHistoryResponse struct {
	Histories []HistoryItem `json:"histories"`
	Total     int           `json:"total"`
}
