package models

import "encoding/json"

type Document struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	Kind        Kind   `json:"kind,omitempty"`
	KindID      string `json:"kindId,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type DocumentResponse struct {
	Document Document `json:"document"`
}

type GetDocumentsRequest struct {
	Kind   Kind   `json:"kind,omitempty"`
	KindID string `json:"kindId,omitempty" validate:"required_with=Kind"`
}

type GetDocumentsResponse struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
}

type CreateDocumentRequest struct {
	Kind             Kind   `json:"kind" validate:"required"`
	KindID           string `json:"kindId" validate:"required"`
	Title            string `json:"title" validate:"required"`
	Index            int    `json:"index"`
	ParentDocumentID string `json:"parentDocumentId,omitempty"`
}

type EditDocumentRequest struct {
	DocumentID  string `json:"documentId" validate:"required"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

// ReplaceDocumentRequest полная замена содержимого документа HTML-разметкой
type ReplaceDocumentRequest struct {
	DocumentID  string `json:"documentId" validate:"required"`
	Description string `json:"description"`
}

// AppendDocumentRequest дописывает HTML в конец документа
type AppendDocumentRequest struct {
	DocumentID string `json:"documentId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// JSONDocumentRequest тело replaceJSONDocument и appendJSONDocument.
// Content массив узлов документа.
type JSONDocumentRequest struct {
	DocumentID string          `json:"documentId" validate:"required"`
	Content    json.RawMessage `json:"content" validate:"required"`
}

type GetDocumentHistoryRequest struct {
	DocumentID string
	Limit      int
	Offset     int
}
