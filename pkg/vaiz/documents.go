package vaiz

import (
	"context"
	"encoding/json"
	"log/slog"

	policy "github.com/aisa-it/vaiz.go/internal/vaiz/redactor-policy"
	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/docnodes"
	"github.com/aisa-it/vaiz.go/pkg/models"
)

func (c *Client) GetDocument(ctx context.Context, documentID string) (*models.DocumentResponse, error) {
	if documentID == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("documentId is required")
	}
	var resp models.DocumentResponse
	if err := c.post(ctx, "getDocument", map[string]string{"documentId": documentID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetDocuments(ctx context.Context, req models.GetDocumentsRequest) (*models.GetDocumentsResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.GetDocumentsResponse
	if err := c.post(ctx, "getDocuments", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateDocument(ctx context.Context, req models.CreateDocumentRequest) (*models.DocumentResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.DocumentResponse
	if err := c.post(ctx, "createDocument", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EditDocument(ctx context.Context, req models.EditDocumentRequest) (*models.DocumentResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.DocumentResponse
	if err := c.post(ctx, "editDocument", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReplaceDocument заменяет содержимое документа HTML текстом. HTML очищается перед отправкой.
func (c *Client) ReplaceDocument(ctx context.Context, documentID, description string) error {
	req := models.ReplaceDocumentRequest{DocumentID: documentID, Description: policy.Sanitize(description)}
	if err := c.validate(req); err != nil {
		return err
	}
	return c.post(ctx, "replaceDocument", req, nil)
}

// AppendDocument дописывает HTML в конец документа
func (c *Client) AppendDocument(ctx context.Context, documentID, content string) error {
	req := models.AppendDocumentRequest{DocumentID: documentID, Content: policy.Sanitize(content)}
	if err := c.validate(req); err != nil {
		return err
	}
	return c.post(ctx, "appendDocument", req, nil)
}

// ReplaceJSONDocument заменяет содержимое документа деревом узлов
func (c *Client) ReplaceJSONDocument(ctx context.Context, documentID string, nodes ...docnodes.Node) error {
	return c.sendJSONDocument(ctx, "replaceJSONDocument", documentID, nodes)
}

// AppendJSONDocument дописывает узлы в конец документа
func (c *Client) AppendJSONDocument(ctx context.Context, documentID string, nodes ...docnodes.Node) error {
	return c.sendJSONDocument(ctx, "appendJSONDocument", documentID, nodes)
}

func (c *Client) sendJSONDocument(ctx context.Context, endpoint, documentID string, nodes []docnodes.Node) error {
	if len(nodes) == 0 {
		return apierrors.ErrInvalidDocument.WithFormattedMessage("at least one node is required")
	}
	content, err := docnodes.Marshal(nodes...)
	if err != nil {
		return apierrors.ErrInvalidDocument.WithFormattedMessage(err.Error())
	}
	req := models.JSONDocumentRequest{DocumentID: documentID, Content: content}
	if err := c.validate(req); err != nil {
		return err
	}
	return c.post(ctx, endpoint, req, nil)
}

type jsonDocumentResponse struct {
	Payload *struct {
		JSON    string             `json:"json"`
		Content []docnodes.RawNode `json:"content"`
	} `json:"payload"`
	Content []docnodes.RawNode `json:"content"`
}

// GetJSONDocument возвращает узлы верхнего уровня документа.
// API отдает payload.json строкой, содержимое лежит в default.content.
// Нераспознанная строка json логируется, результатом будет пустой список.
func (c *Client) GetJSONDocument(ctx context.Context, documentID string) ([]docnodes.RawNode, error) {
	if documentID == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("documentId is required")
	}
	var resp jsonDocumentResponse
	if err := c.post(ctx, "getJSONDocument", map[string]string{"documentId": documentID}, &resp); err != nil {
		return nil, err
	}

	if resp.Payload != nil && resp.Payload.JSON != "" {
		var parsed struct {
			Default struct {
				Content []docnodes.RawNode `json:"content"`
			} `json:"default"`
		}
		if err := json.Unmarshal([]byte(resp.Payload.JSON), &parsed); err != nil {
			slog.Error("Parse document JSON", "documentId", documentID, "err", err)
			return []docnodes.RawNode{}, nil
		}
		return orEmpty(parsed.Default.Content), nil
	}

	if resp.Payload != nil && len(resp.Payload.Content) > 0 {
		return resp.Payload.Content, nil
	}
	return orEmpty(resp.Content), nil
}

func orEmpty(nodes []docnodes.RawNode) []docnodes.RawNode {
	if nodes == nil {
		return []docnodes.RawNode{}
	}
	return nodes
}

// GetDocumentHistory история изменений документа
func (c *Client) GetDocumentHistory(ctx context.Context, req models.GetDocumentHistoryRequest) (*models.GetHistoryResponse, error) {
	return c.GetHistory(ctx, models.GetHistoryRequest{
		Kind:   models.KindDocument,
		KindID: req.DocumentID,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}
