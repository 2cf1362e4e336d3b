package vaiz

import (
	"context"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/models"
)

func (c *Client) GetBoards(ctx context.Context) (*models.BoardsResponse, error) {
	var resp models.BoardsResponse
	if err := c.post(ctx, "getBoards", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetBoard(ctx context.Context, boardID string) (*models.BoardResponse, error) {
	if boardID == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("boardId is required")
	}
	var resp models.BoardResponse
	if err := c.post(ctx, "getBoard", map[string]string{"boardId": boardID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// boardTypeEnvelope ответы createBoardType/editBoardType приходят в разных обертках
type boardTypeEnvelope struct {
	BoardType *models.BoardType `json:"boardType"`
	Type      *models.BoardType `json:"type"`
	Payload   *struct {
		BoardType *models.BoardType `json:"boardType"`
	} `json:"payload"`
}

func (e boardTypeEnvelope) resolve() *models.BoardTypeResponse {
	resp := &models.BoardTypeResponse{}
	switch {
	case e.BoardType != nil:
		resp.BoardType = *e.BoardType
	case e.Payload != nil && e.Payload.BoardType != nil:
		resp.BoardType = *e.Payload.BoardType
	case e.Type != nil:
		resp.BoardType = *e.Type
	}
	return resp
}

func (c *Client) CreateBoardType(ctx context.Context, req models.CreateBoardTypeRequest) (*models.BoardTypeResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var env boardTypeEnvelope
	if err := c.post(ctx, "createBoardType", req, &env); err != nil {
		return nil, err
	}
	return env.resolve(), nil
}

func (c *Client) EditBoardType(ctx context.Context, req models.EditBoardTypeRequest) (*models.BoardTypeResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var env boardTypeEnvelope
	if err := c.post(ctx, "editBoardType", req, &env); err != nil {
		return nil, err
	}
	return env.resolve(), nil
}

// CreateBoardGroup в ответе полный список групп доски
func (c *Client) CreateBoardGroup(ctx context.Context, req models.CreateBoardGroupRequest) (*models.BoardGroupsResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.BoardGroupsResponse
	if err := c.post(ctx, "createBoardGroup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EditBoardGroup(ctx context.Context, req models.EditBoardGroupRequest) (*models.BoardGroupsResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.BoardGroupsResponse
	if err := c.post(ctx, "editBoardGroup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateBoardCustomField(ctx context.Context, req models.CreateBoardCustomFieldRequest) (*models.BoardCustomFieldResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.BoardCustomFieldResponse
	if err := c.post(ctx, "createBoardCustomField", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditBoardCustomField опции обычно собираются хелперами pkg/customfields
func (c *Client) EditBoardCustomField(ctx context.Context, req models.EditBoardCustomFieldRequest) (*models.BoardCustomFieldResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.BoardCustomFieldResponse
	if err := c.post(ctx, "editBoardCustomField", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
