package vaiz

import (
	"context"

	policy "github.com/aisa-it/vaiz.go/internal/vaiz/redactor-policy"
	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/models"
)

// PostComment публикует комментарий к документу. fileIds всегда уходит массивом.
func (c *Client) PostComment(ctx context.Context, req models.PostCommentRequest) (*models.CommentResponse, error) {
	req.Content = policy.Sanitize(req.Content)
	if req.FileIDs == nil {
		req.FileIDs = []string{}
	}
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.CommentResponse
	if err := c.post(ctx, "postComment", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetComments(ctx context.Context, documentID string) (*models.GetCommentsResponse, error) {
	req := models.GetCommentsRequest{DocumentID: documentID}
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.GetCommentsResponse
	if err := c.post(ctx, "getComments", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EditComment(ctx context.Context, req models.EditCommentRequest) (*models.CommentResponse, error) {
	req.Content = policy.Sanitize(req.Content)
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.CommentResponse
	if err := c.post(ctx, "editComment", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteComment помечает комментарий удаленным, в ответе комментарий с deletedAt
func (c *Client) DeleteComment(ctx context.Context, commentID string) (*models.CommentResponse, error) {
	req := models.DeleteCommentRequest{CommentID: commentID}
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.CommentResponse
	if err := c.post(ctx, "deleteComment", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddReaction ставит одну из стандартных реакций, данные эмодзи берутся из models.CommentReactions
func (c *Client) AddReaction(ctx context.Context, req models.AddReactionRequest) (*models.ReactToCommentResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	emoji, ok := models.CommentReactions[req.Reaction]
	if !ok {
		return nil, apierrors.ErrUnknownReaction.WithFormattedMessage(string(req.Reaction))
	}
	return c.ReactToComment(ctx, models.ReactToCommentRequest{
		CommentID:  req.CommentID,
		ID:         emoji.ID,
		Name:       emoji.Name,
		Native:     emoji.Native,
		Unified:    emoji.Unified,
		Shortcodes: emoji.Shortcode,
	})
}

// ReactToComment ставит произвольную реакцию
func (c *Client) ReactToComment(ctx context.Context, req models.ReactToCommentRequest) (*models.ReactToCommentResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.ReactToCommentResponse
	if err := c.post(ctx, "reactToComment", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
