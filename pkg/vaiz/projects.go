package vaiz

import (
	"context"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/models"
)

func (c *Client) GetProjects(ctx context.Context) (*models.ProjectsResponse, error) {
	var resp models.ProjectsResponse
	if err := c.post(ctx, "getProjects", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetProject(ctx context.Context, projectID string) (*models.ProjectResponse, error) {
	if projectID == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("projectId is required")
	}
	var resp models.ProjectResponse
	if err := c.post(ctx, "getProject", map[string]string{"projectId": projectID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetMilestones(ctx context.Context, projectID string) (*models.MilestonesResponse, error) {
	if projectID == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("projectId is required")
	}
	var resp models.MilestonesResponse
	if err := c.post(ctx, "getMilestones", map[string]string{"projectId": projectID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetMilestone(ctx context.Context, milestoneID string) (*models.MilestoneResponse, error) {
	if milestoneID == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("milestoneId is required")
	}
	var resp models.MilestoneResponse
	if err := c.post(ctx, "getMilestone", map[string]string{"_id": milestoneID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateMilestone(ctx context.Context, req models.CreateMilestoneRequest) (*models.MilestoneResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.MilestoneResponse
	if err := c.post(ctx, "createMilestone", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EditMilestone(ctx context.Context, req models.EditMilestoneRequest) (*models.MilestoneResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.MilestoneResponse
	if err := c.post(ctx, "editMilestone", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ToggleMilestone(ctx context.Context, req models.ToggleMilestoneRequest) (*models.MilestoneResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.MilestoneResponse
	if err := c.post(ctx, "toggleMilestone", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSpace при пустом spaceID возвращает текущее пространство клиента
func (c *Client) GetSpace(ctx context.Context, spaceID string) (*models.SpaceResponse, error) {
	if spaceID == "" {
		spaceID = c.spaceID
	}
	var resp models.SpaceResponse
	if err := c.post(ctx, "getSpace", map[string]string{"spaceId": spaceID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetSpaceMembers(ctx context.Context) (*models.SpaceMembersResponse, error) {
	var resp models.SpaceMembersResponse
	if err := c.post(ctx, "getSpaceMembers", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	var resp models.ProfileResponse
	if err := c.post(ctx, "getProfile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
