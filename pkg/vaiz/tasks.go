package vaiz

import (
	"context"
	"slices"

	taskscache "github.com/aisa-it/vaiz.go/internal/vaiz/tasks-cache"
	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"golang.org/x/sync/errgroup"
)

// CreateTask создает задачу. Если передан file, он загружается и добавляется во вложения задачи.
func (c *Client) CreateTask(ctx context.Context, req models.CreateTaskRequest, file *models.TaskUploadFile) (*models.TaskResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}

	if file != nil {
		if file.Path == "" {
			return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("file path is required")
		}
		uploaded, err := c.UploadFile(ctx, file.Path, file.Type)
		if err != nil {
			return nil, err
		}
		req.Files = append(req.Files, models.TaskFileFromUpload(uploaded.File))
	}

	var resp models.TaskResponse
	if err := c.post(ctx, "createTask", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EditTask(ctx context.Context, req models.EditTaskRequest) (*models.TaskResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	var resp models.TaskResponse
	if err := c.post(ctx, "editTask", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTask получает задачу по slug (например PRJ-12) или идентификатору
func (c *Client) GetTask(ctx context.Context, slug string) (*models.TaskResponse, error) {
	if slug == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("slug is required")
	}
	var resp models.TaskResponse
	if err := c.post(ctx, "getTask", map[string]string{"slug": slug}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTasks возвращает список задач. Ответы кешируются по пространству и параметрам запроса.
func (c *Client) GetTasks(ctx context.Context, req models.GetTasksRequest) (*models.GetTasksResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}

	key := taskscache.Key(c.spaceID, req)
	if cached, ok := c.cache.Get(key); ok {
		if c.verbose {
			c.log.Info("Cache hit for getTasks", "key", key[:8])
		}
		return &cached, nil
	}
	if c.verbose {
		c.log.Info("Cache miss for getTasks", "key", key[:8])
	}

	var resp models.GetTasksResponse
	if err := c.post(ctx, "getTasks", req, &resp); err != nil {
		return nil, err
	}
	c.cache.Store(key, resp)
	return &resp, nil
}

func (c *Client) ClearTasksCache() {
	c.cache.Clear()
	if c.verbose {
		c.log.Info("Tasks cache cleared")
	}
}

// SetTaskBlocker делает BlockerTaskID блокирующей задачей для BlockedTaskID.
// Существующие связи обеих задач сохраняются, обе задачи читаются и обновляются параллельно.
func (c *Client) SetTaskBlocker(ctx context.Context, req models.SetTaskBlockerRequest) (*models.SetTaskBlockerResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}

	var blocked, blocker *models.TaskResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		blocked, err = c.GetTask(gctx, req.BlockedTaskID)
		return err
	})
	g.Go(func() (err error) {
		blocker, err = c.GetTask(gctx, req.BlockerTaskID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	blockers := union(blocked.Task.LeftConnectors, req.BlockerTaskID)
	blocking := union(blocker.Task.RightConnectors, req.BlockedTaskID)

	var updatedBlocked, updatedBlocker *models.TaskResponse
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		updatedBlocked, err = c.EditTask(gctx, models.EditTaskRequest{TaskID: req.BlockedTaskID, Blockers: blockers})
		return err
	})
	g.Go(func() (err error) {
		updatedBlocker, err = c.EditTask(gctx, models.EditTaskRequest{TaskID: req.BlockerTaskID, Blocking: blocking})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.SetTaskBlockerResponse{
		BlockedTask: updatedBlocked.Task,
		BlockerTask: updatedBlocker.Task,
	}, nil
}

// union добавляет id в конец списка, если его там нет
func union(ids []string, id string) []string {
	out := slices.Clone(ids)
	if !slices.Contains(out, id) {
		out = append(out, id)
	}
	return out
}

// GetHistory история изменений сущности любого вида
func (c *Client) GetHistory(ctx context.Context, req models.GetHistoryRequest) (*models.GetHistoryResponse, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}
	if !req.Kind.Valid() {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("unknown kind " + string(req.Kind))
	}
	var resp models.GetHistoryResponse
	if err := c.post(ctx, "getHistory", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) historyOf(ctx context.Context, kind models.Kind, id string, limit, offset int) (*models.GetHistoryResponse, error) {
	return c.GetHistory(ctx, models.GetHistoryRequest{Kind: kind, KindID: id, Limit: limit, Offset: offset})
}

func (c *Client) GetTaskHistory(ctx context.Context, taskID string, limit, offset int) (*models.GetHistoryResponse, error) {
	return c.historyOf(ctx, models.KindTask, taskID, limit, offset)
}

func (c *Client) GetProjectHistory(ctx context.Context, projectID string, limit, offset int) (*models.GetHistoryResponse, error) {
	return c.historyOf(ctx, models.KindProject, projectID, limit, offset)
}

func (c *Client) GetMilestoneHistory(ctx context.Context, milestoneID string, limit, offset int) (*models.GetHistoryResponse, error) {
	return c.historyOf(ctx, models.KindMilestone, milestoneID, limit, offset)
}

func (c *Client) GetMemberHistory(ctx context.Context, memberID string, limit, offset int) (*models.GetHistoryResponse, error) {
	return c.historyOf(ctx, models.KindMember, memberID, limit, offset)
}

// GetSpaceHistory история текущего пространства, если spaceID пустой
func (c *Client) GetSpaceHistory(ctx context.Context, spaceID string, limit, offset int) (*models.GetHistoryResponse, error) {
	if spaceID == "" {
		spaceID = c.spaceID
	}
	return c.historyOf(ctx, models.KindSpace, spaceID, limit, offset)
}
