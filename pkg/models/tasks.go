package models

import "encoding/json"

// CreateTaskRequest запрос создания задачи.
// Blockers уходят в API как leftConnectors, Blocking как rightConnectors.
// nil означает "не передавать", пустой срез очищает связи.
type CreateTaskRequest struct {
	Name         string        `json:"name" validate:"required"`
	Board        string        `json:"board" validate:"required"`
	Group        string        `json:"group,omitempty"`
	Project      string        `json:"project,omitempty"`
	Description  string        `json:"description,omitempty"`
	Priority     *TaskPriority `json:"priority,omitempty" validate:"omitempty,min=0,max=3"`
	Completed    *bool         `json:"completed,omitempty"`
	Assignees    []string      `json:"assignees,omitempty"`
	Types        []string      `json:"types,omitempty"`
	ParentTask   string        `json:"parentTask,omitempty"`
	Subtasks     []string      `json:"subtasks,omitempty"`
	Milestones   []string      `json:"milestones,omitempty"`
	DueStart     string        `json:"dueStart,omitempty"`
	DueEnd       string        `json:"dueEnd,omitempty"`
	Blockers     []string      `json:"-"`
	Blocking     []string      `json:"-"`
	CustomFields []CustomField `json:"customFields,omitempty" validate:"dive"`
	Files        []TaskFile    `json:"files,omitempty"`
	Followers    TaskFollowers `json:"followers,omitempty"`
}

func (r CreateTaskRequest) MarshalJSON() ([]byte, error) {
	type plain CreateTaskRequest
	b, err := json.Marshal(plain(r))
	if err != nil {
		return nil, err
	}
	return withConnectors(b, r.Blockers, r.Blocking)
}

// EditTaskRequest запрос изменения задачи, передаются только заполненные поля.
type EditTaskRequest struct {
	TaskID       string        `json:"taskId" validate:"required"`
	Name         string        `json:"name,omitempty"`
	Group        string        `json:"group,omitempty"`
	Priority     *TaskPriority `json:"priority,omitempty" validate:"omitempty,min=0,max=3"`
	Completed    *bool         `json:"completed,omitempty"`
	Assignees    []string      `json:"assignees,omitempty"`
	Types        []string      `json:"types,omitempty"`
	ParentTask   string        `json:"parentTask,omitempty"`
	Subtasks     []string      `json:"subtasks,omitempty"`
	Milestones   []string      `json:"milestones,omitempty"`
	DueStart     string        `json:"dueStart,omitempty"`
	DueEnd       string        `json:"dueEnd,omitempty"`
	Blockers     []string      `json:"-"`
	Blocking     []string      `json:"-"`
	CustomFields []CustomField `json:"customFields,omitempty" validate:"dive"`
	Description  string        `json:"description,omitempty"`
	Files        []TaskFile    `json:"files,omitempty"`
	Followers    TaskFollowers `json:"followers,omitempty"`
}

func (r EditTaskRequest) MarshalJSON() ([]byte, error) {
	type plain EditTaskRequest
	b, err := json.Marshal(plain(r))
	if err != nil {
		return nil, err
	}
	return withConnectors(b, r.Blockers, r.Blocking)
}

// withConnectors дописывает leftConnectors/rightConnectors в готовый JSON объект.
// Пустой, но не nil срез сохраняется как [].
func withConnectors(obj []byte, blockers, blocking []string) ([]byte, error) {
	if blockers == nil && blocking == nil {
		return obj, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(obj, &m); err != nil {
		return nil, err
	}
	for key, ids := range map[string][]string{"leftConnectors": blockers, "rightConnectors": blocking} {
		if ids == nil {
			continue
		}
		raw, err := json.Marshal(ids)
		if err != nil {
			return nil, err
		}
		m[key] = raw
	}
	return json.Marshal(m)
}

type Task struct {
	ID              string        `json:"id"`
	Slug            string        `json:"slug"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Document        string        `json:"document,omitempty"`
	Priority        TaskPriority  `json:"priority"`
	Completed       bool          `json:"completed"`
	Board           string        `json:"board,omitempty"`
	Group           string        `json:"group,omitempty"`
	BoardTypeID     string        `json:"boardTypeId,omitempty"`
	ProjectID       string        `json:"projectId,omitempty"`
	AssigneeIDs     []string      `json:"assigneeIds,omitempty"`
	Assignees       []string      `json:"assignees,omitempty"`
	Milestones      []string      `json:"milestones,omitempty"`
	LeftConnectors  []string      `json:"leftConnectors,omitempty"`
	RightConnectors []string      `json:"rightConnectors,omitempty"`
	Followers       TaskFollowers `json:"followers,omitempty"`
	CustomFields    []CustomField `json:"customFields,omitempty"`
	Files           []TaskFile    `json:"files,omitempty"`
	CreatedAt       string        `json:"createdAt,omitempty"`
	UpdatedAt       string        `json:"updatedAt,omitempty"`
}

type TaskResponse struct {
	Task Task `json:"task"`
}

// TaskUploadFile локальный файл, который будет загружен и приложен к задаче
type TaskUploadFile struct {
	Path string
	Type string
}

type GetTasksRequest struct {
	IDs        []string `json:"ids,omitempty"`
	Limit      int      `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
	Skip       int      `json:"skip,omitempty" validate:"omitempty,min=0"`
	Board      string   `json:"board,omitempty"`
	Project    string   `json:"project,omitempty"`
	Assignees  []string `json:"assignees,omitempty"`
	ParentTask string   `json:"parentTask,omitempty"`
	Milestones []string `json:"milestones,omitempty"`
	Completed  *bool    `json:"completed,omitempty"`
	Archived   *bool    `json:"archived,omitempty"`
}

type GetTasksResponse struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

type SetTaskBlockerRequest struct {
	BlockedTaskID string `json:"blockedTaskId" validate:"required"`
	BlockerTaskID string `json:"blockerTaskId" validate:"required,nefield=BlockedTaskID"`
}

type SetTaskBlockerResponse struct {
	BlockedTask Task `json:"blockedTask"`
	BlockerTask Task `json:"blockerTask"`
}
