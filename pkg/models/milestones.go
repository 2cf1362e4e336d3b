package models

type Milestone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	DueStart    string   `json:"dueStart,omitempty"`
	DueEnd      string   `json:"dueEnd,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Completed   bool     `json:"completed"`
	Board       string   `json:"board,omitempty"`
	ProjectID   string   `json:"projectId,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Color       string   `json:"color,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type MilestoneResponse struct {
	Milestone Milestone `json:"milestone"`
}

type MilestonesResponse struct {
	Milestones []Milestone `json:"milestones"`
}

type CreateMilestoneRequest struct {
	Name        string   `json:"name" validate:"required"`
	Board       string   `json:"board" validate:"required"`
	Project     string   `json:"project" validate:"required"`
	Description string   `json:"description,omitempty"`
	DueStart    string   `json:"dueStart,omitempty"`
	DueEnd      string   `json:"dueEnd,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Color       Color    `json:"color,omitempty"`
}

// EditMilestoneRequest идентификатор уходит в API как _id
type EditMilestoneRequest struct {
	MilestoneID string `json:"_id" validate:"required"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

type ToggleMilestoneRequest struct {
	MilestoneID string `json:"milestoneId" validate:"required"`
	Completed   bool   `json:"completed"`
}
