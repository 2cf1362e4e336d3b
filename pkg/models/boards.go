package models

type BoardType struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

type BoardGroup struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Limit        int      `json:"limit,omitempty"`
	Hidden       bool     `json:"hidden,omitempty"`
	BoardTypeIDs []string `json:"boardTypeIds,omitempty"`
}

type BoardCustomField struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        CustomFieldType  `json:"type"`
	BoardID     string           `json:"boardId,omitempty"`
	Description string           `json:"description,omitempty"`
	Hidden      bool             `json:"hidden,omitempty"`
	Options     []map[string]any `json:"options,omitempty"`
}

type Board struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	Project      string             `json:"project,omitempty"`
	Types        []BoardType        `json:"types"`
	Groups       []BoardGroup       `json:"groups"`
	CustomFields []BoardCustomField `json:"customFields"`
}

type BoardResponse struct {
	Board Board `json:"board"`
}

type BoardsResponse struct {
	Boards []Board `json:"boards"`
}

type CreateBoardTypeRequest struct {
	BoardID string `json:"boardId" validate:"required"`
	Label   string `json:"label" validate:"required"`
	Icon    Icon   `json:"icon,omitempty"`
	Color   Color  `json:"color,omitempty"`
}

type EditBoardTypeRequest struct {
	BoardTypeID string `json:"boardTypeId" validate:"required"`
	BoardID     string `json:"boardId" validate:"required"`
	Label       string `json:"label,omitempty"`
	Icon        Icon   `json:"icon,omitempty"`
	Color       Color  `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	Hidden      *bool  `json:"hidden,omitempty"`
}

type BoardTypeResponse struct {
	BoardType BoardType `json:"boardType"`
}

type CreateBoardGroupRequest struct {
	BoardID      string   `json:"boardId" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description,omitempty"`
	BoardTypeIDs []string `json:"boardTypeIds,omitempty"`
}

type EditBoardGroupRequest struct {
	BoardGroupID string   `json:"boardGroupId" validate:"required"`
	BoardID      string   `json:"boardId" validate:"required"`
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Limit        *int     `json:"limit,omitempty" validate:"omitempty,min=0"`
	Hidden       *bool    `json:"hidden,omitempty"`
	BoardTypeIDs []string `json:"boardTypeIds,omitempty"`
}

type BoardGroupsResponse struct {
	BoardGroups []BoardGroup `json:"boardGroups"`
}

type CreateBoardCustomFieldRequest struct {
	Name        string           `json:"name" validate:"required"`
	Type        CustomFieldType  `json:"type" validate:"required"`
	BoardID     string           `json:"boardId" validate:"required"`
	Description string           `json:"description,omitempty"`
	Hidden      bool             `json:"hidden"`
	Options     []map[string]any `json:"options,omitempty"`
}

// EditBoardCustomFieldRequest nil-поля не передаются.
type EditBoardCustomFieldRequest struct {
	FieldID     string           `json:"fieldId" validate:"required"`
	BoardID     string           `json:"boardId" validate:"required"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Hidden      *bool            `json:"hidden,omitempty"`
	Options     []map[string]any `json:"options,omitempty"`
}

type BoardCustomFieldResponse struct {
	CustomField BoardCustomField `json:"customField"`
}
