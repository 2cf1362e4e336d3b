package tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aisa-it/vaiz.go/internal/vaiz/mcp/logger"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/gofrs/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

var spaceTools = []Tool{
	{
		mcp.NewTool(
			"get_projects",
			mcp.WithDescription("Get all projects in the workspace. Returns a list of projects with their IDs, names, and metadata."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		getProjects,
	},
	{
		mcp.NewTool(
			"get_project",
			mcp.WithDescription("Get detailed information about a specific project by its ID."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("projectId", mcp.Required(), mcp.Description("The project ID")),
		),
		getProject,
	},
	{
		mcp.NewTool(
			"get_profile",
			mcp.WithDescription("Get the current user's profile information."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		getProfile,
	},
	{
		mcp.NewTool(
			"get_space",
			mcp.WithDescription("Get information about a specific space."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("spaceId", mcp.Description("The space ID (optional, uses configured space if not provided)")),
		),
		getSpace,
	},
	{
		mcp.NewTool(
			"get_space_members",
			mcp.WithDescription("Get all members in the current space."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		getSpaceMembers,
	},
	{
		mcp.NewTool(
			"get_boards",
			mcp.WithDescription("Get all boards in the workspace."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		getBoards,
	},
	{
		mcp.NewTool(
			"create_board_group",
			mcp.WithDescription("Create a new board group (column) on a board."),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the group (e.g., \"To do\", \"In progress\", \"Done\")")),
			mcp.WithString("boardId", mcp.Required(), mcp.Description("Board ID where the group will be created")),
			mcp.WithArray("boardTypeIds",
				mcp.Description("Optional array of board type IDs to associate with this group"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
		),
		createBoardGroup,
	},
	{
		mcp.NewTool(
			"edit_board_group",
			mcp.WithDescription("Edit an existing board group (column). Can update name and associated task types."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("groupId", mcp.Required(), mcp.Description("ID of the group to edit")),
			mcp.WithString("boardId", mcp.Required(), mcp.Description("Board ID")),
			mcp.WithString("name", mcp.Description("New name for the group")),
			mcp.WithArray("boardTypeIds",
				mcp.Description("New array of board type IDs to associate with this group"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
		),
		editBoardGroup,
	},
	{
		mcp.NewTool(
			"create_board_type",
			mcp.WithDescription("Create a new board type (task type) on a board. Types define categories like Bug, Feature, etc."),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the type (e.g., \"Bug\", \"Feature\", \"Task\")")),
			mcp.WithString("boardId", mcp.Required(), mcp.Description("Board ID where the type will be created")),
			mcp.WithString("icon", mcp.Description("Icon for the type (optional)")),
			mcp.WithString("color", mcp.Description("Color for the type (optional)")),
		),
		createBoardType,
	},
	{
		mcp.NewTool(
			"edit_board_type",
			mcp.WithDescription("Edit an existing board type (task type). Can update name, icon, and color."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("typeId", mcp.Required(), mcp.Description("ID of the type to edit")),
			mcp.WithString("boardId", mcp.Required(), mcp.Description("Board ID")),
			mcp.WithString("name", mcp.Description("New name for the type")),
			mcp.WithString("icon", mcp.Description("New icon for the type")),
			mcp.WithString("color", mcp.Description("New color for the type")),
		),
		editBoardType,
	},
	{
		mcp.NewTool(
			"get_milestones",
			mcp.WithDescription("Get milestones for a specific project."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("projectId", mcp.Required(), mcp.Description("The project ID")),
		),
		getMilestones,
	},
	{
		mcp.NewTool(
			"create_milestone",
			mcp.WithDescription("Create a new milestone in a project."),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("name", mcp.Required(), mcp.Description("Milestone name")),
			mcp.WithString("project", mcp.Required(), mcp.Description("Project ID")),
			mcp.WithString("board", mcp.Required(), mcp.Description("Board ID")),
			mcp.WithString("dueStart", mcp.Description("Start date in ISO format (e.g., \"2025-01-01T00:00:00Z\")")),
			mcp.WithString("dueEnd", mcp.Description("Due date in ISO format (e.g., \"2025-12-31T23:59:59Z\")")),
			mcp.WithString("description", mcp.Description("Milestone description (optional)")),
			mcp.WithString("color", mcp.Description("Color name (e.g., \"Blue\")")),
			mcp.WithArray("tags",
				mcp.Description("Tags for the milestone"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
		),
		createMilestone,
	},
	{
		mcp.NewTool(
			"download_image",
			mcp.WithDescription("Download an image from URL and return it for analysis. The temporary file is deleted afterwards. Works for Vaiz attachments and external URLs."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("imageUrl", mcp.Required(), mcp.Description("URL of the image to download and analyze")),
			mcp.WithString("localPath", mcp.Description("Optional temporary path where to save the image before analysis")),
		),
		downloadImage,
	},
}

func GetSpaceTools(client *vaiz.Client) []server.ServerTool {
	return serverTools(client, spaceTools)
}

func getProjects(ctx context.Context, client *vaiz.Client, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := client.GetProjects(ctx)
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getProject(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "projectId"); res != nil {
		return res, nil
	}
	resp, err := client.GetProject(ctx, stringArg(args, "projectId"))
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getProfile(ctx context.Context, client *vaiz.Client, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := client.GetProfile(ctx)
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getSpace(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := client.GetSpace(ctx, stringArg(request.GetArguments(), "spaceId"))
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getSpaceMembers(ctx context.Context, client *vaiz.Client, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := client.GetSpaceMembers(ctx)
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getBoards(ctx context.Context, client *vaiz.Client, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := client.GetBoards(ctx)
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func createBoardGroup(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "name", "boardId"); res != nil {
		return res, nil
	}
	resp, err := client.CreateBoardGroup(ctx, models.CreateBoardGroupRequest{
		BoardID:      stringArg(args, "boardId"),
		Name:         stringArg(args, "name"),
		BoardTypeIDs: stringsArg(args, "boardTypeIds"),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func editBoardGroup(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "groupId", "boardId"); res != nil {
		return res, nil
	}
	resp, err := client.EditBoardGroup(ctx, models.EditBoardGroupRequest{
		BoardGroupID: stringArg(args, "groupId"),
		BoardID:      stringArg(args, "boardId"),
		Name:         stringArg(args, "name"),
		BoardTypeIDs: stringsArg(args, "boardTypeIds"),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func createBoardType(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "name", "boardId"); res != nil {
		return res, nil
	}
	resp, err := client.CreateBoardType(ctx, models.CreateBoardTypeRequest{
		BoardID: stringArg(args, "boardId"),
		Label:   stringArg(args, "name"),
		Icon:    models.Icon(stringArg(args, "icon")),
		Color:   models.Color(stringArg(args, "color")),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func editBoardType(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "typeId", "boardId"); res != nil {
		return res, nil
	}
	resp, err := client.EditBoardType(ctx, models.EditBoardTypeRequest{
		BoardTypeID: stringArg(args, "typeId"),
		BoardID:     stringArg(args, "boardId"),
		Label:       stringArg(args, "name"),
		Icon:        models.Icon(stringArg(args, "icon")),
		Color:       models.Color(stringArg(args, "color")),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getMilestones(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "projectId"); res != nil {
		return res, nil
	}
	resp, err := client.GetMilestones(ctx, stringArg(args, "projectId"))
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func createMilestone(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "name", "project", "board"); res != nil {
		return res, nil
	}
	resp, err := client.CreateMilestone(ctx, models.CreateMilestoneRequest{
		Name:        stringArg(args, "name"),
		Board:       stringArg(args, "board"),
		Project:     stringArg(args, "project"),
		Description: stringArg(args, "description"),
		DueStart:    stringArg(args, "dueStart"),
		DueEnd:      stringArg(args, "dueEnd"),
		Tags:        stringsArg(args, "tags"),
		Color:       models.Color(stringArg(args, "color")),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

// downloadImage возвращает изображение в base64 и удаляет временный файл
func downloadImage(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "imageUrl"); res != nil {
		return res, nil
	}
	imageURL := stringArg(args, "imageUrl")

	path := stringArg(args, "localPath")
	if path == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return logger.Error(err), nil
		}
		path = filepath.Join(os.TempDir(), "vaiz-image-"+id.String()+".png")
	}
	defer os.Remove(path)

	if _, err := client.DownloadImage(ctx, imageURL, path); err != nil {
		return logger.Error(err), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return logger.Error(err), nil
	}

	mimeType, ok := imageMimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		mimeType = "image/png"
	}
	info, _ := json.Marshal(map[string]any{
		"success": true,
		"message": "Image downloaded and ready for analysis",
		"url":     imageURL,
	})
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewImageContent(base64.StdEncoding.EncodeToString(data), mimeType),
			mcp.NewTextContent(string(info)),
		},
	}, nil
}
