package tools

import (
	"context"

	"github.com/aisa-it/vaiz.go/internal/vaiz/mcp/logger"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const historyHint = "Each history entry contains creatorId field - use get_space_members to get member details and display the author name (member.fullName) for each change."

var tasksTools = []Tool{
	{
		mcp.NewTool(
			"get_tasks",
			mcp.WithDescription("Get a list of tasks from Vaiz with optional filtering. Results are cached for 5 minutes - use clear_tasks_cache to force refresh."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithArray("ids",
				mcp.Description("Filter by specific task IDs"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
			mcp.WithString("board", mcp.Description("Filter tasks by board ID")),
			mcp.WithString("project", mcp.Description("Filter tasks by project ID")),
			mcp.WithArray("assignees",
				mcp.Description("Filter tasks by assignee member IDs (use Member.id from get_space_members)"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
			mcp.WithString("parentTask", mcp.Description("Filter by parent task ID (to get subtasks)")),
			mcp.WithArray("milestones",
				mcp.Description("Filter tasks by milestone IDs"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
			mcp.WithBoolean("completed", mcp.Description("Filter by completion status")),
			mcp.WithBoolean("archived", mcp.Description("Filter by archived status")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of tasks to return (1-50, default: 50)")),
			mcp.WithNumber("skip", mcp.Description("Number of tasks to skip for pagination (default: 0)")),
		),
		getTasks,
	},
	{
		mcp.NewTool(
			"clear_tasks_cache",
			mcp.WithDescription("Clear the tasks cache. Use this when you need to force refresh task data after making changes."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		clearTasksCache,
	},
	{
		mcp.NewTool(
			"get_task",
			mcp.WithDescription("Get detailed information about a specific task by its slug (e.g., 'TASK-123')."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("slug",
				mcp.Required(),
				mcp.Description("The task slug (e.g., 'TASK-123')"),
			),
		),
		getTask,
	},
	{
		mcp.NewTool(
			"create_task",
			append([]mcp.ToolOption{
				mcp.WithDescription("Create a new task in Vaiz. Returns the created task with its assigned slug and ID."),
				mcp.WithIdempotentHintAnnotation(false),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithString("name", mcp.Required(), mcp.Description("Task name/title")),
				mcp.WithString("board", mcp.Required(), mcp.Description("Board ID where the task will be created")),
				mcp.WithString("project", mcp.Description("Project ID (optional)")),
			}, taskFieldOptions...)...,
		),
		createTask,
	},
	{
		mcp.NewTool(
			"edit_task",
			append([]mcp.ToolOption{
				mcp.WithDescription("Edit an existing task. Only provide fields you want to update."),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithString("taskId", mcp.Required(), mcp.Description("The task ID to edit (can use HRID like 'TASK-123' or database ID)")),
				mcp.WithString("name", mcp.Description("New task name")),
			}, taskFieldOptions...)...,
		),
		editTask,
	},
	{
		mcp.NewTool(
			"set_task_blocker",
			mcp.WithDescription("Set a blocking relationship between two tasks. Both tasks are updated."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("blockedTaskId", mcp.Required(), mcp.Description("The ID of the task that is being blocked")),
			mcp.WithString("blockerTaskId", mcp.Required(), mcp.Description("The ID of the task that blocks the other task")),
		),
		setTaskBlocker,
	},
	{
		mcp.NewTool(
			"get_history",
			append([]mcp.ToolOption{
				mcp.WithDescription("DEPRECATED: Use get_task_history, get_document_history, etc. instead. Get history of changes for an entity. " + historyHint),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithString("kind",
					mcp.Required(),
					mcp.Description("Entity type (e.g., \"Task\", \"Document\", \"Project\")"),
					mcp.Enum(string(models.KindTask), string(models.KindDocument), string(models.KindProject), string(models.KindMilestone), string(models.KindMember), string(models.KindSpace), string(models.KindUser)),
				),
				mcp.WithString("kindId", mcp.Required(), mcp.Description("Entity ID")),
			}, pageOptions...)...,
		),
		getHistory,
	},
	historyTool("get_task_history", "taskId", "Task ID or slug (e.g., \"TASK-123\")", "task", (*vaiz.Client).GetTaskHistory),
	historyTool("get_document_history", "documentId", "Document ID", "document", documentHistory),
	historyTool("get_project_history", "projectId", "Project ID", "project", (*vaiz.Client).GetProjectHistory),
	historyTool("get_milestone_history", "milestoneId", "Milestone ID", "milestone", (*vaiz.Client).GetMilestoneHistory),
	historyTool("get_member_history", "memberId", "Member ID", "member", (*vaiz.Client).GetMemberHistory),
	historyTool("get_space_history", "spaceId", "Space ID", "space", (*vaiz.Client).GetSpaceHistory),
}

// historyFunc запрос истории одного вида сущности
type historyFunc func(client *vaiz.Client, ctx context.Context, id string, limit, offset int) (*models.GetHistoryResponse, error)

func documentHistory(client *vaiz.Client, ctx context.Context, id string, limit, offset int) (*models.GetHistoryResponse, error) {
	return client.GetDocumentHistory(ctx, models.GetDocumentHistoryRequest{DocumentID: id, Limit: limit, Offset: offset})
}

var pageOptions = []mcp.ToolOption{
	mcp.WithNumber("limit", mcp.Description("Maximum number of history entries to return (optional)")),
	mcp.WithNumber("offset", mcp.Description("Number of entries to skip (optional)")),
}

// taskFieldOptions общие поля create_task и edit_task
var taskFieldOptions = []mcp.ToolOption{
	mcp.WithString("group", mcp.Description("Group ID (board column)")),
	mcp.WithString("description", mcp.Description("Task description")),
	mcp.WithString("priority",
		mcp.Description("Task priority: 'urgent', 'high', 'medium', 'normal', or 'low'"),
		mcp.Enum("urgent", "high", "medium", "normal", "low"),
	),
	mcp.WithBoolean("completed", mcp.Description("Completion status")),
	mcp.WithArray("assignees",
		mcp.Description("Member IDs to assign to the task (use Member.id from get_space_members, NOT _id)"),
		mcp.Items(map[string]interface{}{"type": "string"}),
	),
	mcp.WithArray("types",
		mcp.Description("Task type IDs"),
		mcp.Items(map[string]interface{}{"type": "string"}),
	),
	mcp.WithString("parentTask", mcp.Description("Parent task ID (for subtasks)")),
	mcp.WithArray("subtasks",
		mcp.Description("Subtask IDs"),
		mcp.Items(map[string]interface{}{"type": "string"}),
	),
	mcp.WithArray("milestones",
		mcp.Description("Milestone IDs"),
		mcp.Items(map[string]interface{}{"type": "string"}),
	),
	mcp.WithString("dueStart", mcp.Description("Start date in ISO format (e.g., \"2025-01-01T00:00:00Z\")")),
	mcp.WithString("dueEnd", mcp.Description("Due date in ISO format (e.g., \"2025-01-31T23:59:59Z\")")),
	mcp.WithArray("leftConnectors",
		mcp.Description("Task IDs that block this task (blockers)"),
		mcp.Items(map[string]interface{}{"type": "string"}),
	),
	mcp.WithArray("rightConnectors",
		mcp.Description("Task IDs that this task blocks (blocking)"),
		mcp.Items(map[string]interface{}{"type": "string"}),
	),
	mcp.WithArray("blockers",
		mcp.Description("DEPRECATED: Use leftConnectors instead"),
		mcp.Items(map[string]interface{}{"type": "string"}),
	),
	mcp.WithArray("blocking",
		mcp.Description("DEPRECATED: Use rightConnectors instead"),
		mcp.Items(map[string]interface{}{"type": "string"}),
	),
}

func GetTasksTools(client *vaiz.Client) []server.ServerTool {
	return serverTools(client, tasksTools)
}

func historyTool(name, idKey, idDescription, entity string, fetch historyFunc) Tool {
	return Tool{
		mcp.NewTool(
			name,
			append([]mcp.ToolOption{
				mcp.WithDescription("Get history of changes for a specific " + entity + ". " + historyHint),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithString(idKey, mcp.Required(), mcp.Description(idDescription)),
			}, pageOptions...)...,
		),
		func(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			if res := required(args, idKey); res != nil {
				return res, nil
			}
			limit, _ := intArg(args, "limit")
			offset, _ := intArg(args, "offset")
			resp, err := fetch(client, ctx, stringArg(args, idKey), limit, offset)
			if err != nil {
				return logger.Error(err), nil
			}
			return mcp.NewToolResultJSON(resp)
		},
	}
}

func getTasks(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	req := models.GetTasksRequest{
		IDs:        stringsArg(args, "ids"),
		Board:      stringArg(args, "board"),
		Project:    stringArg(args, "project"),
		Assignees:  stringsArg(args, "assignees"),
		ParentTask: stringArg(args, "parentTask"),
		Milestones: stringsArg(args, "milestones"),
		Completed:  boolArg(args, "completed"),
		Archived:   boolArg(args, "archived"),
	}
	req.Limit, _ = intArg(args, "limit")
	req.Skip, _ = intArg(args, "skip")

	resp, err := client.GetTasks(ctx, req)
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func clearTasksCache(_ context.Context, client *vaiz.Client, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client.ClearTasksCache()
	return success("Tasks cache cleared successfully")
}

func getTask(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "slug"); res != nil {
		return res, nil
	}
	resp, err := client.GetTask(ctx, stringArg(args, "slug"))
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func createTask(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "name", "board"); res != nil {
		return res, nil
	}

	req := models.CreateTaskRequest{
		Name:        stringArg(args, "name"),
		Board:       stringArg(args, "board"),
		Group:       stringArg(args, "group"),
		Project:     stringArg(args, "project"),
		Description: stringArg(args, "description"),
		Completed:   boolArg(args, "completed"),
		Assignees:   stringsArg(args, "assignees"),
		Types:       stringsArg(args, "types"),
		ParentTask:  stringArg(args, "parentTask"),
		Subtasks:    stringsArg(args, "subtasks"),
		Milestones:  stringsArg(args, "milestones"),
		DueStart:    stringArg(args, "dueStart"),
		DueEnd:      stringArg(args, "dueEnd"),
		Blockers:    firstStrings(args, "leftConnectors", "blockers"),
		Blocking:    firstStrings(args, "rightConnectors", "blocking"),
	}
	// неизвестный приоритет при создании считается normal
	if p := stringArg(args, "priority"); p != "" {
		priority, _ := models.ParsePriority(p)
		req.Priority = &priority
	}

	resp, err := client.CreateTask(ctx, req, nil)
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func editTask(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "taskId"); res != nil {
		return res, nil
	}

	req := models.EditTaskRequest{
		TaskID:      stringArg(args, "taskId"),
		Name:        stringArg(args, "name"),
		Group:       stringArg(args, "group"),
		Description: stringArg(args, "description"),
		Completed:   boolArg(args, "completed"),
		Assignees:   stringsArg(args, "assignees"),
		Types:       stringsArg(args, "types"),
		ParentTask:  stringArg(args, "parentTask"),
		Subtasks:    stringsArg(args, "subtasks"),
		Milestones:  stringsArg(args, "milestones"),
		DueStart:    stringArg(args, "dueStart"),
		DueEnd:      stringArg(args, "dueEnd"),
		Blockers:    firstStrings(args, "leftConnectors", "blockers"),
		Blocking:    firstStrings(args, "rightConnectors", "blocking"),
	}
	if priority, ok := models.ParsePriority(stringArg(args, "priority")); ok {
		req.Priority = &priority
	}

	resp, err := client.EditTask(ctx, req)
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func setTaskBlocker(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "blockedTaskId", "blockerTaskId"); res != nil {
		return res, nil
	}
	resp, err := client.SetTaskBlocker(ctx, models.SetTaskBlockerRequest{
		BlockedTaskID: stringArg(args, "blockedTaskId"),
		BlockerTaskID: stringArg(args, "blockerTaskId"),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getHistory(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "kind", "kindId"); res != nil {
		return res, nil
	}
	limit, _ := intArg(args, "limit")
	offset, _ := intArg(args, "offset")
	resp, err := client.GetHistory(ctx, models.GetHistoryRequest{
		Kind:   models.Kind(stringArg(args, "kind")),
		KindID: stringArg(args, "kindId"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}
