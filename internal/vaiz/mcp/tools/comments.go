package tools

import (
	"context"
	"strings"

	"github.com/aisa-it/vaiz.go/internal/vaiz/mcp/logger"
	policy "github.com/aisa-it/vaiz.go/internal/vaiz/redactor-policy"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const mentionHint = `To mention a user, use: <block-custom-mention-v2 custom="1" inline="true" data="{&quot;item&quot;:{&quot;id&quot;:&quot;USER_ID&quot;,&quot;kind&quot;:&quot;User&quot;}}"></block-custom-mention-v2>`

// reactionAliases имена реакций в верхнем регистре из прежних версий инструмента
var reactionAliases = map[string]models.CommentReactionType{
	"thumbs_up": models.ReactionLike,
	"heart":     models.ReactionLove,
	"laugh":     models.ReactionLaugh,
	"surprised": models.ReactionSurprised,
	"wow":       models.ReactionSurprised,
	"sad":       models.ReactionSad,
	"angry":     models.ReactionAngry,
}

var commentsTools = []Tool{
	{
		mcp.NewTool(
			"post_comment",
			mcp.WithDescription("Post a comment to a document in Vaiz. Supports HTML content, file attachments, and replies."),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("documentId", mcp.Required(), mcp.Description("Document ID to comment on")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Comment content (HTML supported). "+mentionHint)),
			mcp.WithArray("fileIds",
				mcp.Description("Optional list of file IDs to attach"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
			mcp.WithString("replyTo", mcp.Description("Optional parent comment ID for replies")),
		),
		postComment,
	},
	{
		mcp.NewTool(
			"get_comments",
			mcp.WithDescription("Get all comments for a document. Mentions are rendered as @Kind:id (label)."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("documentId", mcp.Required(), mcp.Description("Document ID")),
		),
		getComments,
	},
	{
		mcp.NewTool(
			"edit_comment",
			mcp.WithDescription("Edit a comment. Can update content and manage file attachments."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("commentId", mcp.Required(), mcp.Description("Comment ID to edit")),
			mcp.WithString("content", mcp.Required(), mcp.Description("New comment content (HTML supported). "+mentionHint)),
			mcp.WithArray("addFileIds",
				mcp.Description("File IDs to add"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
			mcp.WithArray("orderFileIds",
				mcp.Description("New order of file IDs"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
			mcp.WithArray("removeFileIds",
				mcp.Description("File IDs to remove"),
				mcp.Items(map[string]interface{}{"type": "string"}),
			),
		),
		editComment,
	},
	{
		mcp.NewTool(
			"delete_comment",
			mcp.WithDescription("Soft delete a comment."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(true),
			mcp.WithString("commentId", mcp.Required(), mcp.Description("Comment ID to delete")),
		),
		deleteComment,
	},
	{
		mcp.NewTool(
			"add_reaction",
			mcp.WithDescription("Add a popular emoji reaction to a comment."),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("commentId", mcp.Required(), mcp.Description("Comment ID")),
			mcp.WithString("reaction",
				mcp.Required(),
				mcp.Description("Reaction type: like, love, laugh, surprised, sad, angry (THUMBS_UP, HEART, LAUGH, SAD, SURPRISED, ANGRY are accepted too)"),
			),
		),
		addReaction,
	},
}

func GetCommentsTools(client *vaiz.Client) []server.ServerTool {
	return serverTools(client, commentsTools)
}

func parseReaction(s string) models.CommentReactionType {
	key := strings.ToLower(strings.TrimSpace(s))
	if r, ok := reactionAliases[key]; ok {
		return r
	}
	return models.CommentReactionType(key)
}

func postComment(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "documentId", "content"); res != nil {
		return res, nil
	}
	resp, err := client.PostComment(ctx, models.PostCommentRequest{
		DocumentID: stringArg(args, "documentId"),
		Content:    stringArg(args, "content"),
		FileIDs:    stringsArg(args, "fileIds"),
		ReplyTo:    stringArg(args, "replyTo"),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getComments(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "documentId"); res != nil {
		return res, nil
	}
	resp, err := client.GetComments(ctx, stringArg(args, "documentId"))
	if err != nil {
		return logger.Error(err), nil
	}
	for i := range resp.Comments {
		resp.Comments[i].Content = policy.ProcessMentions(resp.Comments[i].Content)
	}
	return mcp.NewToolResultJSON(resp)
}

func editComment(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "commentId", "content"); res != nil {
		return res, nil
	}
	resp, err := client.EditComment(ctx, models.EditCommentRequest{
		CommentID:     stringArg(args, "commentId"),
		Content:       stringArg(args, "content"),
		AddFileIDs:    stringsArg(args, "addFileIds"),
		OrderFileIDs:  stringsArg(args, "orderFileIds"),
		RemoveFileIDs: stringsArg(args, "removeFileIds"),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func deleteComment(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "commentId"); res != nil {
		return res, nil
	}
	resp, err := client.DeleteComment(ctx, stringArg(args, "commentId"))
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func addReaction(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "commentId", "reaction"); res != nil {
		return res, nil
	}
	resp, err := client.AddReaction(ctx, models.AddReactionRequest{
		CommentID: stringArg(args, "commentId"),
		Reaction:  parseReaction(stringArg(args, "reaction")),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}
