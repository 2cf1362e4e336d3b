package models

type CommentReaction struct {
	ReactionDbID string   `json:"reactionDbId"`
	EmojiID      string   `json:"emojiId"`
	Native       string   `json:"native,omitempty"`
	MemberIDs    []string `json:"memberIds"`
}

type Comment struct {
	ID              string            `json:"id"`
	Content         string            `json:"content"`
	AuthorID        string            `json:"authorId"`
	DocumentID      string            `json:"documentId"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
	EditedAt        string            `json:"editedAt,omitempty"`
	DeletedAt       string            `json:"deletedAt,omitempty"`
	ReplyTo         string            `json:"replyTo,omitempty"`
	Files           []UploadedFile    `json:"files"`
	Reactions       []CommentReaction `json:"reactions"`
	HasRemovedFiles bool              `json:"hasRemovedFiles"`
}

type CommentResponse struct {
	Comment Comment `json:"comment"`
}

// PostCommentRequest fileIds обязателен для API, даже пустой.
type PostCommentRequest struct {
	DocumentID string   `json:"documentId" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	FileIDs    []string `json:"fileIds"`
	ReplyTo    string   `json:"replyTo,omitempty"`
}

type GetCommentsRequest struct {
	DocumentID string `json:"documentId" validate:"required"`
}

type GetCommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type EditCommentRequest struct {
	CommentID     string   `json:"commentId" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	AddFileIDs    []string `json:"addFileIds,omitempty"`
	OrderFileIDs  []string `json:"orderFileIds,omitempty"`
	RemoveFileIDs []string `json:"removeFileIds,omitempty"`
}

type DeleteCommentRequest struct {
	CommentID string `json:"commentId" validate:"required"`
}

type AddReactionRequest struct {
	CommentID string              `validate:"required"`
	Reaction  CommentReactionType `validate:"required"`
}

// ReactToCommentRequest реакция произвольным эмодзи
type ReactToCommentRequest struct {
	CommentID  string   `json:"commentId" validate:"required"`
	ID         string   `json:"id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Native     string   `json:"native" validate:"required"`
	Unified    string   `json:"unified" validate:"required"`
	Keywords   []string `json:"keywords,omitempty"`
	Shortcodes string   `json:"shortcodes,omitempty"`
}

type ReactToCommentResponse struct {
	Reactions []CommentReaction `json:"reactions"`
}
