// Пакет models описывает перечисления и структуры запросов/ответов удаленного API Vaiz.
package models

// Kind тип сущности, на которую ссылаются упоминания, документы и история
type Kind string

const (
	KindUser      Kind = "User"
	KindDocument  Kind = "Document"
	KindTask      Kind = "Task"
	KindMilestone Kind = "Milestone"
	KindProject   Kind = "Project"
	KindSpace     Kind = "Space"
	KindMember    Kind = "Member"
)

func (k Kind) Valid() bool {
	switch k {
	case KindUser, KindDocument, KindTask, KindMilestone, KindProject, KindSpace, KindMember:
		return true
	}
	return false
}

type TaskPriority int

const (
	PriorityLow    TaskPriority = 0
	PriorityNormal TaskPriority = 1
	PriorityMedium TaskPriority = 2
	PriorityHigh   TaskPriority = 3
)

// ParsePriority разбирает текстовое имя приоритета. urgent приравнивается к high.
func ParsePriority(s string) (TaskPriority, bool) {
	switch s {
	case "low":
		return PriorityLow, true
	case "normal":
		return PriorityNormal, true
	case "medium":
		return PriorityMedium, true
	case "high", "urgent":
		return PriorityHigh, true
	}
	return PriorityNormal, false
}

type AvatarMode int

type CustomFieldType string

const (
	FieldText          CustomFieldType = "Text"
	FieldNumber        CustomFieldType = "Number"
	FieldCheckbox      CustomFieldType = "Checkbox"
	FieldDate          CustomFieldType = "Date"
	FieldMember        CustomFieldType = "Member"
	FieldTaskRelations CustomFieldType = "TaskRelations"
	FieldSelect        CustomFieldType = "Select"
	FieldUrl           CustomFieldType = "Url"
)

// Color цвет опции select-поля
type Color string

const (
	ColorRed     Color = "Red"
	ColorOrange  Color = "Orange"
	ColorYellow  Color = "Yellow"
	ColorGreen   Color = "Green"
	ColorTeal    Color = "Teal"
	ColorBlue    Color = "Blue"
	ColorPurple  Color = "Purple"
	ColorMagenta Color = "Magenta"
	ColorGray    Color = "Gray"
)

// Icon иконка опции select-поля
type Icon string

const (
	IconFlag   Icon = "Flag"
	IconCircle Icon = "Circle"
	IconTarget Icon = "Target"
	IconCrown  Icon = "Crown"
	IconFire   Icon = "Fire"
	IconStar   Icon = "Star"
	IconCheck  Icon = "Check"
	IconAlert  Icon = "Alert"
)

type CommentReactionType string

const (
	ReactionLike      CommentReactionType = "like"
	ReactionLove      CommentReactionType = "love"
	ReactionLaugh     CommentReactionType = "laugh"
	ReactionSurprised CommentReactionType = "surprised"
	ReactionSad       CommentReactionType = "sad"
	ReactionAngry     CommentReactionType = "angry"
)

// ReactionEmoji данные эмодзи, отправляемые в reactToComment
type ReactionEmoji struct {
	ID        string
	Name      string
	Native    string
	Unified   string
	Shortcode string
}

var CommentReactions = map[CommentReactionType]ReactionEmoji{
	ReactionLike:      {ID: "+1", Name: "Thumbs Up", Native: "👍", Unified: "1f44d", Shortcode: ":+1:"},
	ReactionLove:      {ID: "heart", Name: "Heart", Native: "❤️", Unified: "2764-fe0f", Shortcode: ":heart:"},
	ReactionLaugh:     {ID: "laughing", Name: "Laughing", Native: "😆", Unified: "1f606", Shortcode: ":laughing:"},
	ReactionSurprised: {ID: "open_mouth", Name: "Open Mouth", Native: "😮", Unified: "1f62e", Shortcode: ":open_mouth:"},
	ReactionSad:       {ID: "disappointed", Name: "Disappointed", Native: "😞", Unified: "1f61e", Shortcode: ":disappointed:"},
	ReactionAngry:     {ID: "angry", Name: "Angry", Native: "😠", Unified: "1f620", Shortcode: ":angry:"},
}

// EmbedType провайдер встраиваемого контента
type EmbedType string

const (
	EmbedYouTube     EmbedType = "YouTube"
	EmbedFigma       EmbedType = "Figma"
	EmbedVimeo       EmbedType = "Vimeo"
	EmbedCodeSandbox EmbedType = "CodeSandbox"
	EmbedGitHubGist  EmbedType = "GitHub Gist"
	EmbedMiro        EmbedType = "Miro"
	EmbedIframe      EmbedType = "Iframe"
)

var EmbedTypes = []EmbedType{EmbedYouTube, EmbedFigma, EmbedVimeo, EmbedCodeSandbox, EmbedGitHubGist, EmbedMiro, EmbedIframe}
