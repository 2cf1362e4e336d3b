package models

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       any    `json:"color,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type ProjectResponse struct {
	Project Project `json:"project"`
}

type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type Space struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Color      ColorInfo  `json:"color"`
	AvatarMode AvatarMode `json:"avatarMode"`
	Avatar     string     `json:"avatar,omitempty"`
	Creator    string     `json:"creator"`
	Plan       string     `json:"plan"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
	IsForeign  bool       `json:"isForeign"`
}

type SpaceResponse struct {
	Space Space `json:"space"`
}

// Member участник пространства
type Member struct {
	ID         string     `json:"id"`
	NickName   string     `json:"nickName,omitempty"`
	FullName   string     `json:"fullName,omitempty"`
	Email      string     `json:"email"`
	Avatar     string     `json:"avatar,omitempty"`
	AvatarMode AvatarMode `json:"avatarMode"`
	Color      ColorInfo  `json:"color"`
	Space      string     `json:"space"`
	Status     string     `json:"status"`
	JoinedDate string     `json:"joinedDate"`
	UpdatedAt  string     `json:"updatedAt"`
}

type SpaceMembersResponse struct {
	Members []Member `json:"members"`
}

type Profile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	FullName   string     `json:"fullName,omitempty"`
	Email      string     `json:"email"`
	Avatar     string     `json:"avatar,omitempty"`
	AvatarMode AvatarMode `json:"avatarMode"`
	Color      ColorInfo  `json:"color"`
	MemberID   string     `json:"memberId,omitempty"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

type ProfileResponse struct {
	Profile Profile `json:"profile"`
}
