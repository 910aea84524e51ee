package dto

// ── 基础数据 DTO ──

// CategoryListRequest 类别列表查询参数，type 非空时仅返回允许该奖项类型的类别
type CategoryListRequest struct {
	Type string `form:"type" binding:"omitempty,oneof=individual team overall"`
}

// CeremonyResponse 典礼响应
type CeremonyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order *int   `json:"order"`
	Notes string `json:"notes,omitempty"`
}

// CategoryResponse 类别响应
type CategoryResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Hex         string   `json:"hex"`
	Type        []string `json:"type"`
	Description string   `json:"description,omitempty"`
}

// ParticipantResponse 参赛者响应
type ParticipantResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Team  *TeamBrief `json:"team,omitempty"`
	Nganh string     `json:"nganh,omitempty"`
}

// TeamResponse 队伍响应
type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
