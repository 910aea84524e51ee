package dto

// ── 奖项模块 DTO ──

// CreateAwardRequest 提名奖项请求
// 必填项与类型匹配校验在 Service 层完成，以便返回字段级错误
type CreateAwardRequest struct {
	CeremonyID           string `json:"ceremony_id"`
	CategoryID           string `json:"category_id"`
	Type                 string `json:"type"`
	ParticipantNomineeID string `json:"participant_nominee_id"`
	TeamNomineeID        string `json:"team_nominee_id"`
	SubmittedByID        string `json:"submitted_by_id"`
	Notes                string `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateAwardStatusRequest 修改奖项状态请求
type UpdateAwardStatusRequest struct {
	Status string `json:"status"`
}

// AwardListRequest 奖项列表 / 汇总查询参数，ceremony_id 为空表示整场活动
type AwardListRequest struct {
	CeremonyID string `form:"ceremony_id"`
}

// AwardResponse 奖项信息响应
type AwardResponse struct {
	ID                 string         `json:"id"`
	Status             string         `json:"status"`
	Type               string         `json:"type"`
	Nominee            string         `json:"nominee"`
	SubmittedAt        string         `json:"submitted_at"`
	ApprovedAt         *string        `json:"approved_at"`
	Notes              string         `json:"notes,omitempty"`
	Category           *CategoryBrief `json:"category,omitempty"`
	ParticipantNominee *PersonBrief   `json:"participant_nominee,omitempty"`
	TeamNominee        *TeamBrief     `json:"team_nominee,omitempty"`
	SubmittedBy        *PersonBrief   `json:"submitted_by,omitempty"`
	Ceremony           *CeremonyBrief `json:"ceremony,omitempty"`
}

// CategoryBrief 类别简要信息
type CategoryBrief struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Hex   string `json:"hex"`
}

// PersonBrief 人员简要信息
type PersonBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeamBrief 队伍简要信息
type TeamBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CeremonyBrief 典礼简要信息
type CeremonyBrief struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order *int   `json:"order"`
}
