package model

// ── 奖项状态 ──

const (
	AwardStatusPending  = "pending"
	AwardStatusApproved = "approved"
	AwardStatusRejected = "rejected"
)

// AwardStatuses 所有合法状态，任意状态之间均可互相切换
var AwardStatuses = []string{AwardStatusPending, AwardStatusApproved, AwardStatusRejected}

// IsValidAwardStatus 判断状态值是否合法
func IsValidAwardStatus(status string) bool {
	for _, s := range AwardStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ── 奖项类型 ──

const (
	AwardTypeIndividual = "individual"
	AwardTypeTeam       = "team"
	AwardTypeOverall    = "overall"
)

// AwardTypes 所有合法奖项类型
var AwardTypes = []string{AwardTypeIndividual, AwardTypeTeam, AwardTypeOverall}

// IsValidAwardType 判断奖项类型是否合法
func IsValidAwardType(t string) bool {
	for _, v := range AwardTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Award 奖项记录，对应 awards 集合
//
// type=individual 时 ParticipantNominee 有效；team/overall 时 TeamNominee 有效。
// ApprovedAt 仅在 status=approved 时有值。SubmittedAt 创建后不再变化。
type Award struct {
	ID                 ID           `json:"id"`
	Status             string       `json:"status"`
	Type               string       `json:"type"`
	SubmittedAt        string       `json:"submitted_at"`
	ApprovedAt         string       `json:"approved_at"`
	Notes              string       `json:"notes"`
	Category           *Category    `json:"category"`
	ParticipantNominee *Participant `json:"participant_nominee"`
	TeamNominee        *Team        `json:"team_nominee"`
	SubmittedBy        *Person      `json:"submitted_by"`
	Ceremony           *Ceremony    `json:"ceremony"`
}

// CategoryColor 返回类别颜色标记，缺失时为空串
func (a *Award) CategoryColor() string {
	if a.Category == nil {
		return ""
	}
	return a.Category.Color
}

// CeremonyID 返回所属典礼 ID，缺失时为空串
func (a *Award) CeremonyID() ID {
	if a.Ceremony == nil {
		return ""
	}
	return a.Ceremony.ID
}

// Person 提交人（工作人员 / 裁判）
type Person struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type personAlias Person

// UnmarshalJSON 兼容未展开的关联（仅主键）
func (p *Person) UnmarshalJSON(data []byte) error {
	return unmarshalRelation(data, &p.ID, (*personAlias)(p))
}
