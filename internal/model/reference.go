package model

// Ceremony 颁奖典礼，对应 award_ceremonies 集合
type Ceremony struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Order *int   `json:"order"`
	Notes string `json:"notes,omitempty"`
}

type ceremonyAlias Ceremony

// UnmarshalJSON 兼容未展开的关联（仅主键）
func (c *Ceremony) UnmarshalJSON(data []byte) error {
	return unmarshalRelation(data, &c.ID, (*ceremonyAlias)(c))
}

// Category 奖项类别，对应 award_categories 集合
// Type 为允许使用该类别的奖项类型集合，缺失时为空集
type Category struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Type        []string `json:"type"`
	Description string   `json:"description,omitempty"`
}

type categoryAlias Category

// UnmarshalJSON 兼容未展开的关联（仅主键）
func (c *Category) UnmarshalJSON(data []byte) error {
	return unmarshalRelation(data, &c.ID, (*categoryAlias)(c))
}

// Allows 判断类别是否允许给定奖项类型
func (c *Category) Allows(awardType string) bool {
	for _, t := range c.Type {
		if t == awardType {
			return true
		}
	}
	return false
}

// Team 队伍，对应 teams 集合
type Team struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type teamAlias Team

// UnmarshalJSON 兼容未展开的关联（仅主键）
func (t *Team) UnmarshalJSON(data []byte) error {
	return unmarshalRelation(data, &t.ID, (*teamAlias)(t))
}

// Participant 参赛者，对应 participants 集合
// Nganh 为所属专业 / 赛道标签
type Participant struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      *Team  `json:"team"`
	Nganh     string `json:"nganh,omitempty"`
}

type participantAlias Participant

// UnmarshalJSON 兼容未展开的关联（仅主键）
func (p *Participant) UnmarshalJSON(data []byte) error {
	return unmarshalRelation(data, &p.ID, (*participantAlias)(p))
}
