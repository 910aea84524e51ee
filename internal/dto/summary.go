package dto

// ── 典礼汇总 ──

// CeremonyMetrics 典礼（或整场活动）全局指标
type CeremonyMetrics struct {
	Total              int `json:"total"`
	Pending            int `json:"pending"`
	Approved           int `json:"approved"`
	Rejected           int `json:"rejected"`
	IndividualsAwarded int `json:"individuals_awarded"`
	TeamsAwarded       int `json:"teams_awarded"`
}

// AwardEntry 最近审批 / 待审列表中的一条奖项
// 待审列表不带 status
type AwardEntry struct {
	ID            string `json:"id"`
	CategoryName  string `json:"category_name"`
	CategoryColor string `json:"category_color"`
	Status        string `json:"status,omitempty"`
	Type          string `json:"type"`
	Nominee       string `json:"nominee"`
	Timestamp     string `json:"timestamp"`
	SubmittedBy   string `json:"submitted_by"`
	CeremonyID    string `json:"ceremony_id"`
}

// ColorCount 按类别颜色计数，Hex 为映射到固定调色板后的展示色
type ColorCount struct {
	Color string `json:"color"`
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// CeremonySummary 典礼汇总
type CeremonySummary struct {
	Metrics        CeremonyMetrics `json:"metrics"`
	LatestApproved []AwardEntry    `json:"latest_approved"`
	LatestPending  []AwardEntry    `json:"latest_pending"`
	ColorBreakdown []ColorCount    `json:"color_breakdown"`
}

// ── 参赛者 / 队伍汇总 ──

// ParticipantStanding 参赛者获奖统计
type ParticipantStanding struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	TeamID     string       `json:"team_id,omitempty"`
	TeamName   string       `json:"team_name,omitempty"`
	Nganh      string       `json:"nganh,omitempty"`
	AwardCount int          `json:"award_count"`
	Colors     []ColorCount `json:"colors"`
}

// TeamAwardDetail 队伍获得的团队奖
type TeamAwardDetail struct {
	AwardID       string `json:"award_id"`
	Type          string `json:"type"`
	CategoryName  string `json:"category_name"`
	CategoryColor string `json:"category_color"`
	Timestamp     string `json:"timestamp"`
	CeremonyID    string `json:"ceremony_id"`
}

// IndividualAwardDetail 队员在所属队伍名下获得的个人奖
type IndividualAwardDetail struct {
	AwardID         string `json:"award_id"`
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	CategoryName    string `json:"category_name"`
	CategoryColor   string `json:"category_color"`
	Timestamp       string `json:"timestamp"`
	CeremonyID      string `json:"ceremony_id"`
}

// TeamStanding 队伍获奖统计
// AwardCount 仅统计团队类奖项；RecognizedParticipants 为获得个人奖的队员数
type TeamStanding struct {
	ID                     string                  `json:"id"`
	Name                   string                  `json:"name"`
	AwardCount             int                     `json:"award_count"`
	RecognizedParticipants int                     `json:"recognized_participants"`
	Colors                 []ColorCount            `json:"colors"`
	TeamAwards             []TeamAwardDetail       `json:"team_awards"`
	IndividualAwards       []IndividualAwardDetail `json:"individual_awards"`
}

// PendingAward 待审队列中的一条奖项
type PendingAward struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	CategoryName  string `json:"category_name"`
	CategoryColor string `json:"category_color"`
	Nominee       string `json:"nominee"`
	SubmittedAt   string `json:"submitted_at"`
	CeremonyID    string `json:"ceremony_id"`
}

// ParticipantTeamMetrics 参赛者 / 队伍维度指标
type ParticipantTeamMetrics struct {
	TotalApprovedAwards int `json:"total_approved_awards"`
	AwardedParticipants int `json:"awarded_participants"`
	PendingParticipants int `json:"pending_participants"`
	AwardedTeams        int `json:"awarded_teams"`
	PendingTeams        int `json:"pending_teams"`
}

// ParticipantTeamSummary 参赛者 / 队伍汇总
// 各榜单截取前 10，Teams 为完整的已获奖队伍列表
type ParticipantTeamSummary struct {
	Metrics                        ParticipantTeamMetrics `json:"metrics"`
	ParticipantLeaderboard         []ParticipantStanding  `json:"participant_leaderboard"`
	ParticipantsPendingRecognition []ParticipantStanding  `json:"participants_pending_recognition"`
	TeamLeaderboard                []TeamStanding         `json:"team_leaderboard"`
	TeamsPendingRecognition        []TeamStanding         `json:"teams_pending_recognition"`
	Teams                          []TeamStanding         `json:"teams"`
	PendingAwards                  []PendingAward         `json:"pending_awards"`
}

// ── 单个参赛者 / 队伍的全部奖项 ──

// EntityAwardEntry 附带典礼名称与顺序的奖项
type EntityAwardEntry struct {
	AwardEntry
	CeremonyName  string `json:"ceremony_name"`
	CeremonyOrder *int   `json:"ceremony_order"`
	Notes         string `json:"notes,omitempty"`
}

// StatusCounts 按状态计数
type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// EntityAwards 某个参赛者或队伍跨所有典礼的奖项
type EntityAwards struct {
	Kind   string             `json:"kind"`
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Counts StatusCounts       `json:"counts"`
	Awards []EntityAwardEntry `json:"awards"`
}
