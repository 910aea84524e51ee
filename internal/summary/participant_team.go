package summary

import (
	"sort"
	"strings"

	"event-awards/internal/dto"
	"event-awards/internal/model"
)

// leaderboardLimit 各榜单截取条数
const leaderboardLimit = 10

const (
	placeholderParticipant = "Unnamed participant"
	placeholderTeam        = "Unnamed team"
)

type participantAcc struct {
	id       string
	name     string
	teamID   string
	teamName string
	nganh    string
	count    int
	colors   colorCounts
}

type teamAcc struct {
	id               string
	name             string
	count            int
	colors           colorCounts
	recognized       map[string]struct{}
	teamAwards       []dto.TeamAwardDetail
	individualAwards []dto.IndividualAwardDetail
}

// accumulator 以参赛者 ID / 队伍 ID 为键的累加器，预先放入全部已知实体
type accumulator struct {
	participants map[string]*participantAcc
	teams        map[string]*teamAcc
}

func newAccumulator(participants []model.Participant, teams []model.Team) *accumulator {
	acc := &accumulator{
		participants: make(map[string]*participantAcc, len(participants)),
		teams:        make(map[string]*teamAcc, len(teams)),
	}
	for i := range teams {
		t := &teams[i]
		if t.ID == "" {
			continue
		}
		acc.team(t.ID.String(), t.Name)
	}
	for i := range participants {
		p := &participants[i]
		if p.ID == "" {
			continue
		}
		acc.participant(p)
	}
	return acc
}

// participant 取出或创建参赛者累加器
func (acc *accumulator) participant(p *model.Participant) *participantAcc {
	id := p.ID.String()
	if pa, ok := acc.participants[id]; ok {
		return pa
	}
	pa := &participantAcc{
		id:     id,
		name:   FormatParticipantName(p),
		nganh:  strings.TrimSpace(p.Nganh),
		colors: colorCounts{},
	}
	if p.Team != nil && p.Team.ID != "" {
		pa.teamID = p.Team.ID.String()
		pa.teamName = strings.TrimSpace(p.Team.Name)
	}
	acc.participants[id] = pa
	return pa
}

// team 取出或创建队伍累加器，已存在时补全缺失的名称
func (acc *accumulator) team(id, name string) *teamAcc {
	name = strings.TrimSpace(name)
	if ta, ok := acc.teams[id]; ok {
		if ta.name == "" {
			ta.name = name
		}
		return ta
	}
	ta := &teamAcc{
		id:         id,
		name:       name,
		colors:     colorCounts{},
		recognized: make(map[string]struct{}),
	}
	acc.teams[id] = ta
	return ta
}

// addApproved 累计一条已审批奖项，类型与提名对象不匹配的奖项直接跳过
func (acc *accumulator) addApproved(a *model.Award) {
	color := categoryColor(a)
	timestamp := a.ApprovedAt
	if strings.TrimSpace(timestamp) == "" {
		timestamp = a.SubmittedAt
	}

	if a.Type == model.AwardTypeIndividual && a.ParticipantNominee != nil && a.ParticipantNominee.ID != "" {
		pa := acc.participant(a.ParticipantNominee)
		pa.count++
		pa.colors.add(color)

		teamID, teamName := pa.teamID, pa.teamName
		if teamID == "" && a.ParticipantNominee.Team != nil {
			teamID = a.ParticipantNominee.Team.ID.String()
			teamName = a.ParticipantNominee.Team.Name
		}
		if teamID != "" {
			ta := acc.team(teamID, teamName)
			ta.recognized[pa.id] = struct{}{}
			ta.individualAwards = append(ta.individualAwards, dto.IndividualAwardDetail{
				AwardID:         a.ID.String(),
				ParticipantID:   pa.id,
				ParticipantName: displayParticipant(pa.name),
				CategoryName:    categoryName(a),
				CategoryColor:   color,
				Timestamp:       timestamp,
				CeremonyID:      a.CeremonyID().String(),
			})
		}
		return
	}

	if a.TeamNominee != nil && a.TeamNominee.ID != "" {
		ta := acc.team(a.TeamNominee.ID.String(), a.TeamNominee.Name)
		ta.count++
		ta.colors.add(color)
		ta.teamAwards = append(ta.teamAwards, dto.TeamAwardDetail{
			AwardID:       a.ID.String(),
			Type:          a.Type,
			CategoryName:  categoryName(a),
			CategoryColor: color,
			Timestamp:     timestamp,
			CeremonyID:    a.CeremonyID().String(),
		})
	}
}

// BuildParticipantTeamSummary 按参赛者与队伍维度归约已审批奖项，
// 同时输出待审队列。参考列表中无奖项的实体归入待表彰列表。
func BuildParticipantTeamSummary(awards []model.Award, participants []model.Participant, teams []model.Team) *dto.ParticipantTeamSummary {
	acc := newAccumulator(participants, teams)
	pending := make([]dto.PendingAward, 0)
	approvedCount := 0

	for i := range awards {
		a := &awards[i]
		switch a.Status {
		case model.AwardStatusApproved:
			approvedCount++
			acc.addApproved(a)
		case model.AwardStatusPending:
			pending = append(pending, dto.PendingAward{
				ID:            a.ID.String(),
				Type:          a.Type,
				CategoryName:  categoryName(a),
				CategoryColor: categoryColor(a),
				Nominee:       NomineeLabel(a),
				SubmittedAt:   a.SubmittedAt,
				CeremonyID:    a.CeremonyID().String(),
			})
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return newerFirst(pending[i].SubmittedAt, pending[i].ID, pending[j].SubmittedAt, pending[j].ID)
	})

	awardedP, pendingP := partitionParticipants(acc.participants)
	awardedT, pendingT := partitionTeams(acc.teams)

	return &dto.ParticipantTeamSummary{
		Metrics: dto.ParticipantTeamMetrics{
			TotalApprovedAwards: approvedCount,
			AwardedParticipants: len(awardedP),
			PendingParticipants: len(pendingP),
			AwardedTeams:        len(awardedT),
			PendingTeams:        len(pendingT),
		},
		ParticipantLeaderboard:         truncate(awardedP),
		ParticipantsPendingRecognition: truncate(pendingP),
		TeamLeaderboard:                truncate(awardedT),
		TeamsPendingRecognition:        truncate(pendingT),
		Teams:                          awardedT,
		PendingAwards:                  pending,
	}
}

func partitionParticipants(m map[string]*participantAcc) (awarded, pending []dto.ParticipantStanding) {
	awarded = make([]dto.ParticipantStanding, 0)
	pending = make([]dto.ParticipantStanding, 0)
	for _, pa := range m {
		s := dto.ParticipantStanding{
			ID:         pa.id,
			Name:       displayParticipant(pa.name),
			TeamID:     pa.teamID,
			TeamName:   pa.teamName,
			Nganh:      pa.nganh,
			AwardCount: pa.count,
			Colors:     pa.colors.list(),
		}
		if pa.count > 0 {
			awarded = append(awarded, s)
		} else {
			pending = append(pending, s)
		}
	}

	sort.Slice(awarded, func(i, j int) bool {
		a, b := awarded[i], awarded[j]
		if a.AwardCount != b.AwardCount {
			return a.AwardCount > b.AwardCount
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	sort.Slice(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return awarded, pending
}

func partitionTeams(m map[string]*teamAcc) (awarded, pending []dto.TeamStanding) {
	awarded = make([]dto.TeamStanding, 0)
	pending = make([]dto.TeamStanding, 0)
	for _, ta := range m {
		teamAwards := append([]dto.TeamAwardDetail{}, ta.teamAwards...)
		sort.Slice(teamAwards, func(i, j int) bool {
			return newerFirst(teamAwards[i].Timestamp, teamAwards[i].AwardID, teamAwards[j].Timestamp, teamAwards[j].AwardID)
		})
		individual := append([]dto.IndividualAwardDetail{}, ta.individualAwards...)
		sort.Slice(individual, func(i, j int) bool {
			return newerFirst(individual[i].Timestamp, individual[i].AwardID, individual[j].Timestamp, individual[j].AwardID)
		})

		s := dto.TeamStanding{
			ID:                     ta.id,
			Name:                   displayTeam(ta.name),
			AwardCount:             ta.count,
			RecognizedParticipants: len(ta.recognized),
			Colors:                 ta.colors.list(),
			TeamAwards:             teamAwards,
			IndividualAwards:       individual,
		}
		if ta.count > 0 {
			awarded = append(awarded, s)
		} else {
			pending = append(pending, s)
		}
	}

	sort.Slice(awarded, func(i, j int) bool {
		a, b := awarded[i], awarded[j]
		if a.AwardCount != b.AwardCount {
			return a.AwardCount > b.AwardCount
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	sort.Slice(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return awarded, pending
}

func truncate[T any](list []T) []T {
	if len(list) > leaderboardLimit {
		return list[:leaderboardLimit]
	}
	return list
}

func displayParticipant(name string) string {
	if name == "" {
		return placeholderParticipant
	}
	return name
}

func displayTeam(name string) string {
	if name == "" {
		return placeholderTeam
	}
	return name
}
