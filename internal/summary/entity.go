package summary

import (
	"sort"
	"strings"

	"event-awards/internal/dto"
	"event-awards/internal/model"
)

// 实体类型
const (
	EntityParticipant = "participant"
	EntityTeam        = "team"
)

// BuildEntityAwards 汇总单个参赛者或队伍跨所有典礼的奖项。
// 奖项按典礼 order 升序（无 order 的排最后），同一典礼内按时间降序。
// ceremonies 用于补全未展开的典礼名称与顺序。
func BuildEntityAwards(kind, id string, awards []model.Award, ceremonies []model.Ceremony) *dto.EntityAwards {
	byID := make(map[model.ID]*model.Ceremony, len(ceremonies))
	for i := range ceremonies {
		byID[ceremonies[i].ID] = &ceremonies[i]
	}

	result := &dto.EntityAwards{
		Kind:   kind,
		ID:     id,
		Awards: make([]dto.EntityAwardEntry, 0, len(awards)),
	}

	for i := range awards {
		a := &awards[i]

		switch a.Status {
		case model.AwardStatusPending:
			result.Counts.Pending++
		case model.AwardStatusApproved:
			result.Counts.Approved++
		case model.AwardStatusRejected:
			result.Counts.Rejected++
		}

		if result.Name == "" {
			result.Name = entityName(kind, a)
		}

		ts := a.ApprovedAt
		if a.Status != model.AwardStatusApproved || strings.TrimSpace(ts) == "" {
			ts = a.SubmittedAt
		}
		entry := dto.EntityAwardEntry{
			AwardEntry: toAwardEntry(a, ts),
			Notes:      a.Notes,
		}
		if c := a.Ceremony; c != nil {
			entry.CeremonyName = c.Name
			entry.CeremonyOrder = c.Order
			if ref, ok := byID[c.ID]; ok {
				if entry.CeremonyName == "" {
					entry.CeremonyName = ref.Name
				}
				if entry.CeremonyOrder == nil {
					entry.CeremonyOrder = ref.Order
				}
			}
		}
		result.Awards = append(result.Awards, entry)
	}

	sort.Slice(result.Awards, func(i, j int) bool {
		a, b := result.Awards[i], result.Awards[j]
		switch {
		case a.CeremonyOrder == nil && b.CeremonyOrder != nil:
			return false
		case a.CeremonyOrder != nil && b.CeremonyOrder == nil:
			return true
		case a.CeremonyOrder != nil && b.CeremonyOrder != nil && *a.CeremonyOrder != *b.CeremonyOrder:
			return *a.CeremonyOrder < *b.CeremonyOrder
		}
		return newerFirst(a.Timestamp, a.ID, b.Timestamp, b.ID)
	})

	return result
}

func entityName(kind string, a *model.Award) string {
	switch kind {
	case EntityParticipant:
		return FormatParticipantName(a.ParticipantNominee)
	case EntityTeam:
		if a.TeamNominee != nil {
			return strings.TrimSpace(a.TeamNominee.Name)
		}
	}
	return ""
}
