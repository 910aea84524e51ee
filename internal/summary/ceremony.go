package summary

import (
	"sort"
	"strings"

	"event-awards/internal/dto"
	"event-awards/internal/model"
)

// latestLimit 最近审批 / 待审列表的条数
const latestLimit = 5

// BuildCeremonySummary 把一组奖项（单个典礼或整场活动）归约为典礼汇总
func BuildCeremonySummary(awards []model.Award) *dto.CeremonySummary {
	summary := &dto.CeremonySummary{
		LatestApproved: []dto.AwardEntry{},
		LatestPending:  []dto.AwardEntry{},
	}

	individuals := make(map[string]struct{})
	teams := make(map[string]struct{})
	colors := colorCounts{}

	var approved, pending []dto.AwardEntry

	for i := range awards {
		a := &awards[i]
		summary.Metrics.Total++

		switch a.Status {
		case model.AwardStatusPending:
			summary.Metrics.Pending++
			entry := toAwardEntry(a, a.SubmittedAt)
			entry.Status = ""
			pending = append(pending, entry)

		case model.AwardStatusApproved:
			summary.Metrics.Approved++
			colors.add(categoryColor(a))

			if a.Type == model.AwardTypeIndividual {
				if name := FormatParticipantName(a.ParticipantNominee); name != "" {
					individuals[name] = struct{}{}
				}
			}
			if a.TeamNominee != nil {
				if name := strings.TrimSpace(a.TeamNominee.Name); name != "" {
					teams[name] = struct{}{}
				}
			}

			ts := a.ApprovedAt
			if strings.TrimSpace(ts) == "" {
				ts = a.SubmittedAt
			}
			approved = append(approved, toAwardEntry(a, ts))

		case model.AwardStatusRejected:
			summary.Metrics.Rejected++
		}
	}

	summary.Metrics.IndividualsAwarded = len(individuals)
	summary.Metrics.TeamsAwarded = len(teams)
	summary.LatestApproved = latest(approved)
	summary.LatestPending = latest(pending)
	summary.ColorBreakdown = colors.list()

	return summary
}

func toAwardEntry(a *model.Award, timestamp string) dto.AwardEntry {
	return dto.AwardEntry{
		ID:            a.ID.String(),
		CategoryName:  categoryName(a),
		CategoryColor: categoryColor(a),
		Status:        a.Status,
		Type:          a.Type,
		Nominee:       NomineeLabel(a),
		Timestamp:     timestamp,
		SubmittedBy:   submitterName(a),
		CeremonyID:    a.CeremonyID().String(),
	}
}

// latest 时间降序取前 latestLimit 条
func latest(entries []dto.AwardEntry) []dto.AwardEntry {
	sort.Slice(entries, func(i, j int) bool {
		return newerFirst(entries[i].Timestamp, entries[i].ID, entries[j].Timestamp, entries[j].ID)
	})
	if len(entries) > latestLimit {
		entries = entries[:latestLimit]
	}
	if entries == nil {
		return []dto.AwardEntry{}
	}
	return entries
}
