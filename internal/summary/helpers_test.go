package summary

import (
	"fmt"

	"event-awards/internal/model"
)

// ── 测试数据构造 ──

func category(name, color string) *model.Category {
	return &model.Category{ID: model.ID("cat-" + name), Name: name, Color: color}
}

func individual(id, status string, p *model.Participant, cat *model.Category, submitted string) model.Award {
	return model.Award{
		ID:                 model.ID(id),
		Status:             status,
		Type:               model.AwardTypeIndividual,
		SubmittedAt:        submitted,
		Category:           cat,
		ParticipantNominee: p,
		Ceremony:           &model.Ceremony{ID: "c-1"},
	}
}

func teamAward(id, status string, t *model.Team, cat *model.Category, submitted string) model.Award {
	return model.Award{
		ID:          model.ID(id),
		Status:      status,
		Type:        model.AwardTypeTeam,
		SubmittedAt: submitted,
		Category:    cat,
		TeamNominee: t,
		Ceremony:    &model.Ceremony{ID: "c-1"},
	}
}

func participant(id, first, last string, team *model.Team) *model.Participant {
	return &model.Participant{ID: model.ID(id), FirstName: first, LastName: last, Team: team}
}

func ts(day int) string {
	return fmt.Sprintf("2025-05-%02dT10:00:00Z", day)
}
