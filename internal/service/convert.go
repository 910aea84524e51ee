package service

import (
	"strings"

	"event-awards/internal/dto"
	"event-awards/internal/model"
	"event-awards/internal/summary"
)

// ── 模型 → 响应转换 ──

func toAwardResponse(a *model.Award) *dto.AwardResponse {
	resp := &dto.AwardResponse{
		ID:          a.ID.String(),
		Status:      a.Status,
		Type:        a.Type,
		Nominee:     summary.NomineeLabel(a),
		SubmittedAt: a.SubmittedAt,
		Notes:       a.Notes,
	}
	if strings.TrimSpace(a.ApprovedAt) != "" {
		approvedAt := a.ApprovedAt
		resp.ApprovedAt = &approvedAt
	}
	if c := a.Category; c != nil {
		resp.Category = &dto.CategoryBrief{
			ID:    c.ID.String(),
			Name:  c.Name,
			Color: c.Color,
			Hex:   summary.ResolveColor(c.Color).Hex,
		}
	}
	if p := a.ParticipantNominee; p != nil {
		resp.ParticipantNominee = &dto.PersonBrief{ID: p.ID.String(), Name: summary.FormatParticipantName(p)}
	}
	if t := a.TeamNominee; t != nil {
		resp.TeamNominee = &dto.TeamBrief{ID: t.ID.String(), Name: t.Name}
	}
	if p := a.SubmittedBy; p != nil {
		resp.SubmittedBy = &dto.PersonBrief{ID: p.ID.String(), Name: summary.FormatPersonName(p)}
	}
	if c := a.Ceremony; c != nil {
		resp.Ceremony = &dto.CeremonyBrief{ID: c.ID.String(), Name: c.Name, Order: c.Order}
	}
	return resp
}

func toCeremonyResponse(c *model.Ceremony) dto.CeremonyResponse {
	return dto.CeremonyResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Order: c.Order,
		Notes: c.Notes,
	}
}

func toCategoryResponse(c *model.Category) dto.CategoryResponse {
	types := c.Type
	if types == nil {
		types = []string{}
	}
	return dto.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Color:       c.Color,
		Hex:         summary.ResolveColor(c.Color).Hex,
		Type:        types,
		Description: c.Description,
	}
}

func toParticipantResponse(p *model.Participant) dto.ParticipantResponse {
	resp := dto.ParticipantResponse{
		ID:    p.ID.String(),
		Name:  summary.FormatParticipantName(p),
		Nganh: p.Nganh,
	}
	if p.Team != nil && p.Team.ID != "" {
		resp.Team = &dto.TeamBrief{ID: p.Team.ID.String(), Name: p.Team.Name}
	}
	return resp
}
