package summary

import (
	"strings"

	"event-awards/internal/model"
)

const (
	labelIndividualNominee = "Individual nominee"
	labelNomineeTBD        = "Nominee TBD"
	labelUnknownCategory   = "Unknown category"
	labelUnknownReferee    = "Unknown referee"
)

// FormatName 以单个空格拼接去除空白后的非空姓、名
func FormatName(first, last string) string {
	parts := make([]string, 0, 2)
	if f := strings.TrimSpace(first); f != "" {
		parts = append(parts, f)
	}
	if l := strings.TrimSpace(last); l != "" {
		parts = append(parts, l)
	}
	return strings.Join(parts, " ")
}

// FormatPersonName 提交人姓名，nil 返回空串
func FormatPersonName(p *model.Person) string {
	if p == nil {
		return ""
	}
	return FormatName(p.FirstName, p.LastName)
}

// FormatParticipantName 参赛者姓名，nil 返回空串
func FormatParticipantName(p *model.Participant) string {
	if p == nil {
		return ""
	}
	return FormatName(p.FirstName, p.LastName)
}

// NomineeLabel 奖项提名对象的展示名，对任意残缺数据都有返回值
func NomineeLabel(a *model.Award) string {
	if a == nil {
		return labelNomineeTBD
	}
	if a.Type == model.AwardTypeIndividual && a.ParticipantNominee != nil {
		if name := FormatParticipantName(a.ParticipantNominee); name != "" {
			return name
		}
		return labelIndividualNominee
	}
	if a.TeamNominee != nil {
		if name := strings.TrimSpace(a.TeamNominee.Name); name != "" {
			return name
		}
	}
	return labelNomineeTBD
}

func categoryName(a *model.Award) string {
	if a.Category != nil && strings.TrimSpace(a.Category.Name) != "" {
		return a.Category.Name
	}
	return labelUnknownCategory
}

func categoryColor(a *model.Award) string {
	if c := strings.TrimSpace(a.CategoryColor()); c != "" {
		return c
	}
	return DefaultColor
}

func submitterName(a *model.Award) string {
	if name := FormatPersonName(a.SubmittedBy); name != "" {
		return name
	}
	return labelUnknownReferee
}
