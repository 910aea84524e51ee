package summary

import (
	"testing"

	"event-awards/internal/model"
)

func TestFormatName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Ann", "Lee", "Ann Lee"},
		{"  Ann ", "", "Ann"},
		{"", " Lee", "Lee"},
		{"  ", "\t", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		if got := FormatName(c.first, c.last); got != c.want {
			t.Errorf("FormatName(%q, %q) = %q, want %q", c.first, c.last, got, c.want)
		}
	}
}

func TestFormatPersonName_Nil(t *testing.T) {
	if got := FormatPersonName(nil); got != "" {
		t.Errorf("nil 应返回空串，实际=%q", got)
	}
	if got := FormatParticipantName(nil); got != "" {
		t.Errorf("nil 应返回空串，实际=%q", got)
	}
}

func TestNomineeLabel(t *testing.T) {
	falcons := &model.Team{ID: "t-1", Name: "Falcons"}

	cases := []struct {
		name  string
		award *model.Award
		want  string
	}{
		{"个人奖带姓名", &model.Award{Type: model.AwardTypeIndividual, ParticipantNominee: participant("p-1", "Ann", "Lee", nil)}, "Ann Lee"},
		{"个人奖无姓名", &model.Award{Type: model.AwardTypeIndividual, ParticipantNominee: participant("p-1", " ", "", nil)}, "Individual nominee"},
		{"团队奖", &model.Award{Type: model.AwardTypeTeam, TeamNominee: falcons}, "Falcons"},
		{"总冠军奖", &model.Award{Type: model.AwardTypeOverall, TeamNominee: falcons}, "Falcons"},
		{"团队奖无名称", &model.Award{Type: model.AwardTypeTeam, TeamNominee: &model.Team{ID: "t-2"}}, "Nominee TBD"},
		{"个人奖缺参赛者但有队伍", &model.Award{Type: model.AwardTypeIndividual, TeamNominee: falcons}, "Falcons"},
		{"类型为空", &model.Award{ParticipantNominee: participant("p-1", "Ann", "", nil)}, "Nominee TBD"},
		{"完全缺失", &model.Award{}, "Nominee TBD"},
		{"nil", nil, "Nominee TBD"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NomineeLabel(c.award); got != c.want {
				t.Errorf("NomineeLabel = %q, want %q", got, c.want)
			}
		})
	}
}

func TestResolveColor(t *testing.T) {
	if s := ResolveColor("green"); s.Name != "green" || s.Hex != palette["green"] {
		t.Errorf("green 应映射到自身: %+v", s)
	}
	if s := ResolveColor(" Blue "); s.Name != "blue" {
		t.Errorf("应忽略大小写与空白: %+v", s)
	}
	for _, token := range []string{"teal", "", "#ff0000"} {
		if s := ResolveColor(token); s.Name != DefaultColor || s.Hex != palette[DefaultColor] {
			t.Errorf("未知颜色 %q 应回退为 gray: %+v", token, s)
		}
	}
}

func TestTimestampKey(t *testing.T) {
	if timestampKey("") != 0 || timestampKey("not a date") != 0 {
		t.Error("缺失或无法解析的时间应视为纪元 0")
	}
	if timestampKey("2025-05-01T10:00:00") <= timestampKey("2025-04-30") {
		t.Error("无时区格式也应能解析并比较")
	}
}
