package summary

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"event-awards/internal/model"
)

func TestBuildCeremonySummary_Example(t *testing.T) {
	ann := participant("1", "Ann", "", nil)
	awards := []model.Award{
		individual("a-1", model.AwardStatusApproved, ann, category("Spirit", "green"), ts(1)),
	}

	s := BuildCeremonySummary(awards)

	if len(s.ColorBreakdown) != 1 || s.ColorBreakdown[0].Color != "green" || s.ColorBreakdown[0].Count != 1 {
		t.Errorf("colorBreakdown 应为 [{green 1}]，实际=%+v", s.ColorBreakdown)
	}
	if s.Metrics.IndividualsAwarded != 1 {
		t.Errorf("individualsAwarded 应为 1，实际=%d", s.Metrics.IndividualsAwarded)
	}
	if len(s.LatestApproved) != 1 || s.LatestApproved[0].Nominee != "Ann" {
		t.Errorf("latestApproved 不符: %+v", s.LatestApproved)
	}
}

func TestBuildCeremonySummary_StatusPartition(t *testing.T) {
	statuses := []string{model.AwardStatusPending, model.AwardStatusApproved, model.AwardStatusRejected}
	var awards []model.Award
	for i := 0; i < 17; i++ {
		awards = append(awards, teamAward(fmt.Sprintf("a-%02d", i), statuses[i%3], &model.Team{ID: "t-1", Name: "Owls"}, nil, ts(i%28+1)))
	}

	s := BuildCeremonySummary(awards)

	if s.Metrics.Pending+s.Metrics.Approved+s.Metrics.Rejected != len(awards) {
		t.Errorf("状态划分应穷尽且互斥: %+v, 总数=%d", s.Metrics, len(awards))
	}
	if s.Metrics.Total != len(awards) {
		t.Errorf("total 应等于输入长度: %d", s.Metrics.Total)
	}
}

func TestBuildCeremonySummary_Defaults(t *testing.T) {
	awards := []model.Award{
		{ID: "a-1", Status: model.AwardStatusApproved, Type: model.AwardTypeTeam, SubmittedAt: ts(3)},
	}

	s := BuildCeremonySummary(awards)
	entry := s.LatestApproved[0]

	if entry.CategoryName != "Unknown category" || entry.CategoryColor != "gray" {
		t.Errorf("缺失类别应使用默认值: %+v", entry)
	}
	if entry.SubmittedBy != "Unknown referee" {
		t.Errorf("缺失提交人应为 Unknown referee: %q", entry.SubmittedBy)
	}
	if entry.Nominee != "Nominee TBD" {
		t.Errorf("缺失提名对象应为 Nominee TBD: %q", entry.Nominee)
	}
	if s.ColorBreakdown[0].Color != "gray" {
		t.Errorf("缺失颜色应计入 gray: %+v", s.ColorBreakdown)
	}
}

func TestBuildCeremonySummary_UnknownColorKeepsTokenAndFallsBackHex(t *testing.T) {
	awards := []model.Award{
		individual("a-1", model.AwardStatusApproved, participant("1", "Ann", "", nil), category("Odd", "teal"), ts(1)),
	}

	s := BuildCeremonySummary(awards)

	if s.ColorBreakdown[0].Color != "teal" {
		t.Errorf("计数键应保留原始颜色标记: %+v", s.ColorBreakdown)
	}
	if s.ColorBreakdown[0].Hex != palette[DefaultColor] {
		t.Errorf("未知颜色展示色应回退为 gray: %+v", s.ColorBreakdown)
	}
}

func TestBuildCeremonySummary_DistinctByName(t *testing.T) {
	owls := &model.Team{ID: "t-1", Name: "Owls"}
	owlsAgain := &model.Team{ID: "t-2", Name: "Owls"}
	awards := []model.Award{
		individual("a-1", model.AwardStatusApproved, participant("1", "Ann", "Lee", nil), nil, ts(1)),
		individual("a-2", model.AwardStatusApproved, participant("2", "Ann", "Lee", nil), nil, ts(2)),
		individual("a-3", model.AwardStatusApproved, participant("3", "", "", nil), nil, ts(3)),
		individual("a-4", model.AwardStatusPending, participant("4", "Bob", "", nil), nil, ts(4)),
		teamAward("a-5", model.AwardStatusApproved, owls, nil, ts(5)),
		teamAward("a-6", model.AwardStatusApproved, owlsAgain, nil, ts(6)),
		teamAward("a-7", model.AwardStatusApproved, &model.Team{ID: "t-3"}, nil, ts(7)),
	}

	s := BuildCeremonySummary(awards)

	if s.Metrics.IndividualsAwarded != 1 {
		t.Errorf("同名参赛者应合并、空名应忽略，实际=%d", s.Metrics.IndividualsAwarded)
	}
	if s.Metrics.TeamsAwarded != 1 {
		t.Errorf("同名队伍应合并、空名应忽略，实际=%d", s.Metrics.TeamsAwarded)
	}
}

func TestBuildCeremonySummary_LatestOrdering(t *testing.T) {
	var awards []model.Award
	for i := 1; i <= 7; i++ {
		a := teamAward(fmt.Sprintf("a-%d", i), model.AwardStatusApproved, &model.Team{ID: "t", Name: "T"}, nil, ts(i))
		awards = append(awards, a)
	}
	// a-1 提交最早但审批最晚
	awards[0].ApprovedAt = ts(20)
	// a-7 审批时间无法解析，按纪元 0 排到最后
	awards[6].ApprovedAt = "garbage"

	s := BuildCeremonySummary(awards)

	if len(s.LatestApproved) != 5 {
		t.Fatalf("应只取前 5 条，实际=%d", len(s.LatestApproved))
	}
	want := []string{"a-1", "a-6", "a-5", "a-4", "a-3"}
	for i, id := range want {
		if s.LatestApproved[i].ID != id {
			t.Errorf("位置 %d 期望 %s，实际 %s", i, id, s.LatestApproved[i].ID)
		}
	}
	if s.LatestApproved[0].Timestamp != ts(20) {
		t.Errorf("展示时间应为 approved_at: %s", s.LatestApproved[0].Timestamp)
	}
}

func TestBuildCeremonySummary_LatestPendingShape(t *testing.T) {
	awards := []model.Award{
		individual("a-1", model.AwardStatusPending, participant("1", "Ann", "", nil), category("Spirit", "red"), ts(2)),
		individual("a-2", model.AwardStatusPending, participant("2", "Bob", "", nil), category("Spirit", "red"), ""),
		individual("a-3", model.AwardStatusPending, participant("3", "Cid", "", nil), category("Spirit", "red"), ts(9)),
	}
	awards[0].SubmittedBy = &model.Person{ID: "u-1", FirstName: "Ref", LastName: "One"}

	s := BuildCeremonySummary(awards)

	got := []string{s.LatestPending[0].ID, s.LatestPending[1].ID, s.LatestPending[2].ID}
	if !reflect.DeepEqual(got, []string{"a-3", "a-1", "a-2"}) {
		t.Errorf("待审应按 submitted_at 降序且缺失时间排最后: %v", got)
	}
	for _, e := range s.LatestPending {
		if e.Status != "" {
			t.Errorf("待审条目不应带 status: %+v", e)
		}
		if e.CeremonyID != "c-1" {
			t.Errorf("应带典礼 ID: %+v", e)
		}
	}
	if s.LatestPending[1].SubmittedBy != "Ref One" {
		t.Errorf("提交人姓名不符: %q", s.LatestPending[1].SubmittedBy)
	}
	if len(s.ColorBreakdown) != 0 {
		t.Errorf("待审奖项不计入颜色统计: %+v", s.ColorBreakdown)
	}
}

func TestBuildCeremonySummary_OrderIndependent(t *testing.T) {
	teams := []*model.Team{{ID: "t-1", Name: "Owls"}, {ID: "t-2", Name: "Hawks"}}
	colors := []string{"red", "green", "blue", "teal"}
	statuses := []string{model.AwardStatusPending, model.AwardStatusApproved, model.AwardStatusRejected}

	var awards []model.Award
	for i := 0; i < 30; i++ {
		// 故意制造时间并列，检验按 ID 的确定性排序
		submitted := ts(i%4 + 1)
		if i%2 == 0 {
			awards = append(awards, teamAward(fmt.Sprintf("a-%02d", i), statuses[i%3], teams[i%2], category("C", colors[i%4]), submitted))
		} else {
			p := participant(fmt.Sprintf("p-%d", i%5), fmt.Sprintf("P%d", i%5), "", nil)
			awards = append(awards, individual(fmt.Sprintf("a-%02d", i), statuses[i%3], p, category("C", colors[i%4]), submitted))
		}
	}

	want := BuildCeremonySummary(awards)

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 5; round++ {
		shuffled := append([]model.Award(nil), awards...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := BuildCeremonySummary(shuffled)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("第 %d 轮打乱后结果不同:\n got=%+v\nwant=%+v", round, got, want)
		}
	}

	again := BuildCeremonySummary(awards)
	if !reflect.DeepEqual(again, want) {
		t.Error("重复构建结果应一致")
	}
}

func TestBuildCeremonySummary_Empty(t *testing.T) {
	s := BuildCeremonySummary(nil)
	if s.LatestApproved == nil || s.LatestPending == nil || s.ColorBreakdown == nil {
		t.Error("空输入时列表应为空切片而非 nil")
	}
	if s.Metrics.Total != 0 {
		t.Errorf("空输入 total 应为 0: %+v", s.Metrics)
	}
}
