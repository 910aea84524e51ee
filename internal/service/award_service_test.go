package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"event-awards/internal/dto"
	"event-awards/internal/model"
	pkgerrors "event-awards/pkg/errors"
)

// ── 测试辅助 ──

func setupTestAwardService() (AwardService, *mockRepos) {
	repo, mocks := newMockRepos()
	return NewAwardService(repo, zap.NewNop()), mocks
}

func validIndividualReq() *dto.CreateAwardRequest {
	return &dto.CreateAwardRequest{
		CeremonyID:           "c-1",
		CategoryID:           "cat-1",
		Type:                 model.AwardTypeIndividual,
		ParticipantNomineeID: "p-1",
	}
}

// ── Create 测试 ──

func TestAwardService_Create_Success(t *testing.T) {
	svc, mocks := setupTestAwardService()

	resp, err := svc.Create(context.Background(), validIndividualReq())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Status != model.AwardStatusPending {
		t.Errorf("新建奖项应为 pending，实际=%s", resp.Status)
	}
	if resp.ApprovedAt != nil {
		t.Errorf("pending 奖项不应有 approved_at: %v", *resp.ApprovedAt)
	}
	if resp.SubmittedAt == "" {
		t.Error("submitted_at 不应为空")
	}
	if mocks.award.calls != 1 {
		t.Errorf("应写入一次，实际=%d", mocks.award.calls)
	}
}

func TestAwardService_Create_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(r *dto.CreateAwardRequest)
		field string
	}{
		{"缺少典礼", func(r *dto.CreateAwardRequest) { r.CeremonyID = "" }, "ceremony_id"},
		{"缺少类别", func(r *dto.CreateAwardRequest) { r.CategoryID = "  " }, "category_id"},
		{"缺少类型", func(r *dto.CreateAwardRequest) { r.Type = "" }, "type"},
		{"非法类型", func(r *dto.CreateAwardRequest) { r.Type = "mvp" }, "type"},
		{"个人奖缺少参赛者", func(r *dto.CreateAwardRequest) { r.ParticipantNomineeID = "" }, "participant_nominee_id"},
		{"团队奖缺少队伍", func(r *dto.CreateAwardRequest) {
			r.Type = model.AwardTypeTeam
			r.ParticipantNomineeID = "p-1"
		}, "team_nominee_id"},
		{"总冠军缺少队伍", func(r *dto.CreateAwardRequest) { r.Type = model.AwardTypeOverall }, "team_nominee_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := setupTestAwardService()
			req := validIndividualReq()
			tt.mut(req)

			_, err := svc.Create(context.Background(), req)
			if !errors.Is(err, pkgerrors.ErrValidation) {
				t.Fatalf("期望 ErrValidation，实际: %v", err)
			}
			var ve *pkgerrors.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("期望字段 %s，实际: %v", tt.field, err)
			}
			if mocks.award.calls != 0 {
				t.Error("校验失败时不应写入内容库")
			}
		})
	}
}

func TestAwardService_Create_NilRequest(t *testing.T) {
	svc, _ := setupTestAwardService()
	if _, err := svc.Create(context.Background(), nil); !errors.Is(err, pkgerrors.ErrValidation) {
		t.Errorf("期望 ErrValidation，实际: %v", err)
	}
}

func TestAwardService_Create_DropsMismatchedNominee(t *testing.T) {
	svc, _ := setupTestAwardService()

	req := validIndividualReq()
	req.Type = model.AwardTypeTeam
	req.TeamNomineeID = "t-1"

	resp, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.ParticipantNominee != nil {
		t.Errorf("团队奖不应带参赛者: %+v", resp.ParticipantNominee)
	}
	if resp.TeamNominee == nil || resp.TeamNominee.ID != "t-1" {
		t.Errorf("team_nominee 应为 t-1: %+v", resp.TeamNominee)
	}
}

// ── SetStatus / Approve 测试 ──

func TestAwardService_SetStatus_InvalidStatus(t *testing.T) {
	svc, mocks := setupTestAwardService()
	mocks.award.put(model.Award{ID: "a-1", Status: model.AwardStatusPending})

	_, err := svc.SetStatus(context.Background(), "a-1", "archived")
	if !errors.Is(err, pkgerrors.ErrValidation) {
		t.Errorf("期望 ErrValidation，实际: %v", err)
	}
	if mocks.award.calls != 0 {
		t.Error("非法状态不应写入")
	}
}

func TestAwardService_SetStatus_EmptyID(t *testing.T) {
	svc, _ := setupTestAwardService()
	if _, err := svc.SetStatus(context.Background(), " ", model.AwardStatusRejected); !errors.Is(err, pkgerrors.ErrValidation) {
		t.Errorf("期望 ErrValidation，实际: %v", err)
	}
}

func TestAwardService_Approve_SetsApprovedAt(t *testing.T) {
	svc, mocks := setupTestAwardService()
	mocks.award.put(model.Award{ID: "a-1", Status: model.AwardStatusPending, SubmittedAt: "2025-05-01T00:00:00Z"})

	resp, err := svc.Approve(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("Approve 应成功: %v", err)
	}
	if resp.Status != model.AwardStatusApproved {
		t.Errorf("期望 approved，实际=%s", resp.Status)
	}
	if resp.ApprovedAt == nil || *resp.ApprovedAt != mocks.award.now {
		t.Errorf("approved_at 应为当前时间: %v", resp.ApprovedAt)
	}

	resp, err = svc.SetStatus(context.Background(), "a-1", model.AwardStatusRejected)
	if err != nil {
		t.Fatalf("SetStatus 应成功: %v", err)
	}
	if resp.ApprovedAt != nil {
		t.Errorf("离开 approved 后 approved_at 应清空: %v", *resp.ApprovedAt)
	}
}

func TestAwardService_SetStatus_UpstreamError(t *testing.T) {
	svc, _ := setupTestAwardService()

	_, err := svc.SetStatus(context.Background(), "missing", model.AwardStatusApproved)
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("期望 ErrUpstream，实际: %v", err)
	}
}

// ── List 测试 ──

func TestAwardService_List_UpstreamError(t *testing.T) {
	svc, mocks := setupTestAwardService()
	mocks.award.listErr = errStore

	_, err := svc.List(context.Background(), "c-1")
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("期望 ErrUpstream，实际: %v", err)
	}
	if !errors.Is(err, errStore) {
		t.Error("应保留原始错误链")
	}
}

func TestAwardService_List_FiltersByCeremony(t *testing.T) {
	svc, mocks := setupTestAwardService()
	mocks.award.put(model.Award{ID: "a-1", Ceremony: &model.Ceremony{ID: "c-1"}})
	mocks.award.put(model.Award{ID: "a-2", Ceremony: &model.Ceremony{ID: "c-2"}})

	list, err := svc.List(context.Background(), "c-2")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 1 || list[0].ID != "a-2" {
		t.Errorf("应只返回 c-2 的奖项: %+v", list)
	}
}
