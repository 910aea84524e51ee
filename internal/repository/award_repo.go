package repository

import (
	"context"
	"strings"
	"time"

	"event-awards/internal/model"
	"event-awards/pkg/contentstore"
)

// awardFields 奖项读取时展开的字段（类别、提名对象、提交人、典礼）
var awardFields = []string{
	"id",
	"status",
	"type",
	"notes",
	"submitted_at",
	"approved_at",
	"category.id",
	"category.name",
	"category.color",
	"participant_nominee.id",
	"participant_nominee.first_name",
	"participant_nominee.last_name",
	"participant_nominee.team.id",
	"participant_nominee.team.name",
	"team_nominee.id",
	"team_nominee.name",
	"submitted_by.id",
	"submitted_by.first_name",
	"submitted_by.last_name",
	"ceremony.id",
	"ceremony.name",
	"ceremony.order",
}

// CreateAwardInput 创建奖项的入参，调用方负责校验
type CreateAwardInput struct {
	CeremonyID           string
	CategoryID           string
	Type                 string
	ParticipantNomineeID string
	TeamNomineeID        string
	SubmittedByID        string
	Status               string // 为空时默认为 pending
	Notes                string
}

// AwardRepository 奖项数据访问接口
type AwardRepository interface {
	// List ceremonyID 为空时返回整场活动的全部奖项
	List(ctx context.Context, ceremonyID string) ([]model.Award, error)
	ListByParticipant(ctx context.Context, participantID string) ([]model.Award, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.Award, error)
	Create(ctx context.Context, input *CreateAwardInput) (*model.Award, error)
	SetStatus(ctx context.Context, id string, status string) (*model.Award, error)
}

type awardRepo struct {
	store Store
	now   Clock
}

// NewAwardRepo 创建 AwardRepository 实例
func NewAwardRepo(store Store, now Clock) AwardRepository {
	if now == nil {
		now = time.Now
	}
	return &awardRepo{store: store, now: now}
}

func (r *awardRepo) List(ctx context.Context, ceremonyID string) ([]model.Award, error) {
	var filter map[string]string
	if ceremonyID != "" {
		filter = map[string]string{"ceremony": ceremonyID}
	}
	return r.list(ctx, filter)
}

func (r *awardRepo) ListByParticipant(ctx context.Context, participantID string) ([]model.Award, error) {
	return r.list(ctx, map[string]string{"participant_nominee": participantID})
}

func (r *awardRepo) ListByTeam(ctx context.Context, teamID string) ([]model.Award, error) {
	return r.list(ctx, map[string]string{"team_nominee": teamID})
}

func (r *awardRepo) list(ctx context.Context, filter map[string]string) ([]model.Award, error) {
	var awards []model.Award
	err := r.store.List(ctx, CollectionAwards, contentstore.Query{
		Fields: awardFields,
		Filter: filter,
		Sort:   []string{"-submitted_at"},
	}, &awards)
	return awards, err
}

// Create 新建奖项：submitted_at 取当前时间，仅写入与类型匹配的提名对象，
// notes 去除空白后非空才写入
func (r *awardRepo) Create(ctx context.Context, input *CreateAwardInput) (*model.Award, error) {
	now := r.timestamp()

	status := input.Status
	if status == "" {
		status = model.AwardStatusPending
	}

	body := map[string]interface{}{
		"status":       status,
		"type":         input.Type,
		"ceremony":     input.CeremonyID,
		"category":     input.CategoryID,
		"submitted_at": now,
	}
	if status == model.AwardStatusApproved {
		body["approved_at"] = now
	}
	if input.Type == model.AwardTypeIndividual {
		body["participant_nominee"] = input.ParticipantNomineeID
	} else {
		body["team_nominee"] = input.TeamNomineeID
	}
	if input.SubmittedByID != "" {
		body["submitted_by"] = input.SubmittedByID
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		body["notes"] = notes
	}

	var award model.Award
	if err := r.store.Create(ctx, CollectionAwards, body, awardFields, &award); err != nil {
		return nil, err
	}
	return &award, nil
}

// SetStatus 更新状态并按生命周期重算 approved_at：
// 切换为 approved 时记为当前时间，其他状态一律置空
func (r *awardRepo) SetStatus(ctx context.Context, id string, status string) (*model.Award, error) {
	body := map[string]interface{}{
		"status":      status,
		"approved_at": nil,
	}
	if status == model.AwardStatusApproved {
		body["approved_at"] = r.timestamp()
	}

	var award model.Award
	if err := r.store.Update(ctx, CollectionAwards, id, body, awardFields, &award); err != nil {
		return nil, err
	}
	return &award, nil
}

func (r *awardRepo) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}
