package repository

import (
	"context"

	"event-awards/internal/model"
	"event-awards/pkg/contentstore"
)

// ── 典礼 ──

// CeremonyRepository 典礼数据访问接口
type CeremonyRepository interface {
	List(ctx context.Context) ([]model.Ceremony, error)
}

type ceremonyRepo struct {
	store Store
}

// NewCeremonyRepo 创建 CeremonyRepository 实例
func NewCeremonyRepo(store Store) CeremonyRepository {
	return &ceremonyRepo{store: store}
}

// List 按 order 升序返回全部典礼
func (r *ceremonyRepo) List(ctx context.Context) ([]model.Ceremony, error) {
	var ceremonies []model.Ceremony
	err := r.store.List(ctx, CollectionCeremonies, contentstore.Query{
		Fields: []string{"id", "name", "order", "notes"},
		Sort:   []string{"order"},
	}, &ceremonies)
	return ceremonies, err
}

// ── 奖项类别 ──

// CategoryRepository 奖项类别数据访问接口
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
}

type categoryRepo struct {
	store Store
}

// NewCategoryRepo 创建 CategoryRepository 实例
func NewCategoryRepo(store Store) CategoryRepository {
	return &categoryRepo{store: store}
}

// List 按名称升序返回全部类别，type 缺失时补为空集
func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.store.List(ctx, CollectionCategories, contentstore.Query{
		Fields: []string{"id", "name", "color", "type", "description"},
		Sort:   []string{"name"},
	}, &categories)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Type == nil {
			categories[i].Type = []string{}
		}
	}
	return categories, nil
}

// ── 参赛者 ──

// ParticipantRepository 参赛者数据访问接口
type ParticipantRepository interface {
	List(ctx context.Context) ([]model.Participant, error)
}

type participantRepo struct {
	store Store
}

// NewParticipantRepo 创建 ParticipantRepository 实例
func NewParticipantRepo(store Store) ParticipantRepository {
	return &participantRepo{store: store}
}

func (r *participantRepo) List(ctx context.Context) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.store.List(ctx, CollectionParticipants, contentstore.Query{
		Fields: []string{"id", "first_name", "last_name", "nganh", "team.id", "team.name"},
	}, &participants)
	return participants, err
}

// ── 队伍 ──

// TeamRepository 队伍数据访问接口
type TeamRepository interface {
	List(ctx context.Context) ([]model.Team, error)
}

type teamRepo struct {
	store Store
}

// NewTeamRepo 创建 TeamRepository 实例
func NewTeamRepo(store Store) TeamRepository {
	return &teamRepo{store: store}
}

func (r *teamRepo) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.store.List(ctx, CollectionTeams, contentstore.Query{
		Fields: []string{"id", "name"},
	}, &teams)
	return teams, err
}
