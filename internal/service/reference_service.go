package service

import (
	"context"

	"go.uber.org/zap"

	"event-awards/internal/dto"
	"event-awards/internal/repository"
)

// ReferenceService 基础数据（典礼、类别、参赛者、队伍）只读接口
type ReferenceService interface {
	ListCeremonies(ctx context.Context) ([]dto.CeremonyResponse, error)
	ListCategories(ctx context.Context, awardType string) ([]dto.CategoryResponse, error)
	ListParticipants(ctx context.Context) ([]dto.ParticipantResponse, error)
	ListTeams(ctx context.Context) ([]dto.TeamResponse, error)
}

type referenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReferenceService 创建 ReferenceService 实例
func NewReferenceService(repo *repository.Repository, logger *zap.Logger) ReferenceService {
	return &referenceService{repo: repo, logger: logger}
}

func (s *referenceService) ListCeremonies(ctx context.Context) ([]dto.CeremonyResponse, error) {
	ceremonies, err := s.repo.Ceremony.List(ctx)
	if err != nil {
		s.logger.Error("查询典礼失败", zap.String("op", "ceremony.list"), zap.Error(err))
		return nil, upstream("ceremony.list", err)
	}

	result := make([]dto.CeremonyResponse, 0, len(ceremonies))
	for i := range ceremonies {
		result = append(result, toCeremonyResponse(&ceremonies[i]))
	}
	return result, nil
}

// ListCategories awardType 非空时只返回允许该类型的类别（供提名表单使用）
func (s *referenceService) ListCategories(ctx context.Context, awardType string) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.Category.List(ctx)
	if err != nil {
		s.logger.Error("查询奖项类别失败", zap.String("op", "category.list"), zap.Error(err))
		return nil, upstream("category.list", err)
	}

	result := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		if awardType != "" && !categories[i].Allows(awardType) {
			continue
		}
		result = append(result, toCategoryResponse(&categories[i]))
	}
	return result, nil
}

func (s *referenceService) ListParticipants(ctx context.Context) ([]dto.ParticipantResponse, error) {
	participants, err := s.repo.Participant.List(ctx)
	if err != nil {
		s.logger.Error("查询参赛者失败", zap.String("op", "participant.list"), zap.Error(err))
		return nil, upstream("participant.list", err)
	}

	result := make([]dto.ParticipantResponse, 0, len(participants))
	for i := range participants {
		result = append(result, toParticipantResponse(&participants[i]))
	}
	return result, nil
}

func (s *referenceService) ListTeams(ctx context.Context) ([]dto.TeamResponse, error) {
	teams, err := s.repo.Team.List(ctx)
	if err != nil {
		s.logger.Error("查询队伍失败", zap.String("op", "team.list"), zap.Error(err))
		return nil, upstream("team.list", err)
	}

	result := make([]dto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		result = append(result, dto.TeamResponse{ID: t.ID.String(), Name: t.Name})
	}
	return result, nil
}
