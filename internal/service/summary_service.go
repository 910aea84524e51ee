package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"event-awards/internal/dto"
	"event-awards/internal/model"
	"event-awards/internal/repository"
	"event-awards/internal/summary"
	pkgerrors "event-awards/pkg/errors"
)

// SummaryService 仪表盘汇总接口
//
// 所有汇总均为无状态计算：每次调用重新从内容库拉取数据，
// 任一拉取失败即整体失败，不返回部分结果。
type SummaryService interface {
	// CeremonySummary ceremonyID 为空时汇总整场活动
	CeremonySummary(ctx context.Context, ceremonyID string) (*dto.CeremonySummary, error)
	ParticipantTeamSummary(ctx context.Context, ceremonyID string) (*dto.ParticipantTeamSummary, error)
	ParticipantAwards(ctx context.Context, participantID string) (*dto.EntityAwards, error)
	TeamAwards(ctx context.Context, teamID string) (*dto.EntityAwards, error)
}

type summaryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSummaryService 创建 SummaryService 实例
func NewSummaryService(repo *repository.Repository, logger *zap.Logger) SummaryService {
	return &summaryService{repo: repo, logger: logger}
}

// ────────────────────── CeremonySummary ──────────────────────

func (s *summaryService) CeremonySummary(ctx context.Context, ceremonyID string) (*dto.CeremonySummary, error) {
	ceremonyID = strings.TrimSpace(ceremonyID)

	awards, err := s.repo.Award.List(ctx, ceremonyID)
	if err != nil {
		s.logger.Error("拉取典礼奖项失败",
			zap.String("op", "summary.ceremony"),
			zap.String("ceremony_id", ceremonyID),
			zap.Error(err),
		)
		return nil, upstream("summary.ceremony", err)
	}

	return summary.BuildCeremonySummary(awards), nil
}

// ────────────────────── ParticipantTeamSummary ──────────────────────

// ParticipantTeamSummary 并行拉取奖项、参赛者、队伍，全部成功后再计算
func (s *summaryService) ParticipantTeamSummary(ctx context.Context, ceremonyID string) (*dto.ParticipantTeamSummary, error) {
	ceremonyID = strings.TrimSpace(ceremonyID)

	var (
		awards       []model.Award
		participants []model.Participant
		teams        []model.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		awards, err = s.repo.Award.List(gctx, ceremonyID)
		return err
	})
	g.Go(func() error {
		var err error
		participants, err = s.repo.Participant.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.repo.Team.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("拉取参赛者 / 队伍汇总数据失败",
			zap.String("op", "summary.participants_teams"),
			zap.String("ceremony_id", ceremonyID),
			zap.Error(err),
		)
		return nil, upstream("summary.participants_teams", err)
	}

	return summary.BuildParticipantTeamSummary(awards, participants, teams), nil
}

// ────────────────────── 单个实体的奖项历史 ──────────────────────

func (s *summaryService) ParticipantAwards(ctx context.Context, participantID string) (*dto.EntityAwards, error) {
	return s.entityAwards(ctx, summary.EntityParticipant, participantID, s.repo.Award.ListByParticipant)
}

func (s *summaryService) TeamAwards(ctx context.Context, teamID string) (*dto.EntityAwards, error) {
	return s.entityAwards(ctx, summary.EntityTeam, teamID, s.repo.Award.ListByTeam)
}

type awardLister func(ctx context.Context, id string) ([]model.Award, error)

func (s *summaryService) entityAwards(ctx context.Context, kind, id string, list awardLister) (*dto.EntityAwards, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, pkgerrors.NewValidation("id", kind+" ID 不能为空")
	}

	var (
		awards     []model.Award
		ceremonies []model.Ceremony
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		awards, err = list(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		ceremonies, err = s.repo.Ceremony.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("拉取奖项历史失败",
			zap.String("op", "summary."+kind+"_awards"),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, upstream("summary."+kind+"_awards", err)
	}

	return summary.BuildEntityAwards(kind, id, awards, ceremonies), nil
}
