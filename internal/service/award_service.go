package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"event-awards/internal/dto"
	"event-awards/internal/model"
	"event-awards/internal/repository"
	pkgerrors "event-awards/pkg/errors"
)

// AwardService 奖项业务接口
type AwardService interface {
	List(ctx context.Context, ceremonyID string) ([]dto.AwardResponse, error)
	Create(ctx context.Context, req *dto.CreateAwardRequest) (*dto.AwardResponse, error)
	SetStatus(ctx context.Context, id string, status string) (*dto.AwardResponse, error)
	// Approve 等价于 SetStatus(id, approved)
	Approve(ctx context.Context, id string) (*dto.AwardResponse, error)
}

type awardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAwardService 创建 AwardService 实例
func NewAwardService(repo *repository.Repository, logger *zap.Logger) AwardService {
	return &awardService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *awardService) List(ctx context.Context, ceremonyID string) ([]dto.AwardResponse, error) {
	awards, err := s.repo.Award.List(ctx, strings.TrimSpace(ceremonyID))
	if err != nil {
		s.logger.Error("查询奖项失败", zap.String("op", "award.list"), zap.String("ceremony_id", ceremonyID), zap.Error(err))
		return nil, upstream("award.list", err)
	}

	result := make([]dto.AwardResponse, 0, len(awards))
	for i := range awards {
		result = append(result, *toAwardResponse(&awards[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *awardService) Create(ctx context.Context, req *dto.CreateAwardRequest) (*dto.AwardResponse, error) {
	input, err := validateCreateAward(req)
	if err != nil {
		return nil, err
	}

	award, err := s.repo.Award.Create(ctx, input)
	if err != nil {
		s.logger.Error("创建奖项失败",
			zap.String("op", "award.create"),
			zap.String("ceremony_id", input.CeremonyID),
			zap.String("category_id", input.CategoryID),
			zap.String("type", input.Type),
			zap.Error(err),
		)
		return nil, upstream("award.create", err)
	}

	s.logger.Info("奖项已提名",
		zap.String("award_id", award.ID.String()),
		zap.String("type", award.Type),
		zap.String("ceremony_id", input.CeremonyID),
	)
	return toAwardResponse(award), nil
}

// validateCreateAward 校验必填项与类型 / 提名对象的对应关系
func validateCreateAward(req *dto.CreateAwardRequest) (*repository.CreateAwardInput, error) {
	if req == nil {
		return nil, pkgerrors.NewValidation("", "请求体不能为空")
	}

	input := &repository.CreateAwardInput{
		CeremonyID:           strings.TrimSpace(req.CeremonyID),
		CategoryID:           strings.TrimSpace(req.CategoryID),
		Type:                 strings.TrimSpace(req.Type),
		ParticipantNomineeID: strings.TrimSpace(req.ParticipantNomineeID),
		TeamNomineeID:        strings.TrimSpace(req.TeamNomineeID),
		SubmittedByID:        strings.TrimSpace(req.SubmittedByID),
		Notes:                req.Notes,
	}

	switch {
	case input.CeremonyID == "":
		return nil, pkgerrors.NewValidation("ceremony_id", "不能为空")
	case input.CategoryID == "":
		return nil, pkgerrors.NewValidation("category_id", "不能为空")
	case input.Type == "":
		return nil, pkgerrors.NewValidation("type", "不能为空")
	case !model.IsValidAwardType(input.Type):
		return nil, pkgerrors.NewValidation("type", "必须为 individual、team 或 overall")
	}

	if input.Type == model.AwardTypeIndividual {
		if input.ParticipantNomineeID == "" {
			return nil, pkgerrors.NewValidation("participant_nominee_id", "个人奖必须指定参赛者")
		}
		input.TeamNomineeID = ""
	} else {
		if input.TeamNomineeID == "" {
			return nil, pkgerrors.NewValidation("team_nominee_id", "团队奖必须指定队伍")
		}
		input.ParticipantNomineeID = ""
	}

	return input, nil
}

// ────────────────────── SetStatus ──────────────────────

func (s *awardService) SetStatus(ctx context.Context, id string, status string) (*dto.AwardResponse, error) {
	id = strings.TrimSpace(id)
	status = strings.TrimSpace(status)
	if id == "" {
		return nil, pkgerrors.NewValidation("id", "奖项ID不能为空")
	}
	if !model.IsValidAwardStatus(status) {
		return nil, pkgerrors.NewValidation("status", "必须为 pending、approved 或 rejected")
	}

	award, err := s.repo.Award.SetStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("更新奖项状态失败",
			zap.String("op", "award.set_status"),
			zap.String("award_id", id),
			zap.String("status", status),
			zap.Error(err),
		)
		return nil, upstream("award.set_status", err)
	}

	s.logger.Info("奖项状态已更新", zap.String("award_id", id), zap.String("status", status))
	return toAwardResponse(award), nil
}

// ────────────────────── Approve ──────────────────────

func (s *awardService) Approve(ctx context.Context, id string) (*dto.AwardResponse, error) {
	return s.SetStatus(ctx, id, model.AwardStatusApproved)
}
