package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"event-awards/internal/model"
	"event-awards/internal/repository"
)

// errStore 模拟内容库故障
var errStore = fmt.Errorf("内容库 GET awards 返回 503: upstream down")

// ── Mock AwardRepository ──

type mockAwardRepo struct {
	awards  map[string]*model.Award
	nextID  int
	now     string
	listErr error
	calls   int // 写操作次数
}

func newMockAwardRepo() *mockAwardRepo {
	return &mockAwardRepo{
		awards: make(map[string]*model.Award),
		now:    "2025-06-01T12:00:00Z",
	}
}

func (m *mockAwardRepo) put(a model.Award) {
	m.awards[a.ID.String()] = &a
}

func (m *mockAwardRepo) sorted(keep func(*model.Award) bool) []model.Award {
	var result []model.Award
	for _, a := range m.awards {
		if keep(a) {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockAwardRepo) List(_ context.Context, ceremonyID string) ([]model.Award, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sorted(func(a *model.Award) bool {
		return ceremonyID == "" || a.CeremonyID().String() == ceremonyID
	}), nil
}

func (m *mockAwardRepo) ListByParticipant(_ context.Context, participantID string) ([]model.Award, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sorted(func(a *model.Award) bool {
		return a.ParticipantNominee != nil && a.ParticipantNominee.ID.String() == participantID
	}), nil
}

func (m *mockAwardRepo) ListByTeam(_ context.Context, teamID string) ([]model.Award, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sorted(func(a *model.Award) bool {
		return a.TeamNominee != nil && a.TeamNominee.ID.String() == teamID
	}), nil
}

func (m *mockAwardRepo) Create(_ context.Context, input *repository.CreateAwardInput) (*model.Award, error) {
	m.calls++
	m.nextID++
	status := input.Status
	if status == "" {
		status = model.AwardStatusPending
	}
	a := model.Award{
		ID:          model.ID(fmt.Sprintf("a-%d", m.nextID)),
		Status:      status,
		Type:        input.Type,
		SubmittedAt: m.now,
		Notes:       strings.TrimSpace(input.Notes),
		Category:    &model.Category{ID: model.ID(input.CategoryID)},
		Ceremony:    &model.Ceremony{ID: model.ID(input.CeremonyID)},
	}
	if input.ParticipantNomineeID != "" {
		a.ParticipantNominee = &model.Participant{ID: model.ID(input.ParticipantNomineeID)}
	}
	if input.TeamNomineeID != "" {
		a.TeamNominee = &model.Team{ID: model.ID(input.TeamNomineeID)}
	}
	m.put(a)
	return &a, nil
}

func (m *mockAwardRepo) SetStatus(_ context.Context, id string, status string) (*model.Award, error) {
	m.calls++
	a, ok := m.awards[id]
	if !ok {
		return nil, fmt.Errorf("内容库 PATCH awards 返回 404: not found")
	}
	a.Status = status
	a.ApprovedAt = ""
	if status == model.AwardStatusApproved {
		a.ApprovedAt = m.now
	}
	out := *a
	return &out, nil
}

// ── Mock 基础数据 Repository ──

type mockCeremonyRepo struct {
	ceremonies []model.Ceremony
	err        error
}

func (m *mockCeremonyRepo) List(_ context.Context) ([]model.Ceremony, error) {
	return m.ceremonies, m.err
}

type mockCategoryRepo struct {
	categories []model.Category
	err        error
}

func (m *mockCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	return m.categories, m.err
}

type mockParticipantRepo struct {
	participants []model.Participant
	err          error
}

func (m *mockParticipantRepo) List(_ context.Context) ([]model.Participant, error) {
	return m.participants, m.err
}

type mockTeamRepo struct {
	teams []model.Team
	err   error
}

func (m *mockTeamRepo) List(_ context.Context) ([]model.Team, error) {
	return m.teams, m.err
}

// ── 聚合 ──

type mockRepos struct {
	award       *mockAwardRepo
	ceremony    *mockCeremonyRepo
	category    *mockCategoryRepo
	participant *mockParticipantRepo
	team        *mockTeamRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		award:       newMockAwardRepo(),
		ceremony:    &mockCeremonyRepo{},
		category:    &mockCategoryRepo{},
		participant: &mockParticipantRepo{},
		team:        &mockTeamRepo{},
	}
	repo := &repository.Repository{
		Ceremony:    m.ceremony,
		Award:       m.award,
		Category:    m.category,
		Participant: m.participant,
		Team:        m.team,
	}
	return repo, m
}
