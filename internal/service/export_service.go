package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"event-awards/internal/dto"
	"event-awards/internal/repository"
)

// ErrExportGenerateFail 生成 Excel 失败
var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出内容直接复用参赛者 / 队伍汇总，不单独计算
//   - 以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 三个 Sheet：参赛者榜、队伍榜、待审奖项
type ExportService interface {
	// ExportLeaderboard ceremonyID 为空时导出整场活动
	ExportLeaderboard(ctx context.Context, ceremonyID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	summary SummaryService
	repo    *repository.Repository
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(summarySvc SummaryService, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{summary: summarySvc, repo: repo, logger: logger}
}

const (
	sheetParticipants = "参赛者榜"
	sheetTeams        = "队伍榜"
	sheetPending      = "待审奖项"
)

// ═══════════════════════════════════════════════════════════
// ExportLeaderboard 导出获奖榜单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 参赛者榜：排名 / 姓名 / 队伍 / 获奖数 / 颜色分布，随后是待表彰参赛者
//   - 队伍榜：全部已获奖队伍，随后是待表彰队伍
//   - 待审奖项：类别 / 类型 / 提名对象 / 提交时间
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportLeaderboard(ctx context.Context, ceremonyID string) (*bytes.Buffer, string, error) {
	data, err := s.summary.ParticipantTeamSummary(ctx, ceremonyID)
	if err != nil {
		return nil, "", err
	}

	title := s.ceremonyName(ctx, strings.TrimSpace(ceremonyID))

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	sectionStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})

	w := &sheetWriter{f: f, header: headerStyle, section: sectionStyle}

	// 1. 参赛者榜
	w.open(sheetParticipants, []float64{8, 24, 20, 10, 36})
	w.sectionRow(fmt.Sprintf("%s · 参赛者获奖榜", title))
	w.headerRow("排名", "姓名", "队伍", "获奖数", "颜色分布")
	for i, p := range data.ParticipantLeaderboard {
		w.row(i+1, p.Name, p.TeamName, p.AwardCount, colorSummary(p.Colors))
	}
	w.blank()
	w.sectionRow("待表彰参赛者")
	w.headerRow("", "姓名", "队伍", "获奖数", "")
	for _, p := range data.ParticipantsPendingRecognition {
		w.row("", p.Name, p.TeamName, p.AwardCount, "")
	}

	// 2. 队伍榜
	w.open(sheetTeams, []float64{8, 24, 12, 14, 36})
	w.sectionRow(fmt.Sprintf("%s · 队伍获奖榜", title))
	w.headerRow("排名", "队伍", "团队奖数", "获奖队员数", "颜色分布")
	for i, t := range data.Teams {
		w.row(i+1, t.Name, t.AwardCount, t.RecognizedParticipants, colorSummary(t.Colors))
	}
	w.blank()
	w.sectionRow("待表彰队伍")
	w.headerRow("", "队伍", "团队奖数", "获奖队员数", "")
	for _, t := range data.TeamsPendingRecognition {
		w.row("", t.Name, t.AwardCount, t.RecognizedParticipants, "")
	}

	// 3. 待审奖项
	w.open(sheetPending, []float64{24, 12, 28, 24})
	w.headerRow("类别", "类型", "提名对象", "提交时间")
	for _, p := range data.PendingAwards {
		w.row(p.CategoryName, p.Type, p.Nominee, p.SubmittedAt)
	}

	if idx, err := f.GetSheetIndex(sheetParticipants); err == nil {
		f.SetActiveSheet(idx)
	}
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	if w.err != nil {
		s.logger.Error("填充 Excel 失败", zap.Error(w.err))
		return nil, "", ErrExportGenerateFail
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("获奖榜单_%s.xlsx", title)
	return buf, filename, nil
}

// ceremonyName 典礼名称仅用于标题，查询失败时退回 ID
func (s *exportService) ceremonyName(ctx context.Context, ceremonyID string) string {
	if ceremonyID == "" {
		return "全部典礼"
	}
	ceremonies, err := s.repo.Ceremony.List(ctx)
	if err != nil {
		s.logger.Warn("查询典礼名称失败，使用 ID 作为标题", zap.String("ceremony_id", ceremonyID), zap.Error(err))
		return ceremonyID
	}
	for _, c := range ceremonies {
		if c.ID.String() == ceremonyID && strings.TrimSpace(c.Name) != "" {
			return strings.TrimSpace(c.Name)
		}
	}
	return ceremonyID
}

// colorSummary 形如 "blue×2, red×1"
func colorSummary(colors []dto.ColorCount) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, fmt.Sprintf("%s×%d", c.Color, c.Count))
	}
	return strings.Join(parts, ", ")
}

// ── 辅助类型 ──

// sheetWriter 逐行写入当前 Sheet，记录第一个错误
type sheetWriter struct {
	f       *excelize.File
	sheet   string
	rowNum  int
	header  int
	section int
	err     error
}

func (w *sheetWriter) open(name string, widths []float64) {
	if _, err := w.f.NewSheet(name); err != nil && w.err == nil {
		w.err = err
	}
	w.sheet = name
	w.rowNum = 1
	for i, width := range widths {
		col := colName(i)
		w.f.SetColWidth(name, col, col, width)
	}
}

func (w *sheetWriter) row(values ...interface{}) {
	if w.err != nil {
		return
	}
	start, _ := excelize.CoordinatesToCellName(1, w.rowNum)
	if err := w.f.SetSheetRow(w.sheet, start, &values); err != nil {
		w.err = err
		return
	}
	w.rowNum++
}

func (w *sheetWriter) styled(style int, values ...interface{}) {
	first := w.rowNum
	w.row(values...)
	if w.err != nil {
		return
	}
	from, _ := excelize.CoordinatesToCellName(1, first)
	to, _ := excelize.CoordinatesToCellName(len(values), first)
	w.f.SetCellStyle(w.sheet, from, to, style)
}

func (w *sheetWriter) headerRow(values ...interface{}) { w.styled(w.header, values...) }

func (w *sheetWriter) sectionRow(text string) { w.styled(w.section, text) }

func (w *sheetWriter) blank() { w.rowNum++ }

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}
