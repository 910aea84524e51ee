package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"event-awards/internal/dto"
)

func leaderboardCmd(svc serviceFn) *cobra.Command {
	var (
		ceremonyID string
		xlsxPath   string
	)

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "参赛者 / 队伍获奖榜与待表彰名单",
		Long: `输出参赛者榜、队伍榜、待表彰名单与待审队列。
使用 --xlsx 时同时把榜单导出为 Excel 文件。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := svc()
			if err != nil {
				return err
			}

			result, err := s.Summary.ParticipantTeamSummary(cmd.Context(), ceremonyID)
			if err != nil {
				return err
			}
			renderLeaderboard(cmd.OutOrStdout(), result)

			if xlsxPath == "" {
				return nil
			}
			buf, _, err := s.Export.ExportLeaderboard(cmd.Context(), ceremonyID)
			if err != nil {
				return err
			}
			if err := os.WriteFile(xlsxPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("写入 %s 失败: %w", xlsxPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n已导出 %s\n", xlsxPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&ceremonyID, "ceremony", "c", "", "典礼 ID（默认整场活动）")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "同时导出 Excel 到该路径")
	return cmd
}

func renderLeaderboard(out io.Writer, s *dto.ParticipantTeamSummary) {
	m := s.Metrics
	fmt.Fprintf(out, "%s  已审批 %d · 获奖参赛者 %d / 待表彰 %d · 获奖队伍 %d / 待表彰 %d\n",
		heading("概览"), m.TotalApprovedAwards,
		m.AwardedParticipants, m.PendingParticipants, m.AwardedTeams, m.PendingTeams)

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("参赛者榜"))
	if len(s.ParticipantLeaderboard) == 0 {
		fmt.Fprintln(out, dim("  (无)"))
	}
	for i, p := range s.ParticipantLeaderboard {
		fmt.Fprintf(out, "  %2d. %-24s %-16s %d  %s\n", i+1, p.Name, p.TeamName, p.AwardCount, colorBar(p.Colors))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("队伍榜"))
	if len(s.TeamLeaderboard) == 0 {
		fmt.Fprintln(out, dim("  (无)"))
	}
	for i, t := range s.TeamLeaderboard {
		fmt.Fprintf(out, "  %2d. %-24s %d  (获奖队员 %d)  %s\n", i+1, t.Name, t.AwardCount, t.RecognizedParticipants, colorBar(t.Colors))
	}

	if len(s.ParticipantsPendingRecognition) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, heading("待表彰参赛者"))
		for _, p := range s.ParticipantsPendingRecognition {
			fmt.Fprintf(out, "  - %s %s\n", p.Name, dim(p.TeamName))
		}
	}
	if len(s.TeamsPendingRecognition) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, heading("待表彰队伍"))
		for _, t := range s.TeamsPendingRecognition {
			fmt.Fprintf(out, "  - %s\n", t.Name)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s (%d)\n", heading("待审队列"), len(s.PendingAwards))
	for _, p := range s.PendingAwards {
		fmt.Fprintf(out, "  %s %s %-24s %s  %s\n",
			dim(p.ID), swatch(p.CategoryColor, "■"), p.CategoryName, p.Nominee, dim(p.SubmittedAt))
	}
}
