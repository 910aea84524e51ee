package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"event-awards/internal/dto"
)

func summaryCmd(svc serviceFn) *cobra.Command {
	var ceremonyID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "典礼汇总：状态计数、最近审批 / 待审、颜色分布",
		Long: `输出单个典礼的汇总；不指定 --ceremony 时汇总整场活动。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := svc()
			if err != nil {
				return err
			}

			result, err := s.Summary.CeremonySummary(cmd.Context(), ceremonyID)
			if err != nil {
				return err
			}

			renderCeremonySummary(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&ceremonyID, "ceremony", "c", "", "典礼 ID（默认整场活动）")
	return cmd
}

func renderCeremonySummary(out io.Writer, s *dto.CeremonySummary) {
	m := s.Metrics
	fmt.Fprintf(out, "%s  %s · %s · %s · %s\n",
		heading("奖项"),
		pluralize(m.Total, "award", "awards"),
		colorizeStatus("approved")+fmt.Sprintf(" %d", m.Approved),
		colorizeStatus("pending")+fmt.Sprintf(" %d", m.Pending),
		colorizeStatus("rejected")+fmt.Sprintf(" %d", m.Rejected),
	)
	fmt.Fprintf(out, "获奖个人 %d，获奖队伍 %d\n", m.IndividualsAwarded, m.TeamsAwarded)

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("最近审批"))
	renderEntries(out, s.LatestApproved)

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("最近待审"))
	renderEntries(out, s.LatestPending)

	if len(s.ColorBreakdown) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s  %s\n", heading("颜色分布"), colorBar(s.ColorBreakdown))
	}
}

func renderEntries(out io.Writer, entries []dto.AwardEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, dim("  (无)"))
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %s %-24s %-10s %s  %s\n",
			swatch(e.CategoryColor, "■"), e.CategoryName, e.Type, e.Nominee, dim(e.Timestamp))
	}
}
