package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"event-awards/internal/dto"
)

func approveCmd(svc serviceFn) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <award-id>",
		Short: "审批通过奖项",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := svc()
			if err != nil {
				return err
			}

			award, err := s.Award.Approve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderAward(cmd.OutOrStdout(), award)
			return nil
		},
	}
}

func statusCmd(svc serviceFn) *cobra.Command {
	return &cobra.Command{
		Use:   "status <award-id> <pending|approved|rejected>",
		Short: "修改奖项状态",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := svc()
			if err != nil {
				return err
			}

			award, err := s.Award.SetStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			renderAward(cmd.OutOrStdout(), award)
			return nil
		},
	}
}

func renderAward(out io.Writer, a *dto.AwardResponse) {
	category, colorToken := "Unknown category", ""
	if a.Category != nil {
		category, colorToken = a.Category.Name, a.Category.Color
	}
	fmt.Fprintf(out, "%s %s %s · %s\n", a.ID, colorizeStatus(a.Status), swatch(colorToken, category), a.Nominee)
	if a.ApprovedAt != nil {
		fmt.Fprintf(out, "  approved_at: %s\n", *a.ApprovedAt)
	}
}
