package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ceremoniesCmd(svc serviceFn) *cobra.Command {
	return &cobra.Command{
		Use:   "ceremonies",
		Short: "列出全部典礼（按顺序）",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := svc()
			if err != nil {
				return err
			}

			list, err := s.Reference.ListCeremonies(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, dim("(暂无典礼)"))
				return nil
			}
			for _, c := range list {
				order := "-"
				if c.Order != nil {
					order = fmt.Sprintf("%d", *c.Order)
				}
				fmt.Fprintf(out, "%3s  %-8s %s\n", order, dim(c.ID), c.Name)
			}
			return nil
		},
	}
}
