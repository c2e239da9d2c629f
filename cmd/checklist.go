package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/salchaD-27/template-check/internal/checklist"
	"github.com/salchaD-27/template-check/internal/config"
)

func newChecklistCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "checklist",
		Short: "Print the effective checklist as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			list, err := checklist.Load(cfg.Checklist)
			if err != nil {
				return err
			}
			out, err := list.Marshal()
			if err != nil {
				return err
			}
			_, err = stdout.Write(out)
			return err
		},
	}
}
