package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salchaD-27/template-check/internal/checklist"
	"github.com/salchaD-27/template-check/internal/config"
	"github.com/salchaD-27/template-check/internal/logger"
	"github.com/salchaD-27/template-check/internal/report"
	"github.com/salchaD-27/template-check/internal/session"
	"github.com/salchaD-27/template-check/internal/validate"
)

func runValidate(cmd *cobra.Command, stdout io.Writer) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(cfg.LogLevel, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	list, err := checklist.Load(cfg.Checklist)
	if err != nil {
		return err
	}

	root, err := cfg.ResolveRoot()
	if err != nil {
		return err
	}

	// Only the text format streams findings as they are recorded.
	stream := io.Discard
	if cfg.Format == "text" {
		stream = stdout
		fmt.Fprint(stdout, "🚀 Starting Claude Code Command Template validation...\n\n")
	}

	sess, err := session.New(root, stream)
	if err != nil {
		return err
	}
	log.Info("validating template", zap.String("root", sess.Root()))

	res := validate.New(sess, list, log.Named("validate")).Run()

	switch cfg.Format {
	case "json":
		out, err := report.ExportJSON(res.Findings)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)

	case "markdown":
		out, err := report.ExportMarkdown(res.Findings)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)

	case "gha":
		out, err := report.ExportGitHubActions(res.Findings)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, out)

	default:
		report.WriteSummary(stdout, res.Findings)
	}

	if !res.Passed() {
		return ErrValidationFailed
	}
	return nil
}
