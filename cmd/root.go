package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when the run recorded at least one error
// finding. The findings have already been reported, so it is not printed.
var ErrValidationFailed = errors.New("template validation failed")

// NewRootCmd builds the command tree. Output goes to stdout and errors to
// stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "template-check",
		Short: "Validate the layout of a Claude command template repository",
		Long: `template-check verifies that a command template repository contains its
required files, command documents, GitHub templates, documentation and
package metadata. It exits 1 when any required artifact is missing.

Without --root the project root is the directory one level above the
one holding the executable.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, stdout)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().String("root", "", "Project root to validate")
	rootCmd.PersistentFlags().String("checklist", "", "YAML checklist replacing the built-in one")
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level: debug|info|warn|error")
	rootCmd.Flags().StringP("format", "f", "text", "Output format: text|json|markdown|gha")

	rootCmd.AddCommand(newChecklistCmd(stdout))
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrValidationFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
