// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands builds the contribcheck command tree. contribcheck verifies
// that every contributor in git history is credited in CITATION.cff or
// codemeta.json, and can report discrepancies back to GitHub or GitLab.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contribcheck/contribcheck/internal/logging"
)

var (
	rootVerbose  bool
	rootRepoPath string
)

// NewRootCmd constructs the contribcheck root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("CONTRIBCHECK_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "contribcheck",
		Short:         "Check that git contributors are credited in citation metadata",
		Long:          "contribcheck compares contributors found in git history against CITATION.cff and codemeta.json, and optionally posts the result as a PR/MR comment from CI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(rootVerbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVar(&rootRepoPath, "repo-path", ".", "path to the repository root")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of contribcheck",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "contribcheck version %s\n", version)
		},
	})

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newGitHubCmd())
	cmd.AddCommand(newGitLabCmd())

	return cmd
}
