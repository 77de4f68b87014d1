package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/contribcheck/contribcheck/cmd/contribcheck/internal/clierr"
	"github.com/contribcheck/contribcheck/internal/checker"
	"github.com/contribcheck/contribcheck/internal/config"
	"github.com/contribcheck/contribcheck/internal/logging"
	"github.com/contribcheck/contribcheck/internal/platform/github"
	"github.com/contribcheck/contribcheck/internal/report"
)

func newGitHubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "github",
		Short: "Run the check inside GitHub Actions",
		Long: `Run the contributor check driven by the GitHub Actions environment.
In PR mode (PR_NUMBER, PR_BASE_SHA and PR_HEAD_SHA set) only the PR's commit
range is checked and missing contributors are posted as a PR comment;
otherwise the whole history is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadDotenv()
			log := logging.Default()

			cfg := config.Load(config.Default(), filepath.Join(rootRepoPath, config.File), config.Overrides{
				Mode:         os.Getenv("ACTION_MODE"),
				IgnoreEmails: config.SplitList(os.Getenv("ACTION_IGNORE_EMAILS")),
				IgnoreLogins: config.SplitList(os.Getenv("ACTION_IGNORE_LOGINS")),
			})
			chk := checker.New(rootRepoPath, cfg)

			client := github.NewFromEnv()
			baseSHA := os.Getenv("PR_BASE_SHA")
			headSHA := os.Getenv("PR_HEAD_SHA")
			prMode := client.PRNumber != "" && baseSHA != "" && headSHA != ""

			var res checker.Result
			if prMode {
				log.Info().Msg("running in GitHub PR mode")
				res = chk.CheckRange(cmd.Context(), baseSHA, headSHA, "PR commits")
				if res.MissingOverall.Len() > 0 {
					body := report.CommentBody(res.MissingOverall, "PR")
					if err := client.PostComment(cmd.Context(), body); err != nil {
						// Reporting is best effort; the verdict stands.
						log.Warn().Err(err).Msg("failed to post PR comment")
					}
				}
			} else {
				log.Info().Msg("no PR environment found; checking all contributors")
				res = chk.CheckAll(cmd.Context())
			}

			fmt.Fprint(cmd.OutOrStdout(), report.Summary(res))
			if !res.OK {
				return clierr.New(1, "contributor check failed")
			}
			return nil
		},
	}
}

// loadDotenv loads a local .env file into the environment when present, so
// the adapters can be exercised outside CI.
func loadDotenv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}
