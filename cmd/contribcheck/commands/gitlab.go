package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/contribcheck/contribcheck/cmd/contribcheck/internal/clierr"
	"github.com/contribcheck/contribcheck/internal/checker"
	"github.com/contribcheck/contribcheck/internal/config"
	"github.com/contribcheck/contribcheck/internal/logging"
	"github.com/contribcheck/contribcheck/internal/platform/gitlab"
	"github.com/contribcheck/contribcheck/internal/report"
)

// gitlabDefaults extends the built-in ignore lists with GitLab's own service
// identities.
func gitlabDefaults() config.Config {
	cfg := config.Default()
	cfg.IgnoreEmails = append(cfg.IgnoreEmails, "noreply@gitlab.com")
	cfg.IgnoreLogins = append(cfg.IgnoreLogins, "gitlab-bot")
	return cfg
}

func newGitLabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gitlab",
		Short: "Run the check inside GitLab CI",
		Long: `Run the contributor check driven by the GitLab CI environment.
In MR mode (CI_MERGE_REQUEST_IID, CI_MERGE_REQUEST_TARGET_BRANCH_SHA and
CI_COMMIT_SHA set) only the MR's commit range is checked and missing
contributors are posted as an MR note; otherwise the whole history is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadDotenv()
			log := logging.Default()

			ov := config.Overrides{
				IgnoreEmails: config.SplitList(os.Getenv("IGNORE_EMAILS")),
				IgnoreLogins: config.SplitList(os.Getenv("IGNORE_LOGINS")),
			}
			if mode := strings.ToLower(strings.TrimSpace(os.Getenv("MODE"))); mode == config.ModeWarn || mode == config.ModeFail {
				ov.Mode = mode
			}
			cfg := config.Load(gitlabDefaults(), filepath.Join(rootRepoPath, config.File), ov)
			chk := checker.New(rootRepoPath, cfg)

			client := gitlab.NewFromEnv()
			targetSHA := os.Getenv("CI_MERGE_REQUEST_TARGET_BRANCH_SHA")
			sourceSHA := os.Getenv("CI_COMMIT_SHA")
			mrMode := client.MRIID != "" && targetSHA != "" && sourceSHA != ""

			var res checker.Result
			if mrMode {
				log.Info().Msg("running in GitLab MR mode")
				res = chk.CheckRange(cmd.Context(), targetSHA, sourceSHA, "MR commits")
				if res.MissingOverall.Len() > 0 {
					body := report.CommentBody(res.MissingOverall, "MR")
					if err := client.PostComment(cmd.Context(), body); err != nil {
						// Reporting is best effort; the verdict stands.
						log.Warn().Err(err).Msg("failed to post MR note")
					}
				}
			} else {
				log.Info().Msg("no MR environment found; checking all contributors")
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
