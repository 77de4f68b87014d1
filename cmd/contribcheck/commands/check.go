package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/contribcheck/contribcheck/cmd/contribcheck/internal/clierr"
	"github.com/contribcheck/contribcheck/internal/checker"
	"github.com/contribcheck/contribcheck/internal/config"
	"github.com/contribcheck/contribcheck/internal/report"
)

func newCheckCmd() *cobra.Command {
	var (
		mode         string
		ignoreEmails []string
		ignoreLogins []string
		fromSHA      string
		toSHA        string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check contributors against citation metadata",
		Long: `Check that contributors found in git history are listed in CITATION.cff
or codemeta.json. Checks the whole history by default, or a commit range when
both --from-sha and --to-sha are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (fromSHA == "") != (toSHA == "") {
				return clierr.New(1, "both --from-sha and --to-sha must be provided for range checking")
			}
			if mode != config.ModeWarn && mode != config.ModeFail {
				return clierr.New(1, fmt.Sprintf("invalid mode %q (expected warn or fail)", mode))
			}

			ov := config.Overrides{
				IgnoreEmails: ignoreEmails,
				IgnoreLogins: ignoreLogins,
			}
			if cmd.Flags().Changed("mode") {
				ov.Mode = mode
			}
			cfg := config.Load(config.Default(), filepath.Join(rootRepoPath, config.File), ov)
			chk := checker.New(rootRepoPath, cfg)

			var res checker.Result
			if fromSHA != "" {
				res = chk.CheckRange(cmd.Context(), fromSHA, toSHA, "specified range")
			} else {
				res = chk.CheckAll(cmd.Context())
			}

			fmt.Fprint(cmd.OutOrStdout(), report.Summary(res))
			if !res.OK {
				return clierr.New(1, "contributor check failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", config.ModeWarn, "behavior mode: warn or fail")
	cmd.Flags().StringArrayVar(&ignoreEmails, "ignore-emails", nil, "email addresses to ignore (repeatable)")
	cmd.Flags().StringArrayVar(&ignoreLogins, "ignore-logins", nil, "login substrings to ignore (repeatable)")
	cmd.Flags().StringVar(&fromSHA, "from-sha", "", "start commit SHA for range checking (requires --to-sha)")
	cmd.Flags().StringVar(&toSHA, "to-sha", "", "end commit SHA for range checking (requires --from-sha)")

	return cmd
}
