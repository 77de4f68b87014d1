// Package gitlog queries git history for raw contributor identity lines.
// Output lines are "Name <email>", already alias-resolved through .mailmap.
package gitlog

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/contribcheck/contribcheck/internal/logging"
)

const identityFormat = "--format=%aN <%aE>"

// All returns one raw identity line per commit across the entire history.
// A failing git invocation is logged and degrades to no lines.
func All(ctx context.Context, repoPath string) []string {
	return run(ctx, repoPath, "log", "--use-mailmap", identityFormat, "--all")
}

// Range returns one raw identity line per commit in fromSHA..toSHA.
// Missing bounds degrade to no lines; range checks need both ends.
func Range(ctx context.Context, repoPath, fromSHA, toSHA string) []string {
	if fromSHA == "" || toSHA == "" {
		log := logging.Default()
		log.Info().Msg("base and head SHAs not provided; skipping history query")
		return nil
	}
	span := fmt.Sprintf("%s..%s", fromSHA, toSHA)
	return run(ctx, repoPath, "log", "--use-mailmap", identityFormat, span)
}

func run(ctx context.Context, repoPath string, args ...string) []string {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath
	out, err := cmd.Output()
	if err != nil {
		stderr := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		log := logging.Default()
		log.Warn().
			Err(err).
			Str("args", strings.Join(args, " ")).
			Str("stderr", stderr).
			Msg("git failed")
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n")
}
