// Package checker reconciles actual contributors from git history against
// declared contributors in citation metadata.
package checker

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/contribcheck/contribcheck/internal/config"
	"github.com/contribcheck/contribcheck/internal/gitlog"
	"github.com/contribcheck/contribcheck/internal/identity"
	"github.com/contribcheck/contribcheck/internal/logging"
	"github.com/contribcheck/contribcheck/internal/metadata"
	"github.com/contribcheck/contribcheck/internal/policy"
)

// Result is the outcome of one contributor check.
type Result struct {
	// Contributors are the filtered identities found in git history.
	Contributors identity.Set
	// Citation and Codemeta are the declared identities per metadata file.
	Citation identity.Set
	Codemeta identity.Set
	// MissingCitation and MissingCodemeta are per-file diagnostics.
	MissingCitation identity.Set
	MissingCodemeta identity.Set
	// MissingOverall holds contributors declared in neither file. This is the
	// authoritative set: someone listed in either file alone is not missing.
	MissingOverall identity.Set
	Mode           string
	Context        string
	OK             bool
}

// Checker runs contributor checks against one repository.
type Checker struct {
	repoPath string
	cfg      config.Config
	log      zerolog.Logger
}

// New creates a Checker for the repository at repoPath.
func New(repoPath string, cfg config.Config) *Checker {
	if repoPath == "" {
		repoPath = "."
	}
	return &Checker{repoPath: repoPath, cfg: cfg, log: logging.Default()}
}

// FindMissing returns the subset of actual whose normalized key has no match
// among the normalized keys of declared. One pass over each set; when two
// declared entries share a key the later one wins the slot, which is
// irrelevant since only key presence is tested.
func FindMissing(actual, declared identity.Set) identity.Set {
	keys := make(map[string]string, declared.Len())
	for d := range declared {
		keys[identity.Normalize(d)] = d
	}

	missing := identity.NewSet()
	for a := range actual {
		if _, ok := keys[identity.Normalize(a)]; !ok {
			missing.Add(a)
		}
	}
	return missing
}

// CheckAll checks every contributor in the repository history.
func (c *Checker) CheckAll(ctx context.Context) Result {
	lines := gitlog.All(ctx, c.repoPath)
	contribs := policy.Collect(lines, c.policy())
	return c.Check(contribs, "repository history")
}

// CheckRange checks the contributors of the commit range fromSHA..toSHA.
func (c *Checker) CheckRange(ctx context.Context, fromSHA, toSHA, contextName string) Result {
	lines := gitlog.Range(ctx, c.repoPath, fromSHA, toSHA)
	contribs := policy.Collect(lines, c.policy())
	return c.Check(contribs, contextName)
}

// Check reconciles an already-collected contributor set against both metadata
// files and logs the full audit trace.
func (c *Checker) Check(contribs identity.Set, contextName string) Result {
	c.log.Info().Int("count", contribs.Len()).Str("context", contextName).Msg("contributors found")
	for _, m := range contribs.Sorted() {
		c.log.Info().Str("identity", m).Msg("contributor")
	}

	citation := metadata.ParseCitationCFF(c.repoPath)
	codemeta := metadata.ParseCodemetaJSON(c.repoPath)

	missingCitation := c.checkFile(contribs, citation, metadata.CitationFile, contextName)
	missingCodemeta := c.checkFile(contribs, codemeta, metadata.CodemetaFile, contextName)

	missingOverall := FindMissing(contribs, citation.Union(codemeta))

	mode := c.cfg.Mode
	c.log.Info().Str("mode", mode).Msg("computing overall result")

	ok := true
	if missingOverall.Len() > 0 {
		c.log.Warn().
			Strs("missing", missingOverall.Sorted()).
			Msg("contributors not found in any metadata file")
		ok = mode != config.ModeFail
		if ok {
			c.log.Info().Msg("mode is warn; reporting but not failing")
		} else {
			c.log.Error().Msg("mode is fail; check failed")
		}
	} else {
		c.log.Info().Str("context", contextName).Msg("all contributors present in at least one metadata file")
	}

	return Result{
		Contributors:    contribs,
		Citation:        citation,
		Codemeta:        codemeta,
		MissingCitation: missingCitation,
		MissingCodemeta: missingCodemeta,
		MissingOverall:  missingOverall,
		Mode:            mode,
		Context:         contextName,
		OK:              ok,
	}
}

// checkFile computes the per-file diagnostic missing set. An absent or empty
// metadata file leaves every contributor missing from that file.
func (c *Checker) checkFile(contribs, declared identity.Set, file, contextName string) identity.Set {
	if declared.Len() == 0 {
		c.log.Info().Str("file", file).Msg("metadata file not found or empty")
		return contribs.Clone()
	}

	c.log.Info().Int("count", declared.Len()).Str("file", file).Msg("declared contributors")
	for _, m := range declared.Sorted() {
		c.log.Debug().Str("identity", m).Str("file", file).Msg("declared")
	}

	missing := FindMissing(contribs, declared)
	if missing.Len() > 0 {
		c.log.Info().Strs("missing", missing.Sorted()).Str("file", file).Msg("missing from file")
	} else {
		c.log.Info().Str("file", file).Str("context", contextName).Msg("all contributors present in file")
	}
	return missing
}

func (c *Checker) policy() policy.Policy {
	return policy.Policy{
		IgnoreEmails: c.cfg.IgnoreEmails,
		IgnoreLogins: c.cfg.IgnoreLogins,
	}
}
