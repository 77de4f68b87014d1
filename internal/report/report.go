// Package report renders check results for humans: a summary block for CI
// logs and a comment body for review platforms.
package report

import (
	"fmt"
	"strings"

	"github.com/contribcheck/contribcheck/internal/checker"
	"github.com/contribcheck/contribcheck/internal/config"
	"github.com/contribcheck/contribcheck/internal/identity"
)

// CommentBody renders the review-comment body for missing contributors.
// refWord is the platform's word for the change under review, "PR" or "MR";
// the body is otherwise identical across platforms.
func CommentBody(missing identity.Set, refWord string) string {
	var b strings.Builder
	b.WriteString("⚠️ **Metadata check: contributors missing from citation files**\n\n")
	fmt.Fprintf(&b, "The following contributors from this %s are not listed in the metadata files:\n\n", refWord)
	for _, m := range missing.Sorted() {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	b.WriteString("\nNext steps:\n")
	b.WriteString("- Add them to `CITATION.cff` / `codemeta.json` or update `.mailmap` if these are aliases.\n")
	return b.String()
}

// Summary renders the final verdict block printed to stdout.
func Summary(res checker.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checked %d contributors from %s (mode: %s)\n", res.Contributors.Len(), res.Context, res.Mode)
	fmt.Fprintf(&b, "  CITATION.cff: %d declared, %d missing\n", res.Citation.Len(), res.MissingCitation.Len())
	fmt.Fprintf(&b, "  codemeta.json: %d declared, %d missing\n", res.Codemeta.Len(), res.MissingCodemeta.Len())

	if res.MissingOverall.Len() == 0 {
		b.WriteString("All contributors are listed in at least one metadata file.\n")
		return b.String()
	}

	b.WriteString("Contributors missing from every metadata file:\n")
	for _, m := range res.MissingOverall.Sorted() {
		fmt.Fprintf(&b, "  - %s\n", m)
	}
	if res.Mode == config.ModeFail {
		b.WriteString("Check failed.\n")
	} else {
		b.WriteString("Warning only; check passes.\n")
	}
	return b.String()
}
