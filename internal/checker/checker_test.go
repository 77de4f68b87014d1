package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contribcheck/contribcheck/internal/config"
	"github.com/contribcheck/contribcheck/internal/identity"
)

func TestFindMissing(t *testing.T) {
	actual := identity.NewSet("John <j@x.com>", "Missing <m@x.com>")
	declared := identity.NewSet("John <j@x.com>")

	missing := FindMissing(actual, declared)
	assert.Equal(t, []string{"Missing <m@x.com>"}, missing.Sorted())
}

func TestFindMissingMatchesNormalized(t *testing.T) {
	actual := identity.NewSet("  JOHN   DOE  <john@work.com>")
	declared := identity.NewSet("John Doe <john@home.org>")

	missing := FindMissing(actual, declared)
	assert.Equal(t, 0, missing.Len(), "emails and casing must not affect matching")
}

func TestFindMissingSubsetLaws(t *testing.T) {
	actual := identity.NewSet("A", "B", "C")
	declared := identity.NewSet("a", "b")

	missing := FindMissing(actual, declared)
	for m := range missing {
		assert.True(t, actual.Has(m), "missing must be a subset of actual")
	}

	none := FindMissing(actual, identity.NewSet("a", "b", "c"))
	assert.Equal(t, 0, none.Len())
}

func TestFindMissingEmptyDeclared(t *testing.T) {
	actual := identity.NewSet("John <j@x.com>")
	missing := FindMissing(actual, identity.NewSet())
	assert.Equal(t, actual.Sorted(), missing.Sorted())
}

func writeMetadata(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCheckWarnAndFailModes(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "CITATION.cff", `
authors:
  - given-names: John
    family-names: Doe
    email: j@x.com
`)

	actual := identity.NewSet("John Doe <j@x.com>", "Missing <m@x.com>")

	warn := New(dir, config.Config{Mode: config.ModeWarn}).Check(actual, "commits")
	assert.Equal(t, []string{"Missing <m@x.com>"}, warn.MissingOverall.Sorted())
	assert.True(t, warn.OK, "warn mode succeeds despite missing contributors")

	fail := New(dir, config.Config{Mode: config.ModeFail}).Check(actual, "commits")
	assert.Equal(t, []string{"Missing <m@x.com>"}, fail.MissingOverall.Sorted())
	assert.False(t, fail.OK, "fail mode fails on missing contributors")
}

func TestCheckUnionRule(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "CITATION.cff", "authors:\n  - name: Alice\n")
	writeMetadata(t, dir, "codemeta.json", `{"author": "Bob"}`)

	actual := identity.NewSet("Alice", "Bob", "Carol")
	res := New(dir, config.Config{Mode: config.ModeWarn}).Check(actual, "commits")

	// Presence in either file is enough overall; per-file sets stay diagnostic.
	assert.Equal(t, []string{"Bob", "Carol"}, res.MissingCitation.Sorted())
	assert.Equal(t, []string{"Alice", "Carol"}, res.MissingCodemeta.Sorted())
	assert.Equal(t, []string{"Carol"}, res.MissingOverall.Sorted())
}

func TestCheckNoMetadataFiles(t *testing.T) {
	dir := t.TempDir()
	actual := identity.NewSet("John <j@x.com>")

	res := New(dir, config.Config{Mode: config.ModeFail}).Check(actual, "commits")
	assert.Equal(t, actual.Sorted(), res.MissingCitation.Sorted())
	assert.Equal(t, actual.Sorted(), res.MissingCodemeta.Sorted())
	assert.Equal(t, actual.Sorted(), res.MissingOverall.Sorted())
	assert.False(t, res.OK)
}

func TestCheckMalformedMetadataDegrades(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "CITATION.cff", "authors: [broken\n  - : :")
	writeMetadata(t, dir, "codemeta.json", `{"author": [`)

	actual := identity.NewSet("John <j@x.com>")
	res := New(dir, config.Config{Mode: config.ModeWarn}).Check(actual, "commits")

	// Broken metadata is treated as "no declared contributors".
	assert.Equal(t, actual.Sorted(), res.MissingOverall.Sorted())
	assert.True(t, res.OK)
}

func TestCheckEmptyContributors(t *testing.T) {
	res := New(t.TempDir(), config.Config{Mode: config.ModeFail}).Check(identity.NewSet(), "commits")
	assert.Equal(t, 0, res.MissingOverall.Len())
	assert.True(t, res.OK)
}
