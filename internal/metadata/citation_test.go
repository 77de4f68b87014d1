package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParseCitationCFF(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CitationFile, `
cff-version: 1.2.0
title: Example
authors:
  - given-names: John
    family-names: Doe
    email: john@x.com
  - name: "Bot User"
    email: bot@x.com
  - given-names: Solo
  - name: No Email
  - "Bare String"
  - orcid: "https://orcid.org/0000-0000-0000-0000"
`)

	got := ParseCitationCFF(dir)
	assert.Equal(t, []string{
		"Bare String",
		"Bot User <bot@x.com>",
		"John Doe <john@x.com>",
		"No Email",
	}, got.Sorted())
}

func TestParseCitationCFFPairedNamesWinOverName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CitationFile, `
authors:
  - given-names: John
    family-names: Doe
    name: Ignored Alias
`)

	got := ParseCitationCFF(dir)
	assert.Equal(t, []string{"John Doe"}, got.Sorted())
}

func TestParseCitationCFFMissingFile(t *testing.T) {
	got := ParseCitationCFF(t.TempDir())
	assert.Equal(t, 0, got.Len())
}

func TestParseCitationCFFMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CitationFile, "authors: [unclosed\n  - broken: : :")

	// Malformed metadata degrades to an empty set, never an error.
	got := ParseCitationCFF(dir)
	assert.Equal(t, 0, got.Len())
}

func TestParseCitationCFFNoAuthors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CitationFile, "title: Example\n")

	got := ParseCitationCFF(dir)
	assert.Equal(t, 0, got.Len())
}
