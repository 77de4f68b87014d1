// Package metadata extracts declared contributors from citation metadata
// files. Both extractors degrade instead of failing: a missing file yields an
// empty set, and a malformed file yields an empty set plus a logged warning.
// A broken metadata file must not crash the check; it just means every actual
// contributor will be reported as missing.
package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/contribcheck/contribcheck/internal/identity"
	"github.com/contribcheck/contribcheck/internal/logging"
)

// CitationFile is the repository-relative path of the CFF metadata file.
const CitationFile = "CITATION.cff"

type cffAuthor struct {
	GivenNames  string `yaml:"given-names"`
	FamilyNames string `yaml:"family-names"`
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
}

type cffDoc struct {
	Authors []yaml.Node `yaml:"authors"`
}

// ParseCitationCFF extracts declared contributors from CITATION.cff under
// repoPath. Author entries are either bare strings, used as-is, or mappings:
// given-names and family-names joined with a space when both are present,
// otherwise the name field. Entries with neither are skipped. An email field
// turns the result into "Name <email>".
func ParseCitationCFF(repoPath string) identity.Set {
	log := logging.Default()
	set := identity.NewSet()

	path := filepath.Join(repoPath, CitationFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return set
	}

	var doc cffDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("file", CitationFile).Msg("failed to parse metadata file")
		return set
	}

	for i := range doc.Authors {
		node := &doc.Authors[i]
		if node.Kind == yaml.ScalarNode {
			if node.Value != "" {
				set.Add(node.Value)
			}
			continue
		}

		var a cffAuthor
		if err := node.Decode(&a); err != nil {
			log.Warn().Err(err).Str("file", CitationFile).Msg("skipping unreadable author entry")
			continue
		}

		var name string
		switch {
		case a.GivenNames != "" && a.FamilyNames != "":
			name = a.GivenNames + " " + a.FamilyNames
		case a.Name != "":
			name = a.Name
		default:
			continue
		}
		set.Add(withEmail(name, a.Email))
	}
	return set
}

func withEmail(name, email string) string {
	if email == "" {
		return name
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
