package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/contribcheck/contribcheck/internal/identity"
	"github.com/contribcheck/contribcheck/internal/logging"
)

// CodemetaFile is the repository-relative path of the codemeta metadata file.
const CodemetaFile = "codemeta.json"

// personFields are the codemeta fields that may declare contributors.
var personFields = []string{"author", "contributor", "maintainer"}

type codemetaPerson struct {
	Name       string `json:"name"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
}

// ParseCodemetaJSON extracts declared contributors from codemeta.json under
// repoPath. The author, contributor and maintainer fields each hold a single
// record or a list; a bare string is used as-is, a structured record resolves
// to its name field or to "givenName familyName" trimmed. Records with no
// resolvable name are skipped. The three fields are unioned into one set.
func ParseCodemetaJSON(repoPath string) identity.Set {
	log := logging.Default()
	set := identity.NewSet()

	path := filepath.Join(repoPath, CodemetaFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return set
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("file", CodemetaFile).Msg("failed to parse metadata file")
		return set
	}

	for _, field := range personFields {
		raw, ok := doc[field]
		if !ok {
			continue
		}
		for _, entry := range asList(raw) {
			if name, ok := resolvePerson(entry); ok {
				set.Add(name)
			}
		}
	}
	return set
}

// asList accepts both encodings of a codemeta person field: a list of
// records, or a single record treated as a one-element list.
func asList(raw json.RawMessage) []json.RawMessage {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	return []json.RawMessage{raw}
}

func resolvePerson(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, s != ""
	}

	var p codemetaPerson
	if err := json.Unmarshal(raw, &p); err != nil {
		return "", false
	}

	name := p.Name
	if name == "" {
		name = strings.TrimSpace(p.GivenName + " " + p.FamilyName)
	}
	if name == "" {
		return "", false
	}
	return withEmail(name, p.Email), true
}
