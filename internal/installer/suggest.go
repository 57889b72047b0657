package installer

import (
	"os"

	"github.com/sahilm/fuzzy"

	"github.com/captainhook-go/installer/internal/config"
)

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// SuggestExecutables returns entries in binDir that fuzzily match the
// captainhook binary name, best matches first. An unreadable directory
// yields no suggestions.
func SuggestExecutables(binDir string) []string {
	entries, err := os.ReadDir(binDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}

	matches := fuzzy.Find(config.ExecutableName, names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
