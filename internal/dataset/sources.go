package dataset

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/modelrisk/mrmeval/internal/domain"
)

// Source describes one approved reference document in the registry.
// Registry keys are the citation tokens; the metadata rides along for
// reporting and prompt construction.
type Source struct {
	Title string `json:"title"`
	Org   string `json:"org,omitempty"`
	URL   string `json:"url,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// LoadAllowedCitations reads the source registry and returns the allowed
// citation set defined by its keys. A missing or unreadable registry
// degrades to an empty set rather than failing the run; allowlist scoring
// then rejects everything cited.
func LoadAllowedCitations(path string, logger *slog.Logger) domain.AllowedCitations {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("source registry unavailable, allowlist is empty",
			"path", path, "error", err)
		return domain.NewAllowedCitations(nil)
	}

	var registry map[string]Source
	if err := json.Unmarshal(data, &registry); err != nil {
		logger.Warn("source registry malformed, allowlist is empty",
			"path", path, "error", err)
		return domain.NewAllowedCitations(nil)
	}

	tokens := make([]string, 0, len(registry))
	for tok := range registry {
		tokens = append(tokens, tok)
	}
	return domain.NewAllowedCitations(tokens)
}
