package pricing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"estimator/internal"
)

type catalogFile struct {
	Entries []internal.PriceEntry `json:"entries"`
}

// LoadCatalog reads the pricing file. A missing or malformed file is an
// empty catalog, never an error; every item then stays unpriced, which the
// presentation layer can still render.
func LoadCatalog(path string) []internal.PriceEntry {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var parsed catalogFile
	if err := json.Unmarshal(blob, &parsed); err != nil {
		return nil
	}

	out := make([]internal.PriceEntry, 0, len(parsed.Entries))
	for _, entry := range parsed.Entries {
		entry.Key = strings.ToLower(strings.TrimSpace(entry.Key))
		if entry.Key == "" || entry.UnitPrice < 0 {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func SaveCatalog(path string, entries []internal.PriceEntry) error {
	blob, err := json.MarshalIndent(catalogFile{Entries: entries}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, blob, 0o644)
}
