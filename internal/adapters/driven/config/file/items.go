package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/apikit/internal/core/domain"
)

// itemsFile is the on-disk layout of an items file:
//
//	[[items]]
//	id = "1"
//	kind = "request"
//	name = "List users"
//	texts = ["List users", "GET /api/users"]
type itemsFile struct {
	Items []domain.Item `toml:"items"`
}

// LoadItems reads searchable items from a TOML file.
// Items without a kind are treated as requests.
func LoadItems(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return ParseItems(data)
}

// ParseItems decodes items from TOML data.
func ParseItems(data []byte) ([]domain.Item, error) {
	var f itemsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}

	for i := range f.Items {
		if f.Items[i].Kind == "" {
			f.Items[i].Kind = domain.ItemKindRequest
		}
		if !f.Items[i].Kind.IsValid() {
			return nil, fmt.Errorf("item %d (%s): %w", i, f.Items[i].Kind, domain.ErrUnsupportedKind)
		}
	}
	return f.Items, nil
}
