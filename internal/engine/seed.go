package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// seedFile is the on-disk layout of a catalog seed:
//
//	templates:
//	  - name: Karin Sultan RS
//	    description: Tuned sports sedan
//	    type: Auto
type seedFile struct {
	Templates []domain.CatalogRow `yaml:"templates"`
}

// LoadSeedFile reads catalog rows from a YAML seed file. Rows without a name
// are skipped.
func LoadSeedFile(path string) ([]domain.CatalogRow, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	rows := make([]domain.CatalogRow, 0, len(f.Templates))
	for _, r := range f.Templates {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		return nil, errors.New("seed file has no templates")
	}
	return rows, nil
}
