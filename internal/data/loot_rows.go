package data

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/lootcore/internal/loot"
)

// lootRowsFile: table name → rows, the same columns as the SQL tables.
type lootRowsFile struct {
	Tables map[string][]loot.Row `yaml:"tables"`
}

// LoadLootRows reads loot table rows from a YAML file for offline tools.
func LoadLootRows(path string) (map[string][]loot.Row, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read loot rows %s: %w", path, err)
	}
	rows, err := ParseLootRows(raw)
	if err != nil {
		return nil, fmt.Errorf("parse loot rows %s: %w", path, err)
	}
	return rows, nil
}

// ParseLootRows decodes loot rows. Unknown table names are rejected.
func ParseLootRows(raw []byte) (map[string][]loot.Row, error) {
	var f lootRowsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	for name := range f.Tables {
		if !slices.Contains(loot.StoreNames, name) {
			return nil, fmt.Errorf("unknown loot table %q", name)
		}
	}
	if f.Tables == nil {
		f.Tables = map[string][]loot.Row{}
	}
	return f.Tables, nil
}
