// In file: internal/tools/catalogfile.go
package tools

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a tool-catalog YAML file:
//
//	tools:
//	  - name: get_stock_quote
//	    description: Look up the latest quote for a ticker symbol.
//	    parameters:
//	      type: object
//	      properties:
//	        symbol:
//	          type: string
//	          description: The ticker symbol, e.g. GOOG.
//	      required: [symbol]
type catalogFile struct {
	Tools []catalogEntry `yaml:"tools"`
}

type catalogEntry struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Parameters  JSONSchema `yaml:"parameters"`
}

// LoadCatalogFile parses a YAML declarations file and registers its entries
// into the catalog. Entries colliding with an already registered name fail
// loudly rather than shadowing it.
func LoadCatalogFile(catalog *Catalog, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tool catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse tool catalog file %s: %w", path, err)
	}

	for _, entry := range file.Tools {
		if entry.Name == "" {
			return fmt.Errorf("tool catalog file %s contains an entry with no name", path)
		}
		if entry.Parameters.Type == "" {
			entry.Parameters.Type = "object"
		}
		tool := NewFunctionTool(entry.Name, entry.Description, entry.Parameters)
		if err := catalog.Register(tool); err != nil {
			return fmt.Errorf("tool catalog file %s: %w", path, err)
		}
	}
	return nil
}
