// In file: internal/tools/catalog_test.go
package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogDeclaresBuiltins(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, 2, catalog.Count())
	assert.True(t, catalog.Has(ToolCalendarEvents))
	assert.True(t, catalog.Has(ToolWebSearch))
	assert.False(t, catalog.Has("get_stock_quote"))

	calendar, ok := catalog.Lookup(ToolCalendarEvents)
	require.True(t, ok)
	assert.Equal(t, ToolTypeFunction, calendar.Type)
	assert.Equal(t, []string{"date"}, calendar.Function.Parameters.Required)
	require.Contains(t, calendar.Function.Parameters.Properties, "date")
	assert.Equal(t, "string", calendar.Function.Parameters.Properties["date"].Type)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	catalog := NewCatalog()
	tool := NewFunctionTool("demo", "a demo tool", JSONSchema{Type: "object"})

	require.NoError(t, catalog.Register(tool))
	err := catalog.Register(tool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsUnnamedTool(t *testing.T) {
	catalog := NewCatalog()
	err := catalog.Register(Tool{Type: ToolTypeFunction})
	require.Error(t, err)
}

func TestDefinitionsKeepRegistrationOrder(t *testing.T) {
	catalog := NewCatalog()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, catalog.Register(NewFunctionTool(name, "", JSONSchema{Type: "object"})))
	}

	defs := catalog.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "charlie", defs[0].Function.Name)
	assert.Equal(t, "alpha", defs[1].Function.Name)
	assert.Equal(t, "bravo", defs[2].Function.Name)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	content := `
tools:
  - name: get_stock_quote
    description: Look up the latest quote for a ticker symbol.
    parameters:
      type: object
      properties:
        symbol:
          type: string
          description: The ticker symbol, e.g. GOOG.
      required: [symbol]
  - name: translate_text
    description: Translate text between languages.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog := DefaultCatalog()
	require.NoError(t, LoadCatalogFile(catalog, path))

	assert.Equal(t, 4, catalog.Count())

	quote, ok := catalog.Lookup("get_stock_quote")
	require.True(t, ok)
	assert.Equal(t, []string{"symbol"}, quote.Function.Parameters.Required)
	assert.Equal(t, "string", quote.Function.Parameters.Properties["symbol"].Type)

	// Entries without an explicit schema default to an empty object schema.
	translate, ok := catalog.Lookup("translate_text")
	require.True(t, ok)
	assert.Equal(t, "object", translate.Function.Parameters.Type)
}

func TestLoadCatalogFileRejectsCollisionWithBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	content := `
tools:
  - name: search_the_web
    description: A shadowing declaration.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	err := LoadCatalogFile(DefaultCatalog(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoadCatalogFileMissingFile(t *testing.T) {
	err := LoadCatalogFile(NewCatalog(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadCatalogFileRejectsUnnamedEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tools:\n  - description: nameless\n"), 0o644))

	err := LoadCatalogFile(NewCatalog(), path)
	require.Error(t, err)
}
