// In file: internal/tools/catalog.go
package tools

import "fmt"

// Catalog holds the registry of declared capabilities. It is assembled once
// at startup and shared read-only by every request, so no locking is needed.
type Catalog struct {
	byName map[string]Tool
	order  []string
}

func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]Tool),
	}
}

// Register adds a declaration to the catalog. Duplicate names are rejected so
// a misconfigured catalog file cannot silently shadow a built-in.
func (c *Catalog) Register(tool Tool) error {
	name := tool.Function.Name
	if name == "" {
		return fmt.Errorf("tool declaration has no name")
	}
	if _, exists := c.byName[name]; exists {
		return fmt.Errorf("tool %q is already registered", name)
	}
	c.byName[name] = tool
	c.order = append(c.order, name)
	return nil
}

// Has reports whether a capability with the given name is declared.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Lookup returns the declaration for name.
func (c *Catalog) Lookup(name string) (Tool, bool) {
	tool, ok := c.byName[name]
	return tool, ok
}

// Definitions returns all declarations in registration order. The stable
// order keeps the tool list offered to the model deterministic across
// requests, which also keeps prompt caching effective.
func (c *Catalog) Definitions() []Tool {
	defs := make([]Tool, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.byName[name])
	}
	return defs
}

// Count returns the number of declared capabilities.
func (c *Catalog) Count() int {
	return len(c.byName)
}
