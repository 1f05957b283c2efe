// In file: internal/tools/builtin.go
package tools

// Built-in capability names.
const (
	ToolCalendarEvents = "get_google_calendar_events"
	ToolWebSearch      = "search_the_web"
)

// builtinDeclarations are the capabilities the tool-execution service is
// known to implement. Declarations only; the actual calendar lookup and web
// search run behind the service's /api/tool-execute endpoint.
func builtinDeclarations() []Tool {
	return []Tool{
		NewFunctionTool(
			ToolCalendarEvents,
			"Query Google Calendar for the user's meetings and scheduled events on a specific date, such as today or tomorrow.",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"date": {
						Type:        "string",
						Description: `The date to query, in YYYY-MM-DD format or as "today" / "tomorrow".`,
					},
				},
				Required: []string{"date"},
			},
		),
		NewFunctionTool(
			ToolWebSearch,
			"Search the public web for up-to-date information using a general-purpose search engine.",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"query": {
						Type:        "string",
						Description: "The query string to search for.",
					},
				},
				Required: []string{"query"},
			},
		),
	}
}

// DefaultCatalog returns a catalog pre-populated with the built-in
// declarations.
func DefaultCatalog() *Catalog {
	catalog := NewCatalog()
	for _, tool := range builtinDeclarations() {
		// Built-in names are unique by construction.
		_ = catalog.Register(tool)
	}
	return catalog
}
