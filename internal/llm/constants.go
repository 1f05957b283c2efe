// In file: internal/llm/constants.go
package llm

import "time"

// Shared across the model client implementations in this package.
const (
	modelCallTimeout       = 120 * time.Second
	defaultMaxOutputTokens = 4096
)
