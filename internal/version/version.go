// In file: internal/version/version.go

// Package version centralizes the logical component versions that feed into
// response cache keys. Bumping a version invalidates every cached entry
// produced under the old one, so stale answers never outlive a catalog or
// prompt-logic change.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComponentVersions holds version strings for the parts of the gateway whose
// changes make cached responses stale. Increment before deploying a change to
// the corresponding component.
var ComponentVersions = struct {
	// Catalog should be bumped whenever a tool declaration is added,
	// removed, or reworded: the model's direct/tool-call decision depends
	// on what the catalog offered it.
	Catalog string

	// PromptLogic should be bumped whenever the conversation assembly or
	// response formatting changes.
	PromptLogic string
}{
	Catalog:     "v1.0",
	PromptLogic: "v1.0",
}

// GenerateVersionedCacheKey builds a cache key from a prefix, a SHA-256 hash
// of the prompt, and the current component versions.
//
// Example output: "llmcache:a1b2c3d4...:cv1.0_pv1.0"
func GenerateVersionedCacheKey(prefix, prompt string) string {
	hasher := sha256.New()
	hasher.Write([]byte(prompt))
	promptHash := hex.EncodeToString(hasher.Sum(nil))

	versionString := fmt.Sprintf("c%s_p%s",
		ComponentVersions.Catalog,
		ComponentVersions.PromptLogic,
	)

	return fmt.Sprintf("%s:%s:%s", prefix, promptHash, versionString)
}
