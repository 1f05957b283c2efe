// In file: internal/version/version_test.go
package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVersionedCacheKey(t *testing.T) {
	keyA := GenerateVersionedCacheKey("llmcache", "What is 2+2?")
	keyB := GenerateVersionedCacheKey("llmcache", "What is 2+2?")
	keyC := GenerateVersionedCacheKey("llmcache", "What is 3+3?")

	assert.Equal(t, keyA, keyB, "same prompt must produce a stable key")
	assert.NotEqual(t, keyA, keyC, "different prompts must not collide")
	assert.True(t, strings.HasPrefix(keyA, "llmcache:"))
	assert.Contains(t, keyA, ComponentVersions.Catalog)
}

func TestCacheKeyChangesWithComponentVersion(t *testing.T) {
	original := ComponentVersions.Catalog
	defer func() { ComponentVersions.Catalog = original }()

	before := GenerateVersionedCacheKey("llmcache", "prompt")
	ComponentVersions.Catalog = "v9.9"
	after := GenerateVersionedCacheKey("llmcache", "prompt")

	assert.NotEqual(t, before, after, "a catalog bump must invalidate old keys")
}
