package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLocalOrigin(t *testing.T) {
	assert.True(t, isLocalOrigin("http://localhost:5173"))
	assert.True(t, isLocalOrigin("http://localhost"))
	assert.True(t, isLocalOrigin("https://localhost:8443"))
	assert.True(t, isLocalOrigin("http://127.0.0.1:3000"))

	assert.False(t, isLocalOrigin("http://localhost.evil.com"))
	assert.False(t, isLocalOrigin("http://127.0.0.2:3000"))
	assert.False(t, isLocalOrigin("ftp://localhost"))
	assert.False(t, isLocalOrigin("https://finca.app"))
}

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"https://ganaderia.app", "https://staging.ganaderia"}

	assert.True(t, originAllowed(allowed, "https://ganaderia.app"))
	// Prefix match covers preview deployments on subpaths of the listed base.
	assert.True(t, originAllowed(allowed, "https://staging.ganaderia.app"))
	assert.True(t, originAllowed(allowed, "http://localhost:4000"))

	assert.False(t, originAllowed(allowed, "https://evil.app"))
	assert.False(t, originAllowed(nil, "https://ganaderia.app"))
}
