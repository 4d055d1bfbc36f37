package extension_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mediatype/extension"
)

func TestOSRegistry_TypeByExtension(t *testing.T) {
	t.Parallel()

	var reg extension.OSRegistry

	// .html is one of the stdlib's built-in types, registered with a
	// charset parameter that must be stripped
	mt, ok := reg.TypeByExtension("html")
	require.True(t, ok)
	assert.Equal(t, "text/html", mt)

	_, ok = reg.TypeByExtension("definitely-not-registered-anywhere")
	assert.False(t, ok)
}

func TestOSRegistry_ExtensionsByType(t *testing.T) {
	t.Parallel()

	var reg extension.OSRegistry

	exts := reg.ExtensionsByType("text/html")
	assert.Contains(t, exts, "html")
	for _, e := range exts {
		assert.NotEmpty(t, e)
		assert.NotEqual(t, byte('.'), e[0])
	}

	assert.Empty(t, reg.ExtensionsByType("application/x-no-such-type"))
	assert.Empty(t, reg.ExtensionsByType("not a media type"))
}
