package ascii_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mediatype/internal/ascii"
)

func TestEqualFold(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.EqualFold("", ""))
	assert.True(t, ascii.EqualFold("text/html", "TEXT/HTML"))
	assert.True(t, ascii.EqualFold("x-Custom", "X-CUSTOM"))

	assert.False(t, ascii.EqualFold("text", "text/html"))
	assert.False(t, ascii.EqualFold("text/html", "text/xml"))

	// only ASCII folds; the Kelvin sign is not a K here, unlike
	// strings.EqualFold
	assert.True(t, strings.EqualFold("k", "K"))
	assert.False(t, ascii.EqualFold("k", "K"))
}

func TestHasPrefixFold(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.HasPrefixFold("image/png", "IMAGE/"))
	assert.True(t, ascii.HasPrefixFold("image/png", ""))
	assert.False(t, ascii.HasPrefixFold("image", "image/"))
	assert.False(t, ascii.HasPrefixFold("video/png", "image/"))
}

func TestHasSuffixFold(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.HasSuffixFold("application/atom+xml", "+XML"))
	assert.True(t, ascii.HasSuffixFold("anything", ""))
	assert.False(t, ascii.HasSuffixFold("xml", "+xml"))
	assert.False(t, ascii.HasSuffixFold("application/json", "+xml"))
}

func TestToLower(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text/html", ascii.ToLower("TEXT/Html"))
	assert.Equal(t, "already lower", ascii.ToLower("already lower"))
	assert.Equal(t, "", ascii.ToLower(""))

	// bytes outside A-Z pass through untouched
	assert.Equal(t, "charset=K", ascii.ToLower("CHARSET=K"))
}
