package extension

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mediatype"
)

// noPlatform is a Registry that knows nothing, for exercising the
// tables alone.
type noPlatform struct{}

func (noPlatform) TypeByExtension(string) (string, bool) { return "", false }
func (noPlatform) ExtensionsByType(string) []string      { return nil }

func TestPrimaryMappingsAlwaysResolve(t *testing.T) {
	t.Parallel()

	r := NewResolver(noPlatform{})

	// webm is listed under both video/webm and audio/webm; the first
	// mapping in sequence order wins, so later repeats are skipped
	seen := map[string]struct{}{}

	for _, m := range primaryMappings {
		for _, ext := range strings.Split(m.extensions, ",") {
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}

			mt, ok := r.TypeByExtension(ext)
			require.True(t, ok, "extension %q", ext)
			assert.Equal(t, m.mediaType, mt, "extension %q", ext)

			// mixed case resolves identically, platform or not
			upper := strings.ToUpper(ext)
			mt, ok = r.WellKnownTypeByExtension(upper)
			require.True(t, ok, "extension %q", upper)
			assert.Equal(t, m.mediaType, mt, "extension %q", upper)
		}
	}
}

func TestSecondaryMappingsResolveWellKnown(t *testing.T) {
	t.Parallel()

	r := NewResolver(noPlatform{})

	for _, m := range secondaryMappings {
		for _, ext := range strings.Split(m.extensions, ",") {
			_, ok := r.WellKnownTypeByExtension(ext)
			assert.True(t, ok, "extension %q", ext)
		}
	}
}

func TestWellKnownAgreesWithGeneralLookup(t *testing.T) {
	t.Parallel()

	// a well-known answer is never something the general lookup
	// would disagree with when the platform has nothing to add
	r := NewResolver(noPlatform{})

	for _, m := range append(primaryMappings, secondaryMappings...) {
		for _, ext := range strings.Split(m.extensions, ",") {
			wk, ok := r.WellKnownTypeByExtension(ext)
			require.True(t, ok)

			gen, ok := r.TypeByExtension(ext)
			require.True(t, ok)
			assert.Equal(t, gen, wk, "extension %q", ext)
		}
	}
}

func TestTableTypesAreWellFormed(t *testing.T) {
	t.Parallel()

	check := func(mediaType string) {
		mt, err := mediatype.ParseWithoutParameters(mediaType)
		require.NoError(t, err, "type %q", mediaType)
		assert.True(t, mediatype.IsValidTopLevel(mt.TopLevel()), "type %q", mediaType)
	}

	for _, m := range primaryMappings {
		check(m.mediaType)
	}
	for _, m := range secondaryMappings {
		check(m.mediaType)
	}
	for _, g := range standardGroups {
		for _, member := range g.members {
			check(member)
			assert.True(t, strings.HasPrefix(member, g.leading),
				"member %q of group %q", member, g.leading)
		}
	}
}
