package extension

import (
	"mime"
	"strings"
)

// Registry is the narrow view of a platform media type database that
// the resolver depends on. Production code uses OSRegistry; tests
// inject fakes.
//
// Implementations may be backed by operating system APIs, so calls
// are not guaranteed to be cheap. Callers on latency-critical paths
// should cache results rather than assume the lookup is free.
type Registry interface {
	// TypeByExtension returns the media type registered for the
	// given extension (without a leading dot), or "" and false when
	// the platform knows nothing about it.
	TypeByExtension(ext string) (string, bool)

	// ExtensionsByType returns every extension (without leading
	// dots) the platform registers for the given media type. The
	// slice is unordered and may contain duplicates; callers
	// deduplicate.
	ExtensionsByType(mediaType string) []string
}

// OSRegistry is the production Registry, backed by the standard
// library's binding to the host media type database: /etc/mime.types
// and friends on Unix systems, the registry on Windows. The zero
// value is ready to use.
type OSRegistry struct{}

// TypeByExtension looks the extension up in the host database. Any
// parameter block the platform attaches (a charset, typically) is
// stripped so that only the bare type is returned.
func (OSRegistry) TypeByExtension(ext string) (string, bool) {
	t := mime.TypeByExtension("." + ext)
	if t == "" {
		return "", false
	}
	t, _, _ = strings.Cut(t, ";")
	return strings.TrimSpace(t), true
}

// ExtensionsByType returns the extensions the host database lists for
// the given media type, with their leading dots removed.
func (OSRegistry) ExtensionsByType(mediaType string) []string {
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		out = append(out, strings.TrimPrefix(e, "."))
	}
	return out
}
