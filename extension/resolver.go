package extension

import (
	"strings"

	"github.com/zostay/go-mediatype/internal/ascii"
)

// MaxExtensionLength is the longest extension TypeByExtension will
// consider. Anything longer is reported as unknown without scanning
// the tables, which bounds the work an adversarial input can cause.
const MaxExtensionLength = 65536

// Resolver resolves file name extensions to media types and back,
// layering the fixed tables with a platform Registry. A Resolver is
// safe for concurrent use as long as its Registry is; the tables are
// never mutated.
type Resolver struct {
	platform Registry
}

// NewResolver returns a Resolver that consults the given platform
// registry between the primary and secondary tables.
func NewResolver(platform Registry) *Resolver {
	return &Resolver{platform: platform}
}

// findType scans a table for the extension, compared ASCII
// case-insensitively against each entry of each comma-separated
// list. The first hit wins.
func findType(mappings []mapping, ext string) (string, bool) {
	for _, m := range mappings {
		extensions := m.extensions
		for extensions != "" {
			var entry string
			entry, extensions, _ = strings.Cut(extensions, ",")
			if ascii.EqualFold(entry, ext) {
				return m.mediaType, true
			}
		}
	}
	return "", false
}

// TypeByExtension returns the media type for a file name extension
// (given without a leading dot). It implements the same layering
// Mozilla uses: the primary table is checked first and cannot be
// overridden, then the platform registry, then the secondary table.
// Returns "" and false when no source knows the extension.
func (r *Resolver) TypeByExtension(ext string) (string, bool) {
	return r.typeByExtension(ext, true)
}

// WellKnownTypeByExtension is TypeByExtension restricted to the
// hard-coded tables. The platform registry is never consulted, so
// the answer cannot be influenced by local machine configuration.
// Use this where an OS-registered handler must not change behavior,
// such as security decisions.
func (r *Resolver) WellKnownTypeByExtension(ext string) (string, bool) {
	return r.typeByExtension(ext, false)
}

func (r *Resolver) typeByExtension(ext string, includePlatform bool) (string, bool) {
	if len(ext) > MaxExtensionLength {
		return "", false
	}

	if t, ok := findType(primaryMappings, ext); ok {
		return t, true
	}

	if includePlatform {
		if t, ok := r.platform.TypeByExtension(ext); ok {
			return t, true
		}
	}

	if t, ok := findType(secondaryMappings, ext); ok {
		return t, true
	}

	return "", false
}

// TypeByFile returns the media type for a file path, judged by its
// final extension component alone: "archive.tar.gz" resolves as
// "gz". A path with no extension returns false without consulting
// any table.
func (r *Resolver) TypeByFile(path string) (string, bool) {
	ext := lastExtension(path)
	if ext == "" {
		return "", false
	}
	return r.TypeByExtension(ext)
}

// lastExtension returns the text after the last dot of the last path
// element, or "" when the element has no dot.
func lastExtension(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return path[i+1:]
		case '/', '\\':
			return ""
		}
	}
	return ""
}

// ExtensionsForType returns every extension known for the given media
// type across the platform registry and both fixed tables. The type
// may be a "type/*" wildcard, in which case the known types of that
// category are enumerated. The bare wildcards "*" and "*/*" are too
// broad to enumerate and return nothing.
//
// The result is a set: deduplicated, and in an unspecified order.
func (r *Resolver) ExtensionsForType(mediaType string) []string {
	if mediaType == "*/*" || mediaType == "*" {
		return nil
	}

	mediaType = ascii.ToLower(mediaType)
	unique := map[string]struct{}{}

	if strings.HasSuffix(mediaType, "/*") {
		leading := mediaType[:len(mediaType)-1]
		for _, member := range groupFor(leading).members {
			for _, e := range r.platform.ExtensionsByType(member) {
				unique[e] = struct{}{}
			}
		}
		collectFromMappings(primaryMappings, leading, unique)
		collectFromMappings(secondaryMappings, leading, unique)
	} else {
		for _, e := range r.platform.ExtensionsByType(mediaType) {
			unique[e] = struct{}{}
		}

		// The prefix scan also picks up near-duplicate
		// registrations, image/png alongside image/x-png and such.
		collectFromMappings(primaryMappings, mediaType, unique)
		collectFromMappings(secondaryMappings, mediaType, unique)
	}

	exts := make([]string, 0, len(unique))
	for e := range unique {
		exts = append(exts, e)
	}
	return exts
}

// groupFor selects the standard group for a lower-cased "type/"
// prefix. Prefixes with no dedicated group get the empty group, so a
// wildcard like "application/*" enumerates nothing from the platform
// and relies on the table prefix scan alone.
func groupFor(leading string) group {
	for _, g := range standardGroups {
		if g.leading == leading {
			return g
		}
	}
	return group{leading: leading}
}

// collectFromMappings unions into the set every extension of every
// mapping whose media type starts with the given lower-cased prefix.
// The platform registry may not know some of these (ogg, notably),
// which is why the tables are always consulted too.
func collectFromMappings(mappings []mapping, prefix string, unique map[string]struct{}) {
	for _, m := range mappings {
		if !ascii.HasPrefixFold(m.mediaType, prefix) {
			continue
		}
		extensions := m.extensions
		for extensions != "" {
			var entry string
			entry, extensions, _ = strings.Cut(extensions, ",")
			unique[entry] = struct{}{}
		}
	}
}

// PreferredExtension returns the extension a file of the given media
// type should be saved with, for use in download naming. The first
// extension listed in the primary table wins, then the first in the
// secondary table, then whatever the platform registry lists first.
// Returns false when the type is unknown everywhere.
func (r *Resolver) PreferredExtension(mediaType string) (string, bool) {
	for _, mappings := range [][]mapping{primaryMappings, secondaryMappings} {
		for _, m := range mappings {
			if ascii.EqualFold(m.mediaType, mediaType) {
				first, _, _ := strings.Cut(m.extensions, ",")
				return first, true
			}
		}
	}
	if exts := r.platform.ExtensionsByType(ascii.ToLower(mediaType)); len(exts) > 0 {
		return exts[0], true
	}
	return "", false
}
