package mediatype

import (
	"errors"
	"strings"

	"github.com/zostay/go-mediatype/internal/ascii"
)

// Errors that occur while parsing media type strings.
var (
	// ErrNotAToken is returned by ParseWithoutParameters when the
	// input does not split into exactly two non-empty HTTP tokens
	// around a single slash.
	ErrNotAToken = errors.New("media type component is not a valid token")
)

// These are the top-level media types registered with IANA. See
// http://www.iana.org/assignments/media-types/media-types.xhtml
var legalTopLevelTypes = []string{
	"application",
	"audio",
	"example",
	"image",
	"message",
	"model",
	"multipart",
	"text",
	"video",
}

// Type is a media type split into its two components. It is always
// freshly derived from an input string by ParseWithoutParameters and
// holds the components with their original case preserved.
type Type struct {
	topLevel string
	subtype  string
}

// TopLevel returns the top-level type, the part before the slash. For
// "text/html" this is "text".
func (t Type) TopLevel() string { return t.topLevel }

// Subtype returns the subtype, the part after the slash. For
// "text/html" this is "html".
func (t Type) Subtype() string { return t.subtype }

// String reassembles the media type as "toplevel/subtype".
func (t Type) String() string { return t.topLevel + "/" + t.subtype }

// ParseWithoutParameters parses a bare media type string of the form
// "type/subtype". It returns ErrNotAToken unless the input contains
// exactly one slash separating two non-empty HTTP tokens. The
// components are returned with their case preserved; no
// normalization is performed.
//
// The parameter block of a full Content-type value is not handled
// here. Strip it (everything from the first semicolon on) before
// calling, or use Matches() which does so itself.
func ParseWithoutParameters(v string) (Type, error) {
	topLevel, subtype, found := strings.Cut(v, "/")
	if !found || !isToken(topLevel) || !isToken(subtype) {
		return Type{}, ErrNotAToken
	}
	return Type{topLevel, subtype}, nil
}

// IsValidTopLevel reports whether v names a registered IANA top-level
// media type, compared ASCII case-insensitively. Experimental types
// using the "x-" prefix convention are also accepted, provided
// something follows the prefix.
func IsValidTopLevel(v string) bool {
	for _, t := range legalTopLevelTypes {
		if ascii.EqualFold(v, t) {
			return true
		}
	}
	return len(v) > 2 && ascii.HasPrefixFold(v, "x-")
}
