// Package ascii provides ASCII-only case-insensitive string
// comparisons. The strings.EqualFold family applies Unicode simple
// folding, which matches more than we want here (the Kelvin sign
// folds to "k", for instance). Media type comparisons are defined in
// terms of ASCII case only, so these helpers fold nothing outside
// A-Z.
package ascii

// lower returns the lower-case form of c if c is an ASCII upper-case
// letter. Every other byte is returned as-is.
func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualFold reports whether a and b are equal, ignoring differences in
// ASCII letter case.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

// HasPrefixFold reports whether s begins with prefix, ignoring
// differences in ASCII letter case.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && EqualFold(s[:len(prefix)], prefix)
}

// HasSuffixFold reports whether s ends with suffix, ignoring
// differences in ASCII letter case.
func HasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && EqualFold(s[len(s)-len(suffix):], suffix)
}

// ToLower returns s with all ASCII upper-case letters replaced by
// their lower-case forms. Bytes outside A-Z are left untouched.
func ToLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				b[i] = lower(b[i])
			}
			return string(b)
		}
	}
	return s
}
