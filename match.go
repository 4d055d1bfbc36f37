package mediatype

import (
	"strings"

	"github.com/zostay/go-mediatype/internal/ascii"
)

// Matches reports whether mediaType matches the given pattern. This
// comparison handles absolute matching as well as the basic wildcard
// forms used in content negotiation:
//
//	application/x-foo
//	application/*
//	application/*+xml
//	*
//	*/*
//
// Both arguments may carry a ";key=value" parameter block. Every
// parameter named in the pattern must be present in mediaType with an
// equal value for the match to succeed; parameters present only in
// mediaType are ignored. Parameter keys compare ASCII
// case-insensitively, values case-sensitively.
//
// A malformed pattern never causes an error. It simply fails to
// match, which is the permissive behavior negotiation wants. The
// empty pattern matches nothing.
func Matches(pattern, mediaType string) bool {
	if pattern == "" {
		return false
	}

	basePattern, _, _ := strings.Cut(pattern, ";")
	baseType, _, _ := strings.Cut(mediaType, ";")

	if basePattern == "*" || basePattern == "*/*" {
		return matchesParameters(pattern, mediaType)
	}

	star := strings.IndexByte(basePattern, '*')
	if star < 0 {
		if ascii.EqualFold(basePattern, baseType) {
			return matchesParameters(pattern, mediaType)
		}
		return false
	}

	// Test length to prevent overlap between left and right.
	if len(baseType) < len(basePattern)-1 {
		return false
	}

	left := basePattern[:star]
	right := basePattern[star+1:]

	if !ascii.HasPrefixFold(baseType, left) {
		return false
	}

	if right != "" && !ascii.HasSuffixFold(baseType, right) {
		return false
	}

	return matchesParameters(pattern, mediaType)
}

// matchesParameters tests the parameter blocks of a pattern and a
// candidate media type. Each parameter in the pattern must be matched
// by a parameter in the candidate. A pattern with no parameters
// matches trivially.
//
// Per RFC 2045 parameter keys are case-insensitive while values may
// or may not be. Values usually are case-sensitive, so they are
// compared that way here, which may produce some false negatives.
func matchesParameters(pattern, mediaType string) bool {
	_, patternParams, found := strings.Cut(pattern, ";")
	if !found {
		return true
	}

	_, typeParams, found := strings.Cut(mediaType, ";")
	if !found {
		return false
	}

	patternMap := parameterMap(patternParams)
	typeMap := parameterMap(typeParams)

	if len(patternMap) > len(typeMap) {
		return false
	}

	for k, v := range patternMap {
		tv, ok := typeMap[k]
		if !ok || tv != v {
			return false
		}
	}

	return true
}

// parameterMap splits a parameter block into key/value pairs, keyed
// by the lower-cased parameter name. Pairs are separated by
// semicolons and split at the first equals sign; a pair with no
// equals sign maps the whole pair to the empty string.
func parameterMap(params string) map[string]string {
	m := map[string]string{}
	for _, pair := range strings.Split(params, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		m[ascii.ToLower(k)] = v
	}
	return m
}
