// Package mediatype provides tools for working with MIME media type
// strings as they appear in content negotiation: parsing a type string
// into its top-level type and subtype, validating top-level types
// against the IANA registry, and testing a concrete media type against
// a media type pattern that may contain wildcards and parameters.
//
// A media type here is a string of the form "type/subtype", optionally
// followed by one or more ";key=value" parameters, e.g.
//
//	text/html
//	application/atom+xml
//	text/plain;charset=utf-8
//
// A pattern is a media type string that may additionally use "*" as a
// stand-in for the whole type ("*" or "*/*") or for part of one
// segment ("text/*", "application/*+xml"). The Matches() function
// implements the comparison, including the parameter subset test used
// when matching an Accept-style pattern against a candidate type.
//
// Resolution between file name extensions and media types is provided
// by the extension subpackage, which layers two fixed tables with a
// platform registry backed by the host operating system.
//
// All comparisons performed by this package are ASCII
// case-insensitive for types, subtypes and parameter keys, and
// case-sensitive for parameter values.
package mediatype
