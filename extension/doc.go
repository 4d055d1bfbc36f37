// Package extension resolves file name extensions to media types and
// back again.
//
// Forward resolution layers three sources in a fixed precedence
// order: a primary hard-coded table that can never be overridden, the
// platform registry of the host operating system, and a secondary
// hard-coded table that the platform is allowed to override. This is
// the same layering Mozilla and Chromium use, so a file downloads and
// uploads with the type a browser would give it.
//
// Reverse resolution turns a media type, or a "type/*" wildcard, into
// the set of every extension known for it across the platform
// registry and both tables. The result is a set: it is deduplicated
// and its order is unspecified.
//
// The platform registry is an injected Registry interface. Production
// callers use the OSRegistry implementation, or simply the
// package-level functions which lazily build one shared resolver.
// Tests inject fakes.
package extension
