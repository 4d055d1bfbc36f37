package extension

import "sync"

// The shared resolver behind the package-level functions. Built at
// most once, on first use, and read-only afterward, so it may be
// shared freely across goroutines.
var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the process-wide Resolver, backed by OSRegistry.
// It is built on first call and reused thereafter. Callers who need
// a different Registry (tests, sandboxed code) should construct
// their own with NewResolver instead.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(OSRegistry{})
	})
	return defaultResolver
}

// TypeByExtension resolves an extension with the Default resolver.
func TypeByExtension(ext string) (string, bool) {
	return Default().TypeByExtension(ext)
}

// WellKnownTypeByExtension resolves an extension with the Default
// resolver, without consulting the platform registry.
func WellKnownTypeByExtension(ext string) (string, bool) {
	return Default().WellKnownTypeByExtension(ext)
}

// TypeByFile resolves a file path with the Default resolver.
func TypeByFile(path string) (string, bool) {
	return Default().TypeByFile(path)
}

// ExtensionsForType enumerates extensions with the Default resolver.
func ExtensionsForType(mediaType string) []string {
	return Default().ExtensionsForType(mediaType)
}

// PreferredExtension picks a download extension with the Default
// resolver.
func PreferredExtension(mediaType string) (string, bool) {
	return Default().PreferredExtension(mediaType)
}
