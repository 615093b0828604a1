package repositories

import "context"

// RegistryRepository abstracts the package registry (registry.npmjs.org or a mirror).
type RegistryRepository interface {
	// ListVersions returns every published version of a package, highest first.
	// Any failure yields an empty slice.
	ListVersions(ctx context.Context, name string) []string
}
