// Package env abstracts environment variable lookup so that parsing can be exercised without
// touching the process environment.
package env

import "os"

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Lookup returns the value of the environment variable named by the key and whether it is set.
	Lookup(key string) (string, bool)
}

// DefaultEnvResolver is the default implementation of the Resolver interface
// that encapsulates environment resolution using the os package.
type DefaultEnvResolver struct{}

// Lookup returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapResolver resolves variables from a fixed map
type MapResolver map[string]string

// Lookup returns the mapped value of key
func (m MapResolver) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
