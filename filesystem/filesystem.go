// Package filesystem is the afero-backed filesystem every other package reads and writes through,
// so tests can swap in an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// ReadOnly wraps the active backend so nothing can be written through it.
func ReadOnly() afero.Afero {
	return afero.Afero{Fs: afero.NewReadOnlyFs(backend.Fs)}
}
