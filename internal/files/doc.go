// Package files groups file access helpers.
//
// The filesystem sub-package abstracts reading input tables so the loader
// can run against the OS or an in-memory tree in tests.
package files
