// Package catalog holds the printable ASCII character set and its derived views.
//
// The catalog is immutable: All returns a fresh copy of the ordered codes and
// Partition slices it into grid rows without padding.
package catalog
