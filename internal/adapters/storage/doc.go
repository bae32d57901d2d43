// Package storage holds the persistence adapters behind ports.KVStore and the
// session scoping shared by all of them. Concrete stores live in the memory,
// file and redis sub-packages.
package storage
