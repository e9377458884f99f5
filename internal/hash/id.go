// Package hash computes the identifiers used to match bin names quickly.
package hash

import "github.com/cespare/xxhash/v2"

// BinID computes the xxHash64 of a bin name.
//
// Equal IDs do not imply equal names; callers compare names after an ID match.
func BinID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// BinIDs computes the IDs of names into dst, which must be at least len(names) long.
func BinIDs(dst []uint64, names []string) {
	for i, name := range names {
		dst[i] = xxhash.Sum64String(name)
	}
}
