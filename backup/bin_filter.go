package backup

import (
	"strings"

	"github.com/arloliu/bakfmt/internal/hash"
	"github.com/arloliu/bakfmt/model"
)

// BinFilter is the ordered list of bin names written for every record of a backup.
//
// Each record line holds one field per filter name, in filter order, so a restore
// can map fields back to bins positionally. A BinFilter is immutable and safe for
// concurrent use by multiple encoders.
type BinFilter struct {
	names []string
	// positions maps a bin name ID to the filter positions carrying that ID.
	// Positions sharing an ID hold either a repeated name or a hash collision.
	positions map[uint64][]int
}

// NewBinFilter creates a filter over names. The slice is copied.
func NewBinFilter(names ...string) *BinFilter {
	f := &BinFilter{
		names:     append(make([]string, 0, len(names)), names...),
		positions: make(map[uint64][]int, len(names)),
	}

	ids := make([]uint64, len(names))
	hash.BinIDs(ids, f.names)
	for pos, id := range ids {
		f.positions[id] = append(f.positions[id], pos)
	}

	return f
}

// ParseBinFilter creates a filter from a comma-separated list such as "name,age,city".
// Surrounding spaces are trimmed from each name. An empty list yields an empty filter.
func ParseBinFilter(list string) *BinFilter {
	if strings.TrimSpace(list) == "" {
		return NewBinFilter()
	}

	names := strings.Split(list, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	return NewBinFilter(names...)
}

// Len returns the number of fields per record line.
func (f *BinFilter) Len() int {
	return len(f.names)
}

// Names returns a copy of the filter names in order.
func (f *BinFilter) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)

	return names
}

// Contains reports whether name is one of the filter names.
func (f *BinFilter) Contains(name string) bool {
	for _, pos := range f.positions[hash.BinID(name)] {
		if f.names[pos] == name {
			return true
		}
	}

	return false
}

// match resolves every filter position against bins in a single pass.
//
// slots must hold Len() zeroed entries. On return slots[pos] is the index plus one of
// the first visible bin named names[pos], or zero when the record has no such bin.
func (f *BinFilter) match(bins []model.Bin, slots []uint64) {
	for i := range bins {
		bin := &bins[i]
		if bin.IsHidden() {
			continue
		}

		for _, pos := range f.positions[hash.BinID(bin.Name)] {
			if slots[pos] == 0 && f.names[pos] == bin.Name {
				slots[pos] = uint64(i) + 1
			}
		}
	}
}
