package model

import "github.com/arloliu/bakfmt/format"

// PathParam is one indexed bin path and the data type it is indexed as.
type PathParam struct {
	Path string
	Type format.PathType
}

// SecondaryIndex is a secondary index definition. An empty Set means the index
// covers the whole namespace.
type SecondaryIndex struct {
	Namespace string
	Set       string
	Name      string
	Type      format.IndexType
	Paths     []PathParam
}

// HasSet reports whether the index is restricted to a set.
func (i *SecondaryIndex) HasSet() bool {
	return i.Set != ""
}
