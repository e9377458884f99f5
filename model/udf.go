package model

import "github.com/arloliu/bakfmt/format"

// UDFFile is a user-defined function module.
type UDFFile struct {
	Name    string
	Type    format.UDFType
	Content []byte
}

// Size returns the payload size in bytes.
func (f *UDFFile) Size() int {
	return len(f.Content)
}
