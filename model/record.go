package model

import (
	"encoding/base64"
	"math"
	"time"
)

// DigestSize is the size of a record digest in bytes.
const DigestSize = 20

// TTLNeverExpire is the TTL of records that never expire.
const TTLNeverExpire uint32 = math.MaxUint32

// VoidTimeNeverExpire is the resolved expiration of records that never expire.
const VoidTimeNeverExpire uint32 = 0

// CitrusleafEpoch is the epoch that void times are counted from (2010-01-01T00:00:00Z).
var CitrusleafEpoch = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)

// Names of bins that exist for internal bookkeeping and are never backed up.
const (
	LDTControlBinName = "LDTCONTROLBIN"
)

// IsHiddenBinName reports whether a bin with the given name is internal to the server.
// The empty name and the LDT control bin are hidden.
func IsHiddenBinName(name string) bool {
	return name == "" || name == LDTControlBinName
}

// Key identifies a record. Value is the optional user key; records stored without
// one are addressed by Digest only.
type Key struct {
	Namespace string
	Set       string
	Digest    [DigestSize]byte
	Value     *Value
}

// HasUserKey reports whether the key carries a user key value.
func (k *Key) HasUserKey() bool {
	return k.Value != nil
}

// DigestBase64 returns the standard base64 form of the digest.
func (k *Key) DigestBase64() string {
	return base64.StdEncoding.EncodeToString(k.Digest[:])
}

// Bin is a named value slot of a record.
type Bin struct {
	Name  string
	Value *Value
}

// IsHidden reports whether the bin is internal and must not be surfaced.
func (b *Bin) IsHidden() bool {
	return IsHiddenBinName(b.Name)
}

// Record is a single database record.
type Record struct {
	Key        Key
	Generation uint32
	// TTL is relative, in seconds. TTLNeverExpire disables expiration.
	TTL  uint32
	Bins []Bin
}

// VoidTime resolves the record's relative TTL to an absolute expiration in seconds
// since CitrusleafEpoch. Records that never expire resolve to VoidTimeNeverExpire.
func (r *Record) VoidTime(now time.Time) uint32 {
	if r.TTL == TTLNeverExpire {
		return VoidTimeNeverExpire
	}

	secs := now.Unix() - CitrusleafEpoch.Unix()
	if secs < 0 {
		secs = 0
	}

	return uint32(secs) + r.TTL //nolint:gosec
}

// VisibleBinCount returns the number of bins that are not hidden.
func (r *Record) VisibleBinCount() int {
	n := 0
	for i := range r.Bins {
		if !r.Bins[i].IsHidden() {
			n++
		}
	}

	return n
}

// Bin returns the first visible bin with the given name, or nil.
func (r *Record) Bin(name string) *Bin {
	if IsHiddenBinName(name) {
		return nil
	}

	for i := range r.Bins {
		if r.Bins[i].Name == name {
			return &r.Bins[i]
		}
	}

	return nil
}
