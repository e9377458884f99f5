package pool

import "sync"

// Staging buffer sizes. Most escaped strings and base64 fields fit the default;
// buffers that grew past the threshold for one large blob are not kept around.
const (
	StagingBufferDefaultSize  = 1024 * 4   // 4KiB
	StagingBufferMaxThreshold = 1024 * 256 // 256KiB
)

// StagingBuffer holds one encoded field between formatting and the sink write.
type StagingBuffer struct {
	// B is appended to directly by the field encoders.
	B []byte
}

// Reserve makes room for at least n more bytes after len(B).
//
// Capacity at least doubles when the buffer has to grow, so a buffer reused for
// progressively larger fields settles after a few calls.
func (sb *StagingBuffer) Reserve(n int) {
	if cap(sb.B)-len(sb.B) >= n {
		return
	}

	size := max(2*cap(sb.B), len(sb.B)+n)
	grown := make([]byte, len(sb.B), size)
	copy(grown, sb.B)
	sb.B = grown
}

// StagingPool recycles StagingBuffers. Buffers larger than maxCap are dropped on Put.
type StagingPool struct {
	pool   sync.Pool
	maxCap int
}

// NewStagingPool creates a pool handing out buffers of initialCap bytes.
// A maxCap of zero keeps every buffer regardless of size.
func NewStagingPool(initialCap, maxCap int) *StagingPool {
	return &StagingPool{
		pool: sync.Pool{
			New: func() any {
				return &StagingBuffer{B: make([]byte, 0, initialCap)}
			},
		},
		maxCap: maxCap,
	}
}

// Get returns an empty buffer with room for at least size bytes.
func (p *StagingPool) Get(size int) *StagingBuffer {
	sb, _ := p.pool.Get().(*StagingBuffer)
	sb.Reserve(size)

	return sb
}

// Put empties sb and hands it back to the pool.
func (p *StagingPool) Put(sb *StagingBuffer) {
	if sb == nil || (p.maxCap > 0 && cap(sb.B) > p.maxCap) {
		return
	}

	sb.B = sb.B[:0]
	p.pool.Put(sb)
}

var staging = NewStagingPool(StagingBufferDefaultSize, StagingBufferMaxThreshold)

// GetStagingBuffer takes a buffer from the shared staging pool.
// Return it with PutStagingBuffer before the encode call finishes:
//
//	buf := pool.GetStagingBuffer(encoding.QuotedCapacity(len(s)))
//	defer pool.PutStagingBuffer(buf)
func GetStagingBuffer(size int) *StagingBuffer {
	return staging.Get(size)
}

// PutStagingBuffer returns a buffer to the shared staging pool.
func PutStagingBuffer(sb *StagingBuffer) {
	staging.Put(sb)
}
