package packetbuf

import "sync"

// bufferPool reuses Buffers for the per-packet encode/decode cycle.
// A 4KB default avoids re-allocations for common packet sizes.
var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{data: make([]byte, 0, 4096), pooled: true}
	},
}

// Acquire returns an empty Buffer from the pool.
func Acquire() *Buffer {
	return bufferPool.Get().(*Buffer)
}

// Release truncates b and returns it to the pool. b must not be used afterwards.
// Only Buffers obtained from Acquire are pooled; others are left to the
// garbage collector so a caller's slice passed to NewBuffer is never reused.
func Release(b *Buffer) {
	if b == nil || !b.pooled {
		return
	}
	// Oversized buffers would pin memory in the pool.
	if cap(b.data) > MAX_POOLED_SIZE {
		return
	}
	b.Truncate()
	bufferPool.Put(b)
}

const (
	CHUNK_SIZE      = 32 * 1024
	MAX_POOLED_SIZE = 1 << 20
)

// chunkPool holds the scratch slices ReadFrom reads into. 32KB is a common default size used by io.Copy.
var chunkPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, CHUNK_SIZE)
		return &b
	},
}
