package simplejs

import "errors"

// ErrOOM indicates out of memory.
var ErrOOM = errors.New("out of memory")

// memAlignment is the allocation granularity of the pool. Every block
// starts on an 8-byte boundary.
const memAlignment = 8

// Memory is a simple memory pool for JS engine. The backing array is
// allocated once and never reallocated or moved, so sub-slices handed out
// by Read stay valid for the lifetime of the pool.
type Memory struct {
	buf  []byte
	brk  int
	size int
}

// NewMemory creates a memory pool of given size.
func NewMemory(size int) *Memory {
	return &Memory{buf: make([]byte, size), size: size}
}

// alignUp rounds n up to a multiple of memAlignment.
func alignUp(n int) int {
	if rem := n % memAlignment; rem != 0 {
		return n + (memAlignment - rem)
	}
	return n
}

// Alloc reserves n bytes and returns the block offset.
func (m *Memory) Alloc(n int) (int, error) {
	n = alignUp(n)
	if n < 0 || m.brk > m.size-n {
		return 0, ErrOOM
	}
	offset := m.brk
	m.brk += n
	return offset, nil
}

// Write writes data into memory at given offset.
func (m *Memory) Write(off int, data []byte) {
	copy(m.buf[off:], data)
}

// Read returns the length bytes at off. The slice aliases the pool, it is
// not a copy.
func (m *Memory) Read(off int, length int) []byte {
	return m.buf[off : off+length]
}

// Zero clears the length bytes at off.
func (m *Memory) Zero(off int, length int) {
	clear(m.buf[off : off+length])
}
