package simplejs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAllocAligned(t *testing.T) {
	m := NewMemory(64)

	off, err := m.Alloc(5)
	require.NoError(t, err)
	assert.Equal(t, 0, off)

	off, err = m.Alloc(1)
	require.NoError(t, err)
	assert.Equal(t, 8, off, "blocks start on %d-byte boundaries", memAlignment)

	off, err = m.Alloc(16)
	require.NoError(t, err)
	assert.Equal(t, 16, off)
}

func TestMemoryAllocExhausted(t *testing.T) {
	m := NewMemory(16)

	_, err := m.Alloc(16)
	require.NoError(t, err)

	_, err = m.Alloc(1)
	assert.ErrorIs(t, err, ErrOOM)
}

func TestMemoryReadAliasesPool(t *testing.T) {
	m := NewMemory(32)
	off, err := m.Alloc(8)
	require.NoError(t, err)

	m.Write(off, []byte{1, 2, 3})
	region := m.Read(off, 3)
	assert.Equal(t, []byte{1, 2, 3}, region)

	// Read hands out the pool bytes themselves, not a copy
	region[0] = 9
	assert.Equal(t, byte(9), m.Read(off, 1)[0])
}

func TestMemoryZero(t *testing.T) {
	m := NewMemory(32)
	off, err := m.Alloc(8)
	require.NoError(t, err)

	m.Write(off, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	m.Zero(off, 8)
	assert.Equal(t, make([]byte, 8), m.Read(off, 8))
}
