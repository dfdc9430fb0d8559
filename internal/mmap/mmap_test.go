package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)

	b := m.Bytes()
	require.Len(t, b, 4096)
	assert.Equal(t, 4096, m.Size())

	// Anonymous mappings are zero-filled.
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, v)
		}
	}

	// Must be writable.
	b[0] = 0xAB
	b[4095] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[4095])
}

func TestMapAnon_InvalidSize(t *testing.T) {
	_, err := MapAnon(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapAnon(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMapAnon_Close(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())

	// Close is idempotent.
	require.NoError(t, m.Close())
}

func TestMapAnon_UnalignedSize(t *testing.T) {
	// Sizes that are not page multiples still map (kernel rounds up).
	m, err := MapAnon(100)
	require.NoError(t, err)
	defer m.Close()

	assert.Len(t, m.Bytes(), 100)
}
