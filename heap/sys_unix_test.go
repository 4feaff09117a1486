//go:build unix

package heap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSysAllocateRelease(t *testing.T) {
	s := NewSys()
	p := s.Allocate(4096)
	require.NotNil(t, p)
	assert.Equal(t, 1, s.Outstanding())

	buf := unsafe.Slice((*byte)(p), 4096)
	for i := range buf {
		buf[i] = byte(i)
	}
	assert.Equal(t, byte(255), buf[255])

	s.Release(p)
	assert.Zero(t, s.Outstanding())
}

func TestSysAllocateInvalid(t *testing.T) {
	s := NewSys()
	assert.Nil(t, s.Allocate(0))
	assert.Nil(t, s.Allocate(-1))
	assert.Zero(t, s.Outstanding())
}

func TestSysReleaseForeignPointer(t *testing.T) {
	s := NewSys()
	var x byte
	s.Release(unsafe.Pointer(&x))
	s.Release(nil)
	assert.Zero(t, s.Outstanding())
}
