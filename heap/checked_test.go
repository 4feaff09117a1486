package heap

import (
	"bytes"
	"sync"
	"testing"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHeap 用普通切片模拟底层堆。
type testHeap struct {
	mu       sync.Mutex
	blocks   map[uintptr][]byte
	releases int
}

func newTestHeap() *testHeap {
	return &testHeap{blocks: make(map[uintptr][]byte)}
}

func (h *testHeap) Allocate(n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	b := make([]byte, n)
	p := unsafe.Pointer(&b[0])
	h.blocks[uintptr(p)] = b
	return p
}

func (h *testHeap) Release(p unsafe.Pointer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.blocks, uintptr(p))
	h.releases++
}

func TestCheckedAccounting(t *testing.T) {
	inner := newTestHeap()
	c := NewChecked(inner, nil)

	p1 := c.Allocate(64)
	require.NotNil(t, p1)
	p2 := c.Allocate(128)
	require.NotNil(t, p2)

	st := c.Stats()
	assert.Equal(t, uint64(2), st.Allocs)
	assert.Equal(t, uint64(0), st.Releases)
	assert.Equal(t, uint64(192), st.InUseBytes)
	assert.Equal(t, uint64(2), st.Outstanding())

	c.Release(p1)
	st = c.Stats()
	assert.Equal(t, uint64(1), st.Releases)
	assert.Equal(t, uint64(128), st.InUseBytes)
	assert.Equal(t, 1, inner.releases)

	c.Release(p2)
	assert.Zero(t, c.Stats().Outstanding())
}

func TestCheckedAllocateFailure(t *testing.T) {
	c := NewChecked(newTestHeap(), nil)
	assert.Nil(t, c.Allocate(0))
	assert.Zero(t, c.Stats().Allocs)
}

func TestCheckedUnknownRelease(t *testing.T) {
	var logbuf bytes.Buffer
	inner := newTestHeap()
	c := NewChecked(inner, log.NewLogfmtLogger(&logbuf))

	var x byte
	c.Release(unsafe.Pointer(&x))
	assert.Zero(t, inner.releases, "unknown pointer must not reach the inner heap")
	assert.Zero(t, c.Stats().Releases)
	assert.Contains(t, logbuf.String(), "unknown pointer")
}

func TestCheckedCloseReportsLeaks(t *testing.T) {
	var logbuf bytes.Buffer
	c := NewChecked(newTestHeap(), log.NewLogfmtLogger(&logbuf))

	p := c.Allocate(32)
	require.NotNil(t, p)
	c.Close()
	assert.Contains(t, logbuf.String(), "outstanding")

	logbuf.Reset()
	c.Release(p)
	c.Close()
	assert.Empty(t, logbuf.String())
}
