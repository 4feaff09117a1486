package mem_align

import (
	"sync"
	"unsafe"

	"github.com/go-kit/log"

	"mem_align/align"
	"mem_align/heap"
	"mem_align/internal/errs"
)

// 对外暴露的 sentinel errors，便于调用方 errors.Is。
var (
	ErrNoSpace     = errs.ErrNoSpace
	ErrBadArgument = errs.ErrBadArgument
	ErrClosed      = errs.ErrClosed
	ErrCorrupt     = errs.ErrCorrupt
)

var (
	mu          sync.RWMutex
	defaultHeap *heap.Checked
)

// Init 初始化默认堆并接上诊断日志，进程启动时调用一次，与 Deinit 配对。
// 重复调用只生效第一次。不调用 Init 也可以直接用 align 包配自己的堆。
func Init(logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	align.SetLogger(logger)
	mu.Lock()
	defer mu.Unlock()
	if defaultHeap != nil {
		return
	}
	defaultHeap = heap.NewChecked(heap.NewSys(), logger)
}

// Deinit 汇报泄漏并丢弃默认堆，之后 Malloc/Free 返回 ErrClosed。
func Deinit() {
	mu.Lock()
	defer mu.Unlock()
	if defaultHeap == nil {
		return
	}
	defaultHeap.Close()
	defaultHeap = nil
}

// Malloc 在默认堆上分配按 alignment 对齐的 size 字节。
// 返回的指针必须用 Free 释放。
func Malloc(size int, alignment uint8) (unsafe.Pointer, error) {
	mu.RLock()
	h := defaultHeap
	mu.RUnlock()
	if h == nil {
		return nil, errs.ErrClosed
	}
	return align.Malloc(h, size, alignment)
}

// Free 释放 Malloc 返回的指针；pad 区损坏时返回 ErrCorrupt 且不释放。
func Free(p unsafe.Pointer) error {
	mu.RLock()
	h := defaultHeap
	mu.RUnlock()
	if h == nil {
		return errs.ErrClosed
	}
	return align.Free(h, p)
}

// Bytes 把 Malloc 返回的指针视作长度 size 的字节切片。
func Bytes(p unsafe.Pointer, size int) []byte {
	if p == nil || size <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), size)
}

// Stats 返回默认堆的计数快照；未初始化时为零值。
func Stats() heap.Stats {
	mu.RLock()
	h := defaultHeap
	mu.RUnlock()
	if h == nil {
		return heap.Stats{}
	}
	return h.Stats()
}
