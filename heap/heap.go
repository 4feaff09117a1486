package heap

import "unsafe"

// Heap 未对齐底层分配器的抽象。
// Allocate 失败返回 nil；Release 只接受同一 Heap 的 Allocate 返回的指针。
type Heap interface {
	Allocate(n int) unsafe.Pointer
	Release(p unsafe.Pointer)
}

// Stats 分配计数快照。
type Stats struct {
	Allocs     uint64
	Releases   uint64
	InUseBytes uint64
}

// Outstanding 返回尚未释放的分配数。
func (s Stats) Outstanding() uint64 {
	return s.Allocs - s.Releases
}
