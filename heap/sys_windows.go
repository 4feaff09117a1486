//go:build windows

package heap

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Sys 基于 VirtualAlloc 的原生堆。
type Sys struct {
	mu      sync.Mutex
	regions map[uintptr]struct{}
}

// NewSys 创建原生堆。
func NewSys() *Sys {
	return &Sys{regions: make(map[uintptr]struct{})}
}

// Allocate 提交 n 字节可读写内存，失败返回 nil。
func (s *Sys) Allocate(n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return nil
	}
	s.mu.Lock()
	s.regions[addr] = struct{}{}
	s.mu.Unlock()
	return unsafe.Pointer(addr)
}

// Release 归还 p 对应的内存；非本堆指针忽略。
func (s *Sys) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	s.mu.Lock()
	_, ok := s.regions[uintptr(p)]
	if ok {
		delete(s.regions, uintptr(p))
	}
	s.mu.Unlock()
	if ok {
		_ = windows.VirtualFree(uintptr(p), 0, windows.MEM_RELEASE)
	}
}

// Outstanding 返回尚未释放的分配数。
func (s *Sys) Outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.regions)
}
