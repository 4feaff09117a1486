//go:build unix

package heap

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Sys 基于匿名 mmap 的原生堆，每次 Allocate 独立映射一块。
// regions 记录指针到映射区的关系，Release 按此解除映射。
type Sys struct {
	mu      sync.Mutex
	regions map[uintptr][]byte
}

// NewSys 创建原生堆。
func NewSys() *Sys {
	return &Sys{regions: make(map[uintptr][]byte)}
}

// Allocate 映射 n 字节可读写匿名内存，失败返回 nil。
func (s *Sys) Allocate(n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil
	}
	p := unsafe.Pointer(&b[0])
	s.mu.Lock()
	s.regions[uintptr(p)] = b
	s.mu.Unlock()
	return p
}

// Release 解除 p 对应的映射；非本堆指针忽略。
func (s *Sys) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	s.mu.Lock()
	b, ok := s.regions[uintptr(p)]
	if ok {
		delete(s.regions, uintptr(p))
	}
	s.mu.Unlock()
	if ok {
		_ = unix.Munmap(b)
	}
}

// Outstanding 返回尚未释放的映射数。
func (s *Sys) Outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.regions)
}
