package heap

import (
	"sync"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var (
	allocsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "memalign",
		Name:      "heap_allocs_total",
		Help:      "Total count of backing heap allocations.",
	})
	releasesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "memalign",
		Name:      "heap_releases_total",
		Help:      "Total count of backing heap releases.",
	})
	inUseBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "memalign",
		Name:      "heap_inuse_bytes",
		Help:      "Bytes currently held by the backing heap.",
	})
)

func init() {
	prometheus.MustRegister(allocsTotal)
	prometheus.MustRegister(releasesTotal)
	prometheus.MustRegister(inUseBytes)
}

// Checked 包装任意 Heap，跟踪每笔分配的大小与归还情况。
// 用于泄漏诊断和测试替身，不改变被包装堆的任何语义。
type Checked struct {
	heap   Heap
	logger log.Logger

	allocs   atomic.Uint64
	releases atomic.Uint64
	inUse    atomic.Uint64

	mu    sync.Mutex
	sizes map[uintptr]int
}

// NewChecked 包装 h；logger 为 nil 时不输出诊断。
func NewChecked(h Heap, logger log.Logger) *Checked {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Checked{
		heap:   h,
		logger: logger,
		sizes:  make(map[uintptr]int),
	}
}

// Allocate 透传到被包装堆并记账。
func (c *Checked) Allocate(n int) unsafe.Pointer {
	p := c.heap.Allocate(n)
	if p == nil {
		return nil
	}
	c.mu.Lock()
	c.sizes[uintptr(p)] = n
	c.mu.Unlock()
	c.allocs.Inc()
	c.inUse.Add(uint64(n))
	allocsTotal.Inc()
	inUseBytes.Add(float64(n))
	return p
}

// Release 归还 p。未经本堆分配的指针只记一条诊断，不向下透传，
// 避免把来历不明的指针交给底层堆。
func (c *Checked) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	c.mu.Lock()
	n, ok := c.sizes[uintptr(p)]
	if ok {
		delete(c.sizes, uintptr(p))
	}
	c.mu.Unlock()
	if !ok {
		level.Error(c.logger).Log("msg", "release of unknown pointer ignored", "ptr", uintptr(p))
		return
	}
	c.heap.Release(p)
	c.releases.Inc()
	c.inUse.Sub(uint64(n))
	releasesTotal.Inc()
	inUseBytes.Sub(float64(n))
}

// Stats 返回计数快照。
func (c *Checked) Stats() Stats {
	return Stats{
		Allocs:     c.allocs.Load(),
		Releases:   c.releases.Load(),
		InUseBytes: c.inUse.Load(),
	}
}

// Close 汇报尚未归还的分配。不回收内存，只做诊断。
func (c *Checked) Close() {
	c.mu.Lock()
	leaked := len(c.sizes)
	var bytes int
	for _, n := range c.sizes {
		bytes += n
	}
	c.mu.Unlock()
	if leaked > 0 {
		level.Warn(c.logger).Log("msg", "heap closed with outstanding allocations",
			"count", leaked, "bytes", bytes)
	}
}
