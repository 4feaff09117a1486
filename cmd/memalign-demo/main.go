package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	memalign "mem_align"
	"mem_align/clock"
	"mem_align/internal/proc"
	"mem_align/timefmt"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	memalign.Init(logger)
	defer memalign.Deinit()

	start := clock.System().Now()
	level.Info(logger).Log("msg", "memalign demo started", "at", timefmt.Time(start, false))

	cases := []struct {
		size      int
		alignment uint8
	}{
		{10, 8},
		{4096, 64},
		{1, 255},
		{7, 0},
	}
	var ptrs []unsafe.Pointer
	for _, c := range cases {
		p, err := memalign.Malloc(c.size, c.alignment)
		if err != nil {
			level.Error(logger).Log("msg", "malloc failed", "size", c.size, "align", c.alignment, "err", err)
			os.Exit(1)
		}
		buf := memalign.Bytes(p, c.size)
		for i := range buf {
			buf[i] = byte(i)
		}
		level.Info(logger).Log("msg", "allocated", "size", c.size, "align", c.alignment, "ptr", fmt.Sprintf("%#x", uintptr(p)))
		ptrs = append(ptrs, p)
	}
	st := memalign.Stats()
	level.Info(logger).Log("msg", "heap stats", "allocs", st.Allocs, "inuse", humanize.Bytes(st.InUseBytes))

	fmt.Println("press ^C to exit")
	sig := proc.WaitShutdown()

	for _, p := range ptrs {
		if err := memalign.Free(p); err != nil {
			level.Error(logger).Log("msg", "free failed", "err", err)
		}
	}
	level.Info(logger).Log("msg", "memalign demo done", "signal", sig.String(),
		"ran_for", timefmt.Delta(clock.System().Now(), start),
		"uptime", clock.System().Monotonic().String())
}
