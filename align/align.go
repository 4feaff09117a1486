// Package align 在未对齐的底层堆之上提供任意字节对齐的分配。
// 补齐区同时充当偏移记录和冗余校验，释放时做一次轻量损坏检查。
// 该校验只是调试辅助，挡不住蓄意篡改，不能当作安全边界。
package align

import (
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"mem_align/heap"
	"mem_align/internal/errs"
)

var logger log.Logger = log.NewNopLogger()

// SetLogger 设置损坏诊断的日志输出；nil 恢复为静默。
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	logger = l
}

// Malloc 在 h 上分配 size 字节、起始地址按 alignment 对齐的内存。
// alignment 为 0 按 1 处理。返回的指针必须用本包的 Free 释放，
// 不能直接交还给 h。底层分配失败返回 ErrNoSpace，不留任何状态。
func Malloc(h heap.Heap, size int, alignment uint8) (unsafe.Pointer, error) {
	if size < 0 {
		return nil, errs.ErrBadArgument
	}
	if alignment == 0 {
		alignment = 1
	}
	base := h.Allocate(int(alignment) + 1 + size)
	if base == nil {
		return nil, errs.ErrNoSpace
	}
	pad := padFor(uintptr(base), alignment)
	writePad(base, pad)
	return unsafe.Add(base, int(pad)), nil
}

// Free 校验 p 前方的 pad 区并释放对应的底层分配。
// 校验不过返回 ErrCorrupt 且不释放：宁可泄漏这一块，
// 也不把算错的 base 交还给 h 去破坏它的簿记。
// pad 字节被改写成 0 同样按损坏处理，不做零步扫描后的空放行。
// 对非 Malloc 返回的指针或已释放过的指针调用属于未定义行为，调用方自约。
func Free(h heap.Heap, p unsafe.Pointer) error {
	pad, ok := readPad(p)
	if !ok || !verifyPad(p, pad) {
		level.Error(logger).Log("msg", "invalid aligned free, padding corrupted, leaking block",
			"ptr", uintptr(p))
		return errs.ErrCorrupt
	}
	h.Release(unsafe.Add(p, -int(pad)))
	return nil
}
