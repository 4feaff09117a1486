package align

import "unsafe"

// pad 区编码约定：用户指针前方连续 pad 个字节，每个字节的值都等于 pad。
// pad ∈ [1, alignment]，base 恰好对齐时也补满 alignment 字节，
// 因此合法的 pad 永不为 0，读到 0 即元数据损坏。

// padFor 计算 base 在 alignment 约束下需要的补齐字节数。
func padFor(base uintptr, alignment uint8) uint8 {
	a := uintptr(alignment)
	if a == 0 {
		a = 1
	}
	return uint8(a - base%a)
}

// writePad 从 base 起写入 pad 个值为 pad 的字节。
func writePad(base unsafe.Pointer, pad uint8) {
	b := unsafe.Slice((*byte)(base), int(pad))
	for i := range b {
		b[i] = pad
	}
}

// readPad 读出 p 前一字节记录的 pad 值；0 视为损坏。
func readPad(p unsafe.Pointer) (uint8, bool) {
	pad := *(*byte)(unsafe.Add(p, -1))
	return pad, pad != 0
}

// verifyPad 校验 [p-pad, p-1] 区间的每个字节都等于 pad。
func verifyPad(p unsafe.Pointer, pad uint8) bool {
	for i := 1; i <= int(pad); i++ {
		if *(*byte)(unsafe.Add(p, -i)) != pad {
			return false
		}
	}
	return true
}
