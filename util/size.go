package util

// PadLen 返回把 n 补齐到 alignment 整数倍还差的字节数。
func PadLen(n, alignment uint64) uint64 {
	if alignment == 0 {
		return 0
	}
	r := n % alignment
	if r == 0 {
		return 0
	}
	return alignment - r
}

// RoundUp 把 n 向上取整到 alignment 的整数倍。
func RoundUp(n, alignment uint64) uint64 {
	return n + PadLen(n, alignment)
}

// RoundDown 把 n 向下取整到 alignment 的整数倍。
func RoundDown(n, alignment uint64) uint64 {
	if alignment == 0 {
		return n
	}
	return n - n%alignment
}
