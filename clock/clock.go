// Package clock 区分墙钟与单调时间两种读数。
// 墙钟受闰秒和系统改时影响；单调读数只增不减，适合算耗时和定时。
package clock

import "time"

// Clock 时间源抽象。
type Clock interface {
	// Now 返回墙钟时间。
	Now() time.Time
	// Monotonic 返回单调读数，对墙钟跳变免疫。
	Monotonic() time.Duration
}

type systemClock struct {
	start time.Time
}

var sys = &systemClock{start: time.Now()}

// System 返回进程级真实时钟。
func System() Clock { return sys }

func (c *systemClock) Now() time.Time { return time.Now() }

// Monotonic 基于 runtime 的单调钟，以包加载时刻为原点。
func (c *systemClock) Monotonic() time.Duration { return time.Since(c.start) }
