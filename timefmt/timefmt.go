// Package timefmt 把时间戳和时间差渲染成人类可读文本。
package timefmt

import (
	"fmt"
	"time"
)

// Time 渲染 "Jan 02 15:04:05 UTC 2006" 形式的时间戳。
// 零值时间渲染为占位符 "--- -- --:--:-- ----"。
func Time(t time.Time, utc bool) string {
	sep := " "
	if utc {
		sep = " UTC "
	}
	if t.IsZero() {
		return "--- -- --:--:--" + sep + "----"
	}
	if utc {
		t = t.UTC()
	} else {
		t = t.Local()
	}
	return t.Format("Jan 02 15:04:05") + sep + t.Format("2006")
}

// Delta 把两个时间点的差渲染为最合适的单位：
// 超过两天按天，超过两小时按小时，超过两分钟按分钟，其余按秒。
func Delta(a, b time.Time) string {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	n := uint64(d / time.Second)
	unit := "second"
	switch {
	case n > 2*60*60*24:
		n /= 60 * 60 * 24
		unit = "day"
	case n > 2*60*60:
		n /= 60 * 60
		unit = "hour"
	case n > 2*60:
		n /= 60
		unit = "minute"
	}
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
