//go:build unix

package proc

import (
	"os"
	"os/signal"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// WaitShutdown 阻塞等待 SIGINT/SIGTERM，返回收到的信号。
func WaitShutdown() os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM)
	defer signal.Stop(ch)
	return <-ch
}

// CloseFrom 关闭所有 >= lowfd 的文件描述符。
// 优先遍历 /proc/self/fd 只关已打开的，目录不可用时退回按
// RLIMIT_NOFILE 上限逐个扫。
func CloseFrom(lowfd int) error {
	if lowfd < 0 {
		lowfd = 0
	}
	dir, err := os.Open("/proc/self/fd")
	if err == nil {
		defer dir.Close()
		names, err := dir.Readdirnames(-1)
		if err != nil {
			return errors.Wrap(err, "read fd dir")
		}
		self := int(dir.Fd())
		for _, name := range names {
			fd, err := strconv.Atoi(name)
			if err != nil || fd < lowfd || fd == self {
				continue
			}
			_ = unix.Close(fd)
		}
		return nil
	}
	maxfd := 256
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &lim); err == nil && lim.Cur > 0 {
		maxfd = int(lim.Cur)
	}
	for fd := lowfd; fd < maxfd; fd++ {
		_ = unix.Close(fd)
	}
	return nil
}
