//go:build windows

package proc

import (
	"errors"
	"os"
	"os/signal"
)

var ErrNotSupported = errors.New("closefrom not supported on windows")

// WaitShutdown 阻塞等待 Ctrl-C（windows 上没有 SIGTERM 语义）。
func WaitShutdown() os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	defer signal.Stop(ch)
	return <-ch
}

func CloseFrom(lowfd int) error {
	return ErrNotSupported
}
