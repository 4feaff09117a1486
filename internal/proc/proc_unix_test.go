//go:build unix

package proc

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sys/unix"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWaitShutdown(t *testing.T) {
	done := make(chan os.Signal, 1)
	go func() {
		done <- WaitShutdown()
	}()
	// 等 Notify 注册好再发信号，否则默认处理会杀掉测试进程。
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGTERM))

	select {
	case sig := <-done:
		require.Equal(t, unix.SIGTERM, sig)
	case <-time.After(5 * time.Second):
		t.Fatal("WaitShutdown did not return after SIGTERM")
	}
}

func TestCloseFrom(t *testing.T) {
	dir := t.TempDir()
	open := func(name string) *os.File {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		return f
	}
	f1 := open("low")
	f2 := open("mid")
	f3 := open("high")
	defer f1.Close()

	require.NoError(t, CloseFrom(int(f2.Fd())))

	_, err := unix.FcntlInt(f1.Fd(), unix.F_GETFD, 0)
	require.NoError(t, err, "fd below lowfd must stay open")
	_, err = unix.FcntlInt(f2.Fd(), unix.F_GETFD, 0)
	require.ErrorIs(t, err, unix.EBADF)
	_, err = unix.FcntlInt(f3.Fd(), unix.F_GETFD, 0)
	require.ErrorIs(t, err, unix.EBADF)
}
