//go:build unix

package scene

import (
	"testing"
	"time"

	"github.com/modernopengl/quadview/lib/rendering/renderconsts"
	"golang.org/x/sys/unix"
)

func TestShutdownOnSignal(t *testing.T) {
	s := New(renderconsts.Line, 800, 600)
	stop := s.shutdownOn(unix.SIGUSR1)
	defer stop()

	if err := unix.Kill(unix.Getpid(), unix.SIGUSR1); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !s.ShutdownRequested() {
		if time.Now().After(deadline) {
			t.Fatal("signal did not request shutdown")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestShutdownOnHangup(t *testing.T) {
	s := New(renderconsts.Line, 800, 600)
	stop := s.ShutdownOnSignals()
	defer stop()

	if err := unix.Kill(unix.Getpid(), unix.SIGHUP); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !s.ShutdownRequested() {
		if time.Now().After(deadline) {
			t.Fatal("SIGHUP did not request shutdown")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
