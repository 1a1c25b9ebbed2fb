//go:build unix

package scene

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ShutdownOnSignals requests a shutdown on SIGINT, SIGTERM or SIGHUP.
// The returned function stops listening.
func (s *Scene) ShutdownOnSignals() func() {
	return s.shutdownOn(unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
}

func (s *Scene) shutdownOn(sigs ...os.Signal) func() {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, sigs...)
	go func() {
		select {
		case sig := <-ch:
			s.RequestShutdown("received " + sig.String())
		case <-done:
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
