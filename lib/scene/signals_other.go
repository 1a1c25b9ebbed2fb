//go:build !unix

package scene

import (
	"os"
	"os/signal"
)

func (s *Scene) ShutdownOnSignals() func() {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, os.Interrupt)
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
