package scene

import (
	"errors"
	"testing"
	"time"

	"github.com/modernopengl/quadview/lib/rendering/renderconsts"
)

func waitFor(t *testing.T, ch <-chan interface{}) interface{} {
	t.Helper()
	select {
	case data := <-ch:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func listen(s *Scene, event string) <-chan interface{} {
	ch := make(chan interface{}, 8)
	s.AddEventListener(event, func(_ *Scene, data interface{}) {
		ch <- data
	})
	return ch
}

func TestShutdown(t *testing.T) {
	s := New(renderconsts.Line, 800, 600)
	events := listen(s, EventShutdown)

	if s.ShutdownRequested() {
		t.Fatal("fresh scene should not be shutting down")
	}
	s.RequestShutdown("escape pressed")
	s.RequestShutdown("again")

	if !s.ShutdownRequested() {
		t.Fatal("shutdown was not recorded")
	}
	data := waitFor(t, events).(EventDataShutdown)
	if data.Reason != "escape pressed" {
		t.Errorf("unexpected reason %q", data.Reason)
	}
	select {
	case extra := <-events:
		t.Errorf("shutdown event fired twice: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPolygonModeChanges(t *testing.T) {
	s := New(renderconsts.Line, 800, 600)
	events := listen(s, EventPolygonMode)

	mode, dirty := s.TakePolygonModeChange()
	if !dirty || mode != renderconsts.Line {
		t.Fatalf("initial mode should be reported once, got %s/%t", mode, dirty)
	}
	if _, dirty = s.TakePolygonModeChange(); dirty {
		t.Fatal("mode reported twice without a change")
	}

	if got := s.TogglePolygonMode(); got != renderconsts.Fill {
		t.Fatalf("toggle returned %s", got)
	}
	data := waitFor(t, events).(EventDataPolygonMode)
	if data.Mode != "fill" {
		t.Errorf("unexpected event %+v", data)
	}

	mode, dirty = s.TakePolygonModeChange()
	if !dirty || mode != renderconsts.Fill {
		t.Errorf("expected fill change, got %s/%t", mode, dirty)
	}

	s.SetPolygonMode(renderconsts.Fill)
	if _, dirty = s.TakePolygonModeChange(); dirty {
		t.Error("setting the same mode should not mark it dirty")
	}
}

func TestResize(t *testing.T) {
	s := New(renderconsts.Line, 800, 600)
	events := listen(s, EventResize)

	s.Resize(1920, 1080)

	w, h := s.Viewport()
	if w != 1920 || h != 1080 {
		t.Errorf("viewport is %dx%d", w, h)
	}
	data := waitFor(t, events).(EventDataResize)
	if data.Width != 1920 || data.Height != 1080 {
		t.Errorf("unexpected event %+v", data)
	}
}

func TestShaderReloadQueue(t *testing.T) {
	s := New(renderconsts.Line, 800, 600)
	events := listen(s, EventShadersReloaded)

	if _, ok := s.TakeShaderReload(); ok {
		t.Fatal("nothing should be queued")
	}
	s.QueueShaderReload(ShaderSources{Vertex: "v1", Fragment: "f1"})
	s.QueueShaderReload(ShaderSources{Vertex: "v2", Fragment: "f2"})

	src, ok := s.TakeShaderReload()
	if !ok || src.Vertex != "v2" || src.Fragment != "f2" {
		t.Errorf("expected latest sources, got %+v/%t", src, ok)
	}
	if _, ok := s.TakeShaderReload(); ok {
		t.Error("sources should be taken only once")
	}

	s.ShadersReloaded(errors.New("failed to link program"))
	data := waitFor(t, events).(EventDataShaders)
	if data.OK || data.Error != "failed to link program" {
		t.Errorf("unexpected event %+v", data)
	}
}

func TestEventsArriveInOrder(t *testing.T) {
	s := New(renderconsts.Line, 800, 600)

	const n = 100
	widths := make(chan int, n)
	s.AddEventListener(EventResize, func(_ *Scene, data interface{}) {
		widths <- data.(EventDataResize).Width
	})

	for i := 1; i <= n; i++ {
		s.Resize(i, 600)
	}

	for want := 1; want <= n; want++ {
		select {
		case got := <-widths:
			if got != want {
				t.Fatalf("resize event %d arrived as %d", want, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for resize event %d", want)
		}
	}
}
