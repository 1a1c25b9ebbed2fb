package stats

import (
	"testing"
	"time"
)

func TestFPS(t *testing.T) {
	start := time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC)
	s := NewAt(start)

	for i := 1; i <= 60; i++ {
		s.UpdateAt(start.Add(time.Duration(i) * time.Second / 60))
	}

	snap := s.Snapshot()
	if snap.FPS != 60 {
		t.Errorf("expected 60 fps, got %d", snap.FPS)
	}
	if snap.Frames != 60 {
		t.Errorf("expected 60 frames, got %d", snap.Frames)
	}
	if snap.Uptime < 0.99 || snap.Uptime > 1.01 {
		t.Errorf("expected ~1s uptime, got %f", snap.Uptime)
	}
}

func TestSetters(t *testing.T) {
	s := New()
	s.SetViewport(1024, 768)
	s.SetPolygonMode("fill")
	s.SetWsClients(2)

	snap := s.Snapshot()
	if snap.ViewportWidth != 1024 || snap.ViewportHeight != 768 {
		t.Errorf("unexpected viewport %dx%d", snap.ViewportWidth, snap.ViewportHeight)
	}
	if snap.PolygonMode != "fill" || snap.WsClients != 2 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}
