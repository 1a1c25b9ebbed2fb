package stats

import (
	"sync"
	"time"
)

type Stats struct {
	Frames         uint64  `json:"frames"`
	Uptime         float64 `json:"uptime"`
	FPS            uint64  `json:"fps"`
	WsClients      int     `json:"ws_clients"`
	ViewportWidth  int     `json:"viewport_width"`
	ViewportHeight int     `json:"viewport_height"`
	PolygonMode    string  `json:"polygon_mode"`

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	mu           sync.Mutex
}

func New() *Stats {
	return NewAt(time.Now())
}

func NewAt(start time.Time) *Stats {
	s := &Stats{}
	s.start = start
	s.frameTimer = start
	return s
}

// Update counts a frame. It is called once per iteration of the render loop.
func (s *Stats) Update() {
	s.UpdateAt(time.Now())
}

func (s *Stats) UpdateAt(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) >= 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.Uptime = float64(now.Sub(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) SetViewport(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ViewportWidth = width
	s.ViewportHeight = height
}

func (s *Stats) SetPolygonMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PolygonMode = mode
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WsClients = n
}

// Snapshot returns a copy that is safe to serialise from another goroutine.
func (s *Stats) Snapshot() *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &Stats{
		Frames:         s.Frames,
		Uptime:         s.Uptime,
		FPS:            s.FPS,
		WsClients:      s.WsClients,
		ViewportWidth:  s.ViewportWidth,
		ViewportHeight: s.ViewportHeight,
		PolygonMode:    s.PolygonMode,
	}
}
