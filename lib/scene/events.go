package scene

import "sync"

const (
	EventResize          = "resize"
	EventPolygonMode     = "polygon-mode"
	EventShutdown        = "shutdown"
	EventShadersReloaded = "shaders-reloaded"
)

type EventListener func(scene *Scene, data interface{})

type EventDataResize struct {
	Event  string
	Width  int
	Height int
}

type EventDataPolygonMode struct {
	Event string
	Mode  string
}

type EventDataShutdown struct {
	Event  string
	Reason string
}

type EventDataShaders struct {
	Event string
	OK    bool
	Error string `json:",omitempty"`
}

// listenerQueue hands events to one listener in the order they were fired.
type listenerQueue struct {
	callback EventListener

	mu      sync.Mutex
	pending []interface{}
	wake    chan struct{}
}

func newListenerQueue(callback EventListener) *listenerQueue {
	return &listenerQueue{
		callback: callback,
		wake:     make(chan struct{}, 1),
	}
}

func (q *listenerQueue) push(data interface{}) {
	q.mu.Lock()
	q.pending = append(q.pending, data)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *listenerQueue) run(s *Scene) {
	for range q.wake {
		for {
			q.mu.Lock()
			if len(q.pending) == 0 {
				q.mu.Unlock()
				break
			}
			data := q.pending[0]
			q.pending[0] = nil
			q.pending = q.pending[1:]
			q.mu.Unlock()

			q.callback(s, data)
		}
	}
}

// AddEventListener registers callback for event. Callbacks run on a
// goroutine owned by the listener, so they must not touch GL.
func (s *Scene) AddEventListener(event string, callback EventListener) {
	q := newListenerQueue(callback)
	go q.run(s)

	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listener[event] = append(s.listener[event], q)
}

// invoke never blocks the caller, which may be the render loop.
func (s *Scene) invoke(event string, data interface{}) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	for _, q := range s.listener[event] {
		q.push(data)
	}
}
