package events

import (
	"fmt"
	"sync"

	"github.com/xes-gl/xes/lib/metrics"
)

type Kind int

const (
	Quit Kind = iota
	KeyDown
	Resize
	Reload
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case KeyDown:
		return "key-down"
	case Resize:
		return "resize"
	case Reload:
		return "reload"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is a single input event. Key fields are set for KeyDown, size
// fields for Resize.
type Event struct {
	Kind    Kind
	Key     int
	KeyName string
	Width   int
	Height  int
}

func (e Event) String() string {
	switch e.Kind {
	case KeyDown:
		return fmt.Sprintf("key-down %s (%d)", e.KeyName, e.Key)
	case Resize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	}
	return e.Kind.String()
}

// Queue collects events from window callbacks and background goroutines
// until the frame loop drains them.
type Queue struct {
	sync.Mutex
	pending []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push is safe to call from any goroutine.
func (q *Queue) Push(e Event) {
	q.Lock()
	defer q.Unlock()

	q.pending = append(q.pending, e)
	metrics.Events.WithLabelValues(e.Kind.String()).Inc()
}

// Drain returns all pending events in push order and empties the queue.
func (q *Queue) Drain() []Event {
	q.Lock()
	defer q.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int {
	q.Lock()
	defer q.Unlock()
	return len(q.pending)
}
