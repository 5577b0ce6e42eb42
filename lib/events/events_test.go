package events

import (
	"sync"
	"testing"
)

func TestDrainKeepsOrder(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Kind: KeyDown, Key: 65, KeyName: "a"})
	q.Push(Event{Kind: Resize, Width: 640, Height: 480})
	q.Push(Event{Kind: Quit})

	got := q.Drain()
	if len(got) != 3 {
		t.Fatalf("Drain() returned %d events, want 3", len(got))
	}
	kinds := []Kind{KeyDown, Resize, Quit}
	for i, k := range kinds {
		if got[i].Kind != k {
			t.Errorf("event %d kind = %v, want %v", i, got[i].Kind, k)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after Drain: %d", q.Len())
	}
	if again := q.Drain(); again != nil {
		t.Errorf("second Drain() = %v, want nil", again)
	}
}

func TestConcurrentPush(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(Event{Kind: Reload})
			}
		}()
	}
	wg.Wait()
	if n := len(q.Drain()); n != 800 {
		t.Fatalf("drained %d events, want 800", n)
	}
}

func TestEventString(t *testing.T) {
	cases := map[string]Event{
		"quit":            {Kind: Quit},
		"key-down A (65)": {Kind: KeyDown, Key: 65, KeyName: "A"},
		"resize 1024x768": {Kind: Resize, Width: 1024, Height: 768},
		"reload":          {Kind: Reload},
		"kind(42)":        {Kind: Kind(42)},
	}
	for want, e := range cases {
		if got := e.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
