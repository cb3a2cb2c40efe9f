package discord

import (
	"sync"
	"time"
)

// readyTracker fires once the ready event has been seen and every guild it
// announced has been delivered by a GUILD_CREATE, so the channel cache is
// populated. Handlers run concurrently, so a guild may arrive before ready.
type readyTracker struct {
	mu      sync.Mutex
	isReady bool
	pending map[string]struct{}
	seen    map[string]struct{}
	timer   *time.Timer
	timeout time.Duration

	once sync.Once
	fn   func()
}

func newReadyTracker(timeout time.Duration, fn func()) *readyTracker {
	return &readyTracker{
		pending: make(map[string]struct{}),
		seen:    make(map[string]struct{}),
		timeout: timeout,
		fn:      fn,
	}
}

// ready records the guild IDs announced by the ready event.
func (t *readyTracker) ready(guildIDs []string) {
	t.mu.Lock()
	t.isReady = true
	for _, id := range guildIDs {
		if _, ok := t.seen[id]; !ok {
			t.pending[id] = struct{}{}
		}
	}
	done := len(t.pending) == 0
	if !done && t.timeout > 0 {
		t.timer = time.AfterFunc(t.timeout, t.fire)
	}
	t.mu.Unlock()

	if done {
		t.fire()
	}
}

func (t *readyTracker) guildCreated(id string) {
	t.mu.Lock()
	t.seen[id] = struct{}{}
	delete(t.pending, id)
	done := t.isReady && len(t.pending) == 0
	t.mu.Unlock()

	if done {
		t.fire()
	}
}

func (t *readyTracker) fire() {
	t.once.Do(func() {
		t.mu.Lock()
		if t.timer != nil {
			t.timer.Stop()
		}
		t.mu.Unlock()
		t.fn()
	})
}
