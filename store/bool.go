package store

import "sync"

// Bool is an observable boolean. Subscribers receive the current value on
// subscription and every change after that.
type Bool struct {
	mu     sync.Mutex
	value  bool
	nextID int
	subs   map[int]func(bool)
}

// MusicEnabled reports whether background music is switched on.
var MusicEnabled = NewBool(false)

// NewBool creates a Bool holding initial.
func NewBool(initial bool) *Bool {
	return &Bool{
		value: initial,
		subs:  make(map[int]func(bool)),
	}
}

// Get returns the current value.
func (b *Bool) Get() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Set stores v and notifies subscribers if it changed.
func (b *Bool) Set(v bool) {
	b.mu.Lock()
	if b.value == v {
		b.mu.Unlock()
		return
	}
	b.value = v
	subs := b.snapshot()
	b.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn and calls it immediately with the current value.
// The returned function removes the subscription; calling it twice is safe.
func (b *Bool) Subscribe(fn func(bool)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	current := b.value
	b.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// snapshot copies subscribers in registration order. Caller holds b.mu.
func (b *Bool) snapshot() []func(bool) {
	out := make([]func(bool), 0, len(b.subs))
	for id := 0; id < b.nextID; id++ {
		if fn, ok := b.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
