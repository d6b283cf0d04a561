// Package input holds the directional key state shared by every actor in a scene.
package input

// Key identifiers understood by the store. They match the names reported by
// the ebiten backend for the arrow keys.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowDown  = "ArrowDown"
	KeyArrowRight = "ArrowRight"
)

// Flags is a snapshot of which arrow keys are currently held.
type Flags struct {
	UpPressed    bool
	LeftPressed  bool
	DownPressed  bool
	RightPressed bool
}

// KeyEvent is a single press or release reported by an input backend.
type KeyEvent struct {
	Key     string
	Pressed bool
}

type subscription struct {
	id int
	fn func(Flags)
}

// Store owns the current Flags and notifies subscribers whenever a
// recognized key changes them. It is not safe for concurrent use; the game
// loop is its only caller.
type Store struct {
	flags  Flags
	subs   []subscription
	nextID int
}

// NewStore creates a store with every key released.
func NewStore() *Store {
	return &Store{}
}

// State returns the current flags.
func (s *Store) State() Flags {
	return s.flags
}

// Subscribe registers fn and calls it immediately with the current flags.
// The returned function removes the subscription; calling it more than once
// is harmless.
func (s *Store) Subscribe(fn func(Flags)) func() {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	fn(s.flags)

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// KeyDown marks key as held. Unknown keys are ignored.
func (s *Store) KeyDown(key string) {
	s.set(key, true)
}

// KeyUp marks key as released. Unknown keys are ignored.
func (s *Store) KeyUp(key string) {
	s.set(key, false)
}

// Handle applies a backend key event.
func (s *Store) Handle(ev KeyEvent) {
	if ev.Pressed {
		s.KeyDown(ev.Key)
	} else {
		s.KeyUp(ev.Key)
	}
}

func (s *Store) set(key string, pressed bool) {
	next := s.flags
	switch key {
	case KeyArrowUp:
		next.UpPressed = pressed
	case KeyArrowLeft:
		next.LeftPressed = pressed
	case KeyArrowDown:
		next.DownPressed = pressed
	case KeyArrowRight:
		next.RightPressed = pressed
	default:
		return
	}
	s.flags = next
	s.notify()
}

func (s *Store) notify() {
	// Copy so a subscriber may unsubscribe from inside its callback.
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(s.flags)
	}
}
