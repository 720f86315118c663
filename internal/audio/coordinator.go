package audio

import (
	"errors"
	"sync"
)

// Coordinator owns the single "currently speaking" slot.
//
// An id becomes active only once the speaker reports that playback started.
// Completion, failure, Stop, and preemption all clear the slot. Every
// utterance carries a generation number so callbacks from a superseded
// utterance are ignored.
type Coordinator struct {
	speaker  Speaker
	onChange func(active string)
	onError  func(id string, err error)

	// opMu serialises Play and Stop. Speaker callbacks never take it.
	opMu sync.Mutex

	mu      sync.Mutex
	active  string
	pending string
	gen     uint64
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithOnChange registers a hook called with the new active id (or "") after
// every transition of the active slot.
func WithOnChange(fn func(active string)) Option {
	return func(c *Coordinator) { c.onChange = fn }
}

// WithOnError registers a hook for playback failures. The slot is already
// cleared when it runs.
func WithOnError(fn func(id string, err error)) Option {
	return func(c *Coordinator) { c.onError = fn }
}

// NewCoordinator creates a Coordinator backed by speaker, which may be nil.
func NewCoordinator(speaker Speaker, opts ...Option) *Coordinator {
	c := &Coordinator{speaker: speaker}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Play toggles playback of id. If id is already playing (or about to), it is
// stopped. Otherwise any other playback is cancelled and text is spoken.
func (c *Coordinator) Play(id, text string) error {
	if id == "" {
		return errors.New("play: empty id")
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	if c.active == id || c.pending == id {
		changed := c.resetLocked()
		c.mu.Unlock()
		c.speaker.Cancel()
		if changed {
			c.notify("")
		}
		return nil
	}
	c.mu.Unlock()

	if c.speaker == nil || !c.speaker.Available() {
		return ErrSpeechUnavailable
	}

	c.mu.Lock()
	changed := c.resetLocked()
	gen := c.gen
	c.pending = id
	c.mu.Unlock()

	c.speaker.Cancel()
	if changed {
		c.notify("")
	}

	err := c.speaker.Speak(Utterance{ID: id, Text: text}, Callbacks{
		OnStart: func() { c.started(gen) },
		OnEnd:   func() { c.finished(gen, nil) },
		OnError: func(err error) { c.finished(gen, err) },
	})
	if err != nil {
		c.finished(gen, err)
	}
	return nil
}

// Stop cancels any playback and clears the active slot.
func (c *Coordinator) Stop() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	changed := c.resetLocked()
	c.mu.Unlock()

	if c.speaker != nil {
		c.speaker.Cancel()
	}
	if changed {
		c.notify("")
	}
}

// Active returns the id currently being spoken, or "".
func (c *Coordinator) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// IsActive reports whether id is the one currently being spoken.
func (c *Coordinator) IsActive(id string) bool {
	return id != "" && c.Active() == id
}

// resetLocked clears the slot and invalidates outstanding callbacks. It
// reports whether an active id was cleared.
func (c *Coordinator) resetLocked() bool {
	changed := c.active != ""
	c.active = ""
	c.pending = ""
	c.gen++
	return changed
}

func (c *Coordinator) started(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.pending == "" {
		c.mu.Unlock()
		return
	}
	c.active = c.pending
	c.pending = ""
	active := c.active
	c.mu.Unlock()

	c.notify(active)
}

func (c *Coordinator) finished(gen uint64, err error) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	id := c.active
	if id == "" {
		id = c.pending
	}
	changed := c.resetLocked()
	c.mu.Unlock()

	if err != nil && c.onError != nil {
		c.onError(id, err)
	}
	if changed {
		c.notify("")
	}
}

func (c *Coordinator) notify(active string) {
	if c.onChange != nil {
		c.onChange(active)
	}
}
