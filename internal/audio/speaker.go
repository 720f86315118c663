// Package audio coordinates spoken playback of content items. At most one
// item is ever active; starting another preempts it.
package audio

import "errors"

// ErrSpeechUnavailable is returned when no speech capability is present.
var ErrSpeechUnavailable = errors.New("speech synthesis is not available")

// Utterance is a single request to speak an item's text.
type Utterance struct {
	ID   string
	Text string
}

// Callbacks receive the asynchronous lifecycle of one utterance. They may be
// invoked from any goroutine, including synchronously from Speak or Cancel.
type Callbacks struct {
	OnStart func()
	OnEnd   func()
	OnError func(error)
}

func (cb Callbacks) start() {
	if cb.OnStart != nil {
		cb.OnStart()
	}
}

func (cb Callbacks) end() {
	if cb.OnEnd != nil {
		cb.OnEnd()
	}
}

func (cb Callbacks) fail(err error) {
	if cb.OnError != nil {
		cb.OnError(err)
	}
}

// Speaker is a text-to-speech capability.
type Speaker interface {
	// Available reports whether speech can be produced at all.
	Available() bool
	// Speak begins speaking u. It must not block until playback finishes.
	Speak(u Utterance, cb Callbacks) error
	// Cancel stops whatever is being spoken. It is safe to call when idle.
	Cancel()
}
