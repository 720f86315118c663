package web

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ziadkadry99/azkar/internal/audio"
)

// BrowserSpeaker is an audio.Speaker whose synthesis runs in a browser tab.
// Speak and Cancel become messages to the tab; the tab reports lifecycle
// events back tagged with the utterance token. Events for any token other
// than the current one are dropped.
type BrowserSpeaker struct {
	send func(serverMessage) error
	lang string

	mu        sync.Mutex
	available bool
	token     string
	cb        audio.Callbacks
}

// NewBrowserSpeaker returns a speaker that delivers commands through send.
// It is unavailable until the tab reports speech support.
func NewBrowserSpeaker(send func(serverMessage) error, lang string) *BrowserSpeaker {
	return &BrowserSpeaker{send: send, lang: lang}
}

// SetAvailable records whether the tab can synthesise speech.
func (b *BrowserSpeaker) SetAvailable(ok bool) {
	b.mu.Lock()
	b.available = ok
	b.mu.Unlock()
}

func (b *BrowserSpeaker) Available() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.available
}

func (b *BrowserSpeaker) Speak(u audio.Utterance, cb audio.Callbacks) error {
	token := uuid.NewString()

	b.mu.Lock()
	b.token = token
	b.cb = cb
	b.mu.Unlock()

	err := b.send(serverMessage{Type: msgSpeak, Token: token, ID: u.ID, Text: u.Text, Lang: b.lang})
	if err != nil {
		b.clear(token)
	}
	return err
}

func (b *BrowserSpeaker) Cancel() {
	b.mu.Lock()
	if b.token == "" {
		b.mu.Unlock()
		return
	}
	b.token = ""
	b.cb = audio.Callbacks{}
	b.mu.Unlock()

	// The tab may already be gone; the session read loop notices that.
	_ = b.send(serverMessage{Type: msgCancel})
}

// Started, Ended and Failed deliver tab events for token.

func (b *BrowserSpeaker) Started(token string) {
	if cb, ok := b.current(token, false); ok && cb.OnStart != nil {
		cb.OnStart()
	}
}

func (b *BrowserSpeaker) Ended(token string) {
	if cb, ok := b.current(token, true); ok && cb.OnEnd != nil {
		cb.OnEnd()
	}
}

func (b *BrowserSpeaker) Failed(token string, err error) {
	if cb, ok := b.current(token, true); ok && cb.OnError != nil {
		cb.OnError(err)
	}
}

func (b *BrowserSpeaker) current(token string, done bool) (audio.Callbacks, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if token == "" || token != b.token {
		return audio.Callbacks{}, false
	}
	cb := b.cb
	if done {
		b.token = ""
		b.cb = audio.Callbacks{}
	}
	return cb, true
}

func (b *BrowserSpeaker) clear(token string) {
	b.mu.Lock()
	if b.token == token {
		b.token = ""
		b.cb = audio.Callbacks{}
	}
	b.mu.Unlock()
}
