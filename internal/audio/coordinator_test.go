package audio

import (
	"errors"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeSpeaker records utterances and lets tests fire callbacks by hand.
type fakeSpeaker struct {
	mu          sync.Mutex
	available   bool
	autoStart   bool
	speakErr    error
	spoken      []Utterance
	callbacks   []Callbacks
	cancelCount int
}

func newFakeSpeaker() *fakeSpeaker {
	return &fakeSpeaker{available: true, autoStart: true}
}

func (f *fakeSpeaker) Available() bool { return f.available }

func (f *fakeSpeaker) Speak(u Utterance, cb Callbacks) error {
	f.mu.Lock()
	if f.speakErr != nil {
		f.mu.Unlock()
		return f.speakErr
	}
	f.spoken = append(f.spoken, u)
	f.callbacks = append(f.callbacks, cb)
	auto := f.autoStart
	f.mu.Unlock()

	if auto {
		cb.start()
	}
	return nil
}

func (f *fakeSpeaker) Cancel() {
	f.mu.Lock()
	f.cancelCount++
	f.mu.Unlock()
}

func (f *fakeSpeaker) last() Callbacks {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callbacks[len(f.callbacks)-1]
}

func (f *fakeSpeaker) at(i int) Callbacks {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callbacks[i]
}

func TestPlayTwiceTogglesOff(t *testing.T) {
	sp := newFakeSpeaker()
	c := NewCoordinator(sp)

	if err := c.Play("m1", "..."); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !c.IsActive("m1") {
		t.Fatalf("active = %q, want m1", c.Active())
	}

	if err := c.Play("m1", "..."); err != nil {
		t.Fatalf("second Play: %v", err)
	}
	if c.Active() != "" {
		t.Errorf("active = %q after toggle, want none", c.Active())
	}
	if len(sp.spoken) != 1 {
		t.Errorf("spoken = %d, want 1 (toggle must not re-speak)", len(sp.spoken))
	}
}

func TestPlayPreempts(t *testing.T) {
	sp := newFakeSpeaker()
	c := NewCoordinator(sp)

	c.Play("a", "first")
	c.Play("b", "second")

	if !c.IsActive("b") {
		t.Errorf("active = %q, want b", c.Active())
	}
	if c.IsActive("a") {
		t.Error("a still active after preemption")
	}
	if sp.cancelCount < 2 {
		t.Errorf("cancel count = %d, want a cancel before each speak", sp.cancelCount)
	}
}

func TestActiveOnlyAfterStart(t *testing.T) {
	sp := newFakeSpeaker()
	sp.autoStart = false
	c := NewCoordinator(sp)

	c.Play("m1", "...")
	if c.Active() != "" {
		t.Fatalf("active = %q before start notification, want none", c.Active())
	}

	sp.last().start()
	if !c.IsActive("m1") {
		t.Errorf("active = %q after start, want m1", c.Active())
	}
}

func TestPendingPlayTogglesOff(t *testing.T) {
	sp := newFakeSpeaker()
	sp.autoStart = false
	c := NewCoordinator(sp)

	c.Play("m1", "...")
	c.Play("m1", "...")

	// The first utterance's start arrives late and must be ignored.
	sp.at(0).start()
	if c.Active() != "" {
		t.Errorf("active = %q, want none", c.Active())
	}
}

func TestCompletionClearsState(t *testing.T) {
	sp := newFakeSpeaker()
	c := NewCoordinator(sp)

	c.Play("m1", "...")
	sp.last().end()

	if c.Active() != "" {
		t.Errorf("active = %q after completion, want none", c.Active())
	}
}

func TestErrorClearsStateAndReports(t *testing.T) {
	sp := newFakeSpeaker()
	var gotID string
	var gotErr error
	c := NewCoordinator(sp, WithOnError(func(id string, err error) {
		gotID, gotErr = id, err
	}))

	c.Play("m1", "...")
	boom := errors.New("audio device lost")
	sp.last().fail(boom)

	if c.Active() != "" {
		t.Errorf("active = %q after error, want none", c.Active())
	}
	if gotID != "m1" || !errors.Is(gotErr, boom) {
		t.Errorf("onError(%q, %v), want (m1, %v)", gotID, gotErr, boom)
	}
}

func TestSpeakFailureIsNotReturned(t *testing.T) {
	sp := newFakeSpeaker()
	sp.speakErr = errors.New("device busy")
	var reported error
	c := NewCoordinator(sp, WithOnError(func(_ string, err error) { reported = err }))

	if err := c.Play("m1", "..."); err != nil {
		t.Fatalf("Play returned %v, want nil", err)
	}
	if c.Active() != "" {
		t.Errorf("active = %q, want none", c.Active())
	}
	if reported == nil {
		t.Error("expected speak failure to reach the error hook")
	}
}

func TestStaleCallbacksIgnored(t *testing.T) {
	sp := newFakeSpeaker()
	c := NewCoordinator(sp)

	c.Play("a", "first")
	first := sp.last()
	c.Play("b", "second")

	// Late completion of the preempted utterance must not clear b.
	first.end()
	first.fail(errors.New("interrupted"))

	if !c.IsActive("b") {
		t.Errorf("active = %q, want b", c.Active())
	}
}

func TestStop(t *testing.T) {
	sp := newFakeSpeaker()
	c := NewCoordinator(sp)

	c.Stop()
	if sp.cancelCount != 1 {
		t.Errorf("cancel count = %d on idle stop, want 1", sp.cancelCount)
	}

	c.Play("m1", "...")
	c.Stop()
	if c.Active() != "" {
		t.Errorf("active = %q after Stop, want none", c.Active())
	}

	// A completion arriving after Stop is stale.
	sp.last().start()
	if c.Active() != "" {
		t.Errorf("active = %q after stale start, want none", c.Active())
	}
}

func TestSpeechUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		speaker Speaker
	}{
		{"nil speaker", nil},
		{"unavailable speaker", &fakeSpeaker{available: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinator(tt.speaker)
			if err := c.Play("m1", "..."); !errors.Is(err, ErrSpeechUnavailable) {
				t.Errorf("Play err = %v, want ErrSpeechUnavailable", err)
			}
			if c.Active() != "" {
				t.Errorf("active = %q, want none", c.Active())
			}
		})
	}
}

func TestUnavailableKeepsCurrentPlayback(t *testing.T) {
	sp := newFakeSpeaker()
	c := NewCoordinator(sp)
	c.Play("a", "first")

	sp.available = false
	if err := c.Play("b", "second"); !errors.Is(err, ErrSpeechUnavailable) {
		t.Fatalf("Play err = %v, want ErrSpeechUnavailable", err)
	}
	if !c.IsActive("a") {
		t.Errorf("active = %q, want a unchanged", c.Active())
	}
}

func TestOnChangeSequence(t *testing.T) {
	sp := newFakeSpeaker()
	var seen []string
	c := NewCoordinator(sp, WithOnChange(func(active string) {
		seen = append(seen, active)
	}))

	c.Play("a", "1")
	c.Play("b", "2")
	c.Play("b", "2")

	want := []string{"a", "", "b", ""}
	if len(seen) != len(want) {
		t.Fatalf("changes = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("change[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestEmptyID(t *testing.T) {
	c := NewCoordinator(newFakeSpeaker())
	if err := c.Play("", "text"); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestConcurrentPlay(t *testing.T) {
	sp := newFakeSpeaker()
	c := NewCoordinator(sp)

	ids := []string{"a", "b", "c", "d"}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Play(ids[i%len(ids)], "text")
		}(i)
	}
	wg.Wait()

	active := c.Active()
	if active != "" {
		found := false
		for _, id := range ids {
			if id == active {
				found = true
			}
		}
		if !found {
			t.Errorf("active = %q, not one of %v", active, ids)
		}
	}
}
