package audio

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// ExecSpeaker speaks by running a local text-to-speech command such as
// espeak-ng or say. Arguments may contain {text} and {lang} placeholders;
// when no argument contains {text}, the text is written to stdin.
type ExecSpeaker struct {
	command []string
	lang    string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// DefaultCommand returns the platform's usual TTS command.
func DefaultCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"say", "{text}"}
	case "windows":
		return []string{"powershell", "-NoProfile", "-Command",
			"Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak([Console]::In.ReadToEnd())"}
	default:
		return []string{"espeak-ng", "-v", "{lang}"}
	}
}

// NewExecSpeaker creates an ExecSpeaker. An empty command selects DefaultCommand.
func NewExecSpeaker(command []string, lang string) *ExecSpeaker {
	if len(command) == 0 {
		command = DefaultCommand()
	}
	if lang == "" {
		lang = "ar"
	}
	return &ExecSpeaker{command: command, lang: lang}
}

// Available reports whether the command binary can be found.
func (s *ExecSpeaker) Available() bool {
	if len(s.command) == 0 {
		return false
	}
	_, err := exec.LookPath(s.command[0])
	return err == nil
}

// Speak starts the command and returns once the process is running.
func (s *ExecSpeaker) Speak(u Utterance, cb Callbacks) error {
	args, useStdin := s.expand(u.Text)

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, s.command[0], args...)
	if useStdin {
		cmd.Stdin = strings.NewReader(u.Text)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("starting %s: %w", s.command[0], err)
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	cb.start()

	go func() {
		err := cmd.Wait()
		canceled := ctx.Err() != nil
		cancel()
		if err != nil {
			if canceled {
				err = fmt.Errorf("%s canceled: %w", s.command[0], context.Canceled)
			}
			cb.fail(err)
			return
		}
		cb.end()
	}()
	return nil
}

// Cancel kills the running command, if any.
func (s *ExecSpeaker) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *ExecSpeaker) expand(text string) ([]string, bool) {
	useStdin := true
	args := make([]string, 0, len(s.command)-1)
	for _, a := range s.command[1:] {
		if strings.Contains(a, "{text}") {
			useStdin = false
		}
		a = strings.ReplaceAll(a, "{lang}", s.lang)
		a = strings.ReplaceAll(a, "{text}", text)
		args = append(args, a)
	}
	return args, useStdin
}
