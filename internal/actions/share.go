// Package actions implements the per-item copy and share actions.
package actions

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// ErrInvalidTemplate is returned when a share template has no {text} slot.
var ErrInvalidTemplate = errors.New("share template must contain {text}")

// Sharer builds outbound share links for item text.
type Sharer struct {
	template    string
	attribution string
}

// NewSharer validates template and returns a Sharer that appends
// attribution to every shared text.
func NewSharer(template, attribution string) (*Sharer, error) {
	if !strings.Contains(template, "{text}") {
		return nil, fmt.Errorf("%q: %w", template, ErrInvalidTemplate)
	}
	if _, err := url.Parse(strings.ReplaceAll(template, "{text}", "x")); err != nil {
		return nil, fmt.Errorf("parsing share template: %w", err)
	}
	return &Sharer{template: template, attribution: attribution}, nil
}

// Message is the text that gets shared: the item text followed by the
// attribution suffix.
func (s *Sharer) Message(text string) string {
	return text + s.attribution
}

// Link returns the share URL for text.
func (s *Sharer) Link(text string) string {
	return strings.ReplaceAll(s.template, "{text}", EscapeComponent(s.Message(text)))
}

// componentUnescaper restores the characters encodeURIComponent leaves alone
// but url.QueryEscape encodes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent percent-encodes s the way encodeURIComponent does:
// spaces become %20 and the marks !'()*~ stay literal.
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Open launches the platform browser on link.
func Open(link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	case "darwin":
		cmd = exec.Command("open", link)
	default:
		cmd = exec.Command("xdg-open", link)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", link, err)
	}
	go cmd.Wait()
	return nil
}
