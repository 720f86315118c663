package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// shareTargets are the share destinations offered by the wizard.
var shareTargets = []struct {
	Label    string
	Template string
}{
	{Label: "WhatsApp", Template: DefaultShareURL},
	{Label: "Telegram", Template: "https://t.me/share/url?url=&text={text}"},
	{Label: "X (Twitter)", Template: "https://twitter.com/intent/tweet?text={text}"},
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to azkar! Let's configure your setup.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Share target.
	labels := make([]string, len(shareTargets))
	for i, t := range shareTargets {
		labels[i] = t.Label
	}
	sharePrompt := promptui.Select{
		Label: "Share items via",
		Items: labels,
	}
	shareIdx, _, err := sharePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("share selection: %w", err)
	}
	cfg.Share.URLTemplate = shareTargets[shareIdx].Template

	// 2. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for azkar serve",
		Default: strconv.Itoa(DefaultPort),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Static site output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.Site.OutputDir,
	}
	if cfg.Site.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Custom content.
	contentPrompt := promptui.Prompt{
		Label:   "Content files (comma-separated globs, leave blank for bundled content)",
		Default: "",
	}
	contentStr, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content paths: %w", err)
	}
	cfg.Content.Paths = splitAndTrim(contentStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
