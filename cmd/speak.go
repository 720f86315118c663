package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/azkar/internal/audio"
)

var speakCmd = &cobra.Command{
	Use:   "speak <item-id>",
	Short: "Read an item aloud with the local text-to-speech command",
	Long:  `Reads an item aloud using speech.command from the config (espeak-ng, say, or PowerShell by default). Press Ctrl+C to stop.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		ref, err := lookupItem(store, args[0])
		if err != nil {
			return err
		}

		done := make(chan error, 1)
		var once sync.Once
		finish := func(err error) { once.Do(func() { done <- err }) }

		speaker := audio.NewExecSpeaker(appConfig.Speech.Command, appConfig.Speech.Lang)
		coord := audio.NewCoordinator(speaker,
			audio.WithOnChange(func(active string) {
				if active != "" {
					logger.Debug("speaking", zap.String("item", active))
					fmt.Fprintf(os.Stderr, "Speaking %s (Ctrl+C to stop)\n", active)
					return
				}
				finish(nil)
			}),
			audio.WithOnError(func(id string, err error) {
				logger.Warn("playback failed", zap.String("item", id), zap.Error(err))
				finish(err)
			}),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := coord.Play(ref.ID, ref.Text); err != nil {
			if errors.Is(err, audio.ErrSpeechUnavailable) {
				return fmt.Errorf("%w: install espeak-ng or set speech.command in %s", err, cfgFile)
			}
			return err
		}

		select {
		case err := <-done:
			if err != nil {
				return fmt.Errorf("speaking %s: %w", ref.ID, err)
			}
		case <-ctx.Done():
			coord.Stop()
			fmt.Fprintln(os.Stderr, "Stopped.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(speakCmd)
}
