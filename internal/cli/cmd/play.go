package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/floaty/internal/cli/model"
	"github.com/bnema/floaty/internal/logging"
	"github.com/bnema/floaty/internal/scenario"
)

var playInterval time.Duration

var playCmd = &cobra.Command{
	Use:   "play <scenario.yaml>",
	Short: "Step through a scenario interactively",
	Long: `Open an interactive player for a YAML scenario.

Each key press runs one step on a virtual clock and shows the overlay state,
the host it is attached to and the children of every host window.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().DurationVar(&playInterval, "interval", model.DefaultAutoInterval, "delay between steps while auto-playing")
}

func runPlay(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	sc, err := scenario.LoadFile(args[0])
	if err != nil {
		return err
	}

	settings := app.Settings()
	factory := func(ctx context.Context) (*scenario.Runner, func(), error) {
		runner, sys, err := scenario.NewManualRunner(ctx, settings, sc)
		if err != nil {
			return nil, nil, err
		}
		return runner, sys.Close, nil
	}

	// Log lines would tear the alternate screen.
	ctx := logging.WithContext(app.Ctx(), logging.FromContext(app.Ctx()).Level(zerolog.Disabled))

	m, err := model.NewPlayModel(ctx, app.Theme, factory, playInterval)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run player: %w", err)
	}
	if pm, ok := final.(model.PlayModel); ok && pm.Failed() > 0 {
		return fmt.Errorf("%w: %d step(s)", scenario.ErrExpectationFailed, pm.Failed())
	}
	return nil
}
