package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/floaty/internal/cli"
	"github.com/bnema/floaty/internal/cli/styles"
	"github.com/bnema/floaty/internal/infrastructure/config"
	"github.com/bnema/floaty/internal/logging"
	"github.com/bnema/floaty/internal/scenario"
	"github.com/bnema/floaty/internal/ui/mainloop"
)

var (
	simulateRealtime bool
	simulateWatch    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Replay a scenario against a headless host environment",
	Long: `Replay a YAML scenario and report the overlay state after every step.

By default time is virtual: "advance" steps fire timers instantly, so the
run is deterministic. With --realtime the scenario runs on a UI loop with
wall-clock timers, and --watch applies host filter and animation changes
from the config file while it runs.

Examples:
  floaty simulate scenarios/dismiss-reshow.yaml
  floaty simulate --realtime --watch scenarios/host-follow.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&simulateRealtime, "realtime", false, "run on a UI loop with wall-clock timers")
	simulateCmd.Flags().BoolVar(&simulateWatch, "watch", false, "apply config file changes while running (requires --realtime)")
}

func runSimulate(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if simulateWatch && !simulateRealtime {
		return fmt.Errorf("--watch requires --realtime")
	}

	sc, err := scenario.LoadFile(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "simulate"), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var report scenario.Report
	if simulateRealtime {
		report, err = simulateRealtimeRun(ctx, app, sc)
	} else {
		report, err = simulateManualRun(ctx, app, sc)
	}

	fmt.Println(styles.NewReportRenderer(app.Theme).RenderReport(sc, report))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func simulateManualRun(ctx context.Context, app *cli.App, sc *scenario.Scenario) (scenario.Report, error) {
	runner, sys, err := scenario.NewManualRunner(ctx, app.Settings(), sc)
	if err != nil {
		return scenario.Report{Scenario: sc.Name}, err
	}
	defer sys.Close()
	return runner.RunAll(ctx)
}

func simulateRealtimeRun(ctx context.Context, app *cli.App, sc *scenario.Scenario) (scenario.Report, error) {
	log := logging.FromContext(ctx)
	report := scenario.Report{Scenario: sc.Name}

	loop := mainloop.NewLoop()
	sys, err := scenario.NewSystem(ctx, sc.Settings.Apply(app.Settings()), mainloop.NewTimerScheduler(loop.Post), loop.Post)
	if err != nil {
		return report, err
	}
	defer sys.Close()

	if simulateWatch {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			settings := sc.Settings.Apply(cli.SettingsFromConfig(cfg))
			loop.Post(func() { sys.Reconfigure(settings) })
			log.Info().Strs("deny", settings.Deny).Bool("animation", settings.AnimationEnabled).Msg("config reloaded")
		})
		if err := app.Manager.Watch(); err != nil {
			return report, fmt.Errorf("watch config: %w", err)
		}
	}

	loopCtx, stopLoop := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(loopCtx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error {
		defer stopLoop()
		var runErr error
		report, runErr = scenario.NewRunner(sys, sc, scenario.NewLoopDriver(loop)).RunAll(gctx)
		return runErr
	})

	return report, g.Wait()
}
