package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/presentation/tui"
	"github.com/aretw0/weft/pkg/adapters/ticker"
	"github.com/aretw0/weft/pkg/effects"
	"github.com/aretw0/weft/pkg/observability"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/aretw0/weft/pkg/runner"
)

// clockAction is either a tick from the interval source or a chime
// produced by the milestone effect.
type clockAction struct {
	kind string // "tick" or "chime"
	at   time.Time
}

type clockModel struct {
	Ticks  int
	Chimes int
	Last   time.Time
}

// clockUpdate demonstrates the effectful loop: every milestone-th tick
// returns an effect whose completion re-enters as a chime action.
func clockUpdate(milestone int) weft.Update[clockModel, clockAction] {
	return func(a clockAction, m clockModel) (clockModel, effects.Batch[clockAction]) {
		switch a.kind {
		case "tick":
			m.Ticks++
			m.Last = a.at
			if m.Ticks%milestone == 0 {
				chime := effects.Of(func(context.Context) []clockAction {
					return []clockAction{{kind: "chime", at: time.Now()}}
				})
				return m, chime
			}
		case "chime":
			m.Chimes++
		}
		return m, effects.None[clockAction]()
	}
}

func clockView(_ ports.Sender[clockAction], m clockModel) string {
	return fmt.Sprintf("# Clock\n\nTicks: **%d** | Chimes: **%d** | Last tick: %s\n",
		m.Ticks, m.Chimes, m.Last.Format("15:04:05"))
}

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Run the effectful clock demo",
	Long:  `Starts a loop fed by an interval source; every Nth tick dispatches an effect whose completion folds back in as a chime. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := loadDemoConfig(configPath)
		if err != nil {
			return err
		}

		tui.PrintBanner()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		ticks := ticker.New("interval", cfg.TickInterval, func(now time.Time) clockAction {
			return clockAction{kind: "tick", at: now}
		})

		app := weft.Start(ctx, weft.Config[clockModel, clockAction, string]{
			Model:  clockModel{},
			Update: clockUpdate(cfg.Milestone),
			View:   clockView,
			Inputs: []ports.Source[clockAction]{ticks},
		},
			weft.WithLogger(logger),
			weft.WithLifecycleHooks(observability.LogHooks(logger)),
		)

		render := tui.NewRenderer()
		r := runner.New(app)
		r.Logger = logger
		r.Output = runner.OutputFunc[string](func(_ context.Context, out string) error {
			frame, err := render(out)
			if err != nil {
				return err
			}
			fmt.Print(frame)
			return nil
		})

		return r.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(clockCmd)
}
