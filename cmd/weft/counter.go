package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/presentation/tui"
	"github.com/aretw0/weft/pkg/adapters/jsonsource"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/aretw0/weft/pkg/runner"
)

// counterOp is the counter demo's action. In JSON mode lines look like
// {"op":"inc"}; in interactive mode "+", "-", and "q" map onto it.
type counterOp struct {
	Op string `json:"op"`
}

type counterModel struct {
	Count int
	Quit  bool
}

func counterUpdate(a counterOp, m counterModel) counterModel {
	switch a.Op {
	case "inc":
		m.Count++
	case "dec":
		m.Count--
	case "quit":
		m.Quit = true
	}
	return m
}

func counterView(_ ports.Sender[counterOp], m counterModel) string {
	return fmt.Sprintf("# Counter\n\nCurrent value: **%d**\n\nType `+`, `-`, or `q`.\n", m.Count)
}

// stdinOps maps interactive keystroke lines onto counter actions.
func stdinOps(r io.Reader) ports.Source[counterOp] {
	return ports.SourceFunc("stdin", func(ctx context.Context, send ports.Sender[counterOp]) error {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var op counterOp
			switch strings.TrimSpace(scanner.Text()) {
			case "+":
				op = counterOp{Op: "inc"}
			case "-":
				op = counterOp{Op: "dec"}
			case "q", "quit":
				op = counterOp{Op: "quit"}
			default:
				continue
			}
			if err := send.Send(ctx, op); err != nil {
				return err
			}
		}
		// EOF counts as quit so piped input terminates the demo.
		return send.Send(ctx, counterOp{Op: "quit"})
	})
}

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Run the interactive counter demo",
	Long:  `Starts the counter loop: actions from stdin fold into a single integer model, rendered as markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		configPath, _ := cmd.Flags().GetString("config")
		jsonMode, _ := cmd.Flags().GetBool("json")

		cfg, err := loadDemoConfig(configPath)
		if err != nil {
			return err
		}

		var input ports.Source[counterOp]
		if jsonMode {
			input = jsonsource.New("stdin-json", os.Stdin, jsonsource.WithLogger[counterOp](logger))
		} else {
			tui.PrintBanner()
			input = stdinOps(os.Stdin)
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		app := weft.StartSimple(ctx, weft.SimpleConfig[counterModel, counterOp, string]{
			Model:  counterModel{Count: cfg.Count},
			Update: counterUpdate,
			View:   counterView,
			Inputs: []ports.Source[counterOp]{input},
		}, weft.WithLogger(logger))

		render := tui.NewRenderer()
		r := runner.New(app)
		r.Logger = logger
		r.Output = runner.OutputFunc[string](func(_ context.Context, out string) error {
			if app.CurrentModel().Quit {
				cancel()
				return nil
			}
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
	counterCmd.Flags().Bool("json", false, `Read JSON action lines (e.g. {"op":"inc"}) instead of keystrokes`)
	rootCmd.AddCommand(counterCmd)
}
