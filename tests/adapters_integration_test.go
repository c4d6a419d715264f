package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/testutils"
	"github.com/aretw0/weft/pkg/adapters/execpool"
	"github.com/aretw0/weft/pkg/adapters/jsonsource"
	"github.com/aretw0/weft/pkg/adapters/metrics"
	"github.com/aretw0/weft/pkg/effects"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/aretw0/weft/pkg/runner"
)

func TestJSONSourceFeedsLoop(t *testing.T) {
	ctx := testContext(t)

	type op struct {
		Op string `json:"op"`
	}

	feed := strings.NewReader(`{"op":"inc"}
{"op":"inc"}
{"op":"dec"}
`)
	src := jsonsource.New[op]("feed", feed)

	app := weft.StartSimple(ctx, weft.SimpleConfig[int, op, int]{
		Model: 0,
		Update: func(a op, m int) int {
			if a.Op == "inc" {
				return m + 1
			}
			return m - 1
		},
		View:   func(_ ports.Sender[op], m int) int { return m },
		Inputs: []ports.Source[op]{src},
	})

	testutils.WaitFor(t, app.Model(ctx), 1)
}

func TestRunnerWithPoolResolvesEffects(t *testing.T) {
	ctx := testContext(t)

	type msg struct{ Kind string }

	app := weft.Start(ctx, weft.Config[[]string, msg, int]{
		Model: nil,
		Update: func(a msg, m []string) ([]string, effects.Batch[msg]) {
			switch a.Kind {
			case "ping":
				eff := effects.Of(func(context.Context) []msg {
					return []msg{{Kind: "pong"}}
				})
				return append(m, "ping"), eff
			case "pong":
				return append(m, "pong"), effects.None[msg]()
			}
			return m, effects.None[msg]()
		},
		View: func(_ ports.Sender[msg], m []string) int { return len(m) },
	})

	pool := execpool.New(4)
	go pool.Run(ctx, 2)

	r := runner.New(app)
	r.Executor = pool

	go func() { _ = r.Run(ctx) }()

	require.NoError(t, app.Address().Send(ctx, msg{Kind: "ping"}))

	testutils.Eventually(t, func() bool {
		m := app.CurrentModel()
		return len(m) == 2 && m[1] == "pong"
	}, "pong never folded back into the model")
}

func TestMetricsObserveWholeRun(t *testing.T) {
	ctx := testContext(t)

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)

	app := weft.Start(ctx, counterConfig(),
		weft.WithLifecycleHooks(collector.Hooks()))

	require.NoError(t, app.Address().Send(ctx, increment, increment))
	testutils.WaitFor(t, app.Model(ctx), 2)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	assert.True(t, found["weft_steps_total"], "steps counter missing")
	assert.True(t, found["weft_actions_total"], "actions counter missing")
}
