/*
Package weft wires applications that follow the unidirectional-data-flow
pattern: a single immutable model, a pure update function that folds
incoming actions into a new model plus a batch of effect descriptions,
and a pure view function that projects the model into an output value.

Weft connects a stream of actions to the update function, threads the
model through time, routes declared effects to an executor, and exposes
the rendered output as a continuously updating value. It does not care
what an action means or how output is displayed; it is the glue state
machine between action arrival and model/output production.

# Concept

Actions reach the loop from three places: the view (through the App's
address), external input sources, and completed effects. Coincident
arrivals are combined into one ordered batch per tick, folded through
update in arrival order while effects accumulate left to right, and the
resulting model is re-rendered into the output signal. Effects never run
inside the loop: each step's accumulated batch becomes exactly one task
on the Tasks stream, and the host decides where and when tasks execute.

# Usage

	type action int

	const (
		increment action = iota
		decrement
	)

	app := weft.StartSimple(ctx, weft.SimpleConfig[int, action, string]{
		Model: 0,
		Update: func(a action, m int) int {
			if a == increment {
				return m + 1
			}
			return m - 1
		},
		View: func(addr ports.Sender[action], m int) string {
			return fmt.Sprintf("count: %d", m)
		},
	})

	app.Address().Send(ctx, increment, increment, decrement)
	for out := range app.Output(ctx) {
		fmt.Println(out) // "count: 1" once the batch lands
	}

Applications with side effects use Start and return an effects.Batch
from update; the host feeds app.Tasks() into an executor (pkg/runner
does this wiring, with pkg/adapters/execpool as the default pool).
*/
package weft
