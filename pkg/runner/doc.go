/*
Package runner is the default embedding environment for a weft App.

It performs the wiring every host otherwise repeats: feeding the App's
task stream into an executor, watching the output signal and handing
each rendered value to an OutputHandler, and translating OS signals
into context cancellation.

# Usage

	r := runner.New(app)
	r.Output = runner.OutputFunc(printFrame)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
