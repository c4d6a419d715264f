package tests

import (
	"context"
	"testing"
)

// testContext returns a context cancelled at test cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
