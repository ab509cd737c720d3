// cmd/streamscope/main_test.go
package main

import (
	"context"
	"testing"

	"github.com/dalemusser/streamscope/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

// Pins the entrypoint's call into waffle: Run takes a context and the
// typed hooks and returns an error. A framework upgrade that changes
// the shape fails here before it fails in main.
func TestRunCallShape(t *testing.T) {
	var run func(context.Context, app.Hooks[bootstrap.AppConfig, bootstrap.Deps]) error
	run = app.Run[bootstrap.AppConfig, bootstrap.Deps]
	if run == nil {
		t.Fatal("app.Run is not assignable to the expected signature")
	}
}
