// Package labs defines the contract every lesson backend implements and
// the registry tying catalog slugs to lesson constructors.
//
// A lesson app owns its in-memory state. Constructing a new app yields
// fresh initial state, which is how tests isolate themselves: build a new
// app per test instead of resetting globals.
package labs

import "github.com/go-chi/chi/v5"

// App is one mounted lesson backend.
type App interface {
	// Routes mounts the lesson's handlers on r. The router is already
	// scoped to the lesson's path prefix.
	Routes(r chi.Router)
}

// Builder constructs a lesson app with fresh initial state.
type Builder func() App
