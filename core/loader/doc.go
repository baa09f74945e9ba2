// Package loader mounts optional features on the status server.
//
// Each feature implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order and loads the enabled ones,
// stopping at the first failure.
package loader
