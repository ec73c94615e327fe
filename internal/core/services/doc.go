// Package services implements the driving port interfaces.
// Services contain the maintenance logic and orchestrate
// calls to driven ports (file store, codec, process manager, clock).
//
// Services are pure Go with no external dependencies.
package services
