package game

import "errors"

var (
	// ErrQuit is returned by Machine.Update when the application must stop.
	ErrQuit = errors.New("quit requested")

	// ErrNoPlacement means every board cell is occupied and food has nowhere
	// to go.
	ErrNoPlacement = errors.New("no free cell for food")

	// ErrInvalidConfig wraps every configuration problem found at startup.
	ErrInvalidConfig = errors.New("invalid config")
)
