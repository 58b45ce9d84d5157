package logging

import "errors"

var (
	// ErrSinkPanicked Sink 在写入时发生 panic
	ErrSinkPanicked = errors.New("logging: sink panicked")
)
