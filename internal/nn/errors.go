package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyShape            = errors.New("network shape needs at least an input and an output layer")
	ErrInvalidLayerSize      = errors.New("layer size must be positive")
	ErrOutputLayerSize       = errors.New("output layer must contain exactly one node")
	ErrInputSize             = errors.New("input length does not match input layer size")
	ErrUnknownActivation     = errors.New("unknown activation function")
	ErrUnknownErrorFunction  = errors.New("unknown error function")
	ErrUnknownRegularization = errors.New("unknown regularization function")
)

// ShapeError reports which layer of a network shape is invalid.
type ShapeError struct {
	Layer int   // Index of the offending layer
	Size  int   // Requested size of that layer
	Err   error // One of ErrInvalidLayerSize, ErrOutputLayerSize
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("layer %d (size %d): %v", e.Layer, e.Size, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

// InputError reports an input vector whose length differs from layer 0.
type InputError struct {
	Got  int
	Want int
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%v: got %d values, want %d", ErrInputSize, e.Got, e.Want)
}

// Unwrap returns ErrInputSize.
func (e *InputError) Unwrap() error {
	return ErrInputSize
}
