package nn

import (
	"fmt"
)

// DefaultBias is the starting bias of every node.
const DefaultBias = 0.1

// Config describes a network: its shape, function choices and how links
// get their first weights.
type Config struct {
	// Shape lists the node count of every layer, input first. The last
	// entry must be 1.
	Shape []int

	Activation       Activation     // Hidden layers
	OutputActivation Activation     // Output node
	Regularization   Regularization // Stored on every link

	// Bias is the starting bias of every node. Zero selects DefaultBias;
	// use ZeroBias for an explicit zero.
	Bias     float64
	ZeroBias bool

	// Init resolves link weights. Nil uses U[-0.5, 0.5) on the global source.
	Init Initializer

	// LegacyDerivative makes backpropagation call Activation.Derivative with
	// the total input for every activation. That is only exact for relu and
	// tanh; sigmoid expects its output. Off by default.
	LegacyDerivative bool
}

// DefaultConfig returns a tanh network of the given shape with no
// regularization.
func DefaultConfig(shape ...int) Config {
	return Config{
		Shape:            shape,
		Activation:       Tanh,
		OutputActivation: Tanh,
		Regularization:   RegNone,
		Bias:             DefaultBias,
	}
}

// Validate checks the shape and the function choices.
func (c Config) Validate() error {
	if len(c.Shape) < 2 {
		return ErrEmptyShape
	}
	for i, size := range c.Shape {
		if size <= 0 {
			return &ShapeError{Layer: i, Size: size, Err: ErrInvalidLayerSize}
		}
	}
	if last := len(c.Shape) - 1; c.Shape[last] != 1 {
		return &ShapeError{Layer: last, Size: c.Shape[last], Err: ErrOutputLayerSize}
	}
	for _, a := range []Activation{c.Activation, c.OutputActivation} {
		if a < Tanh || a > ReLU {
			return fmt.Errorf("%w: %v", ErrUnknownActivation, a)
		}
	}
	if c.Regularization < RegNone || c.Regularization > L2 {
		return fmt.Errorf("%w: %v", ErrUnknownRegularization, c.Regularization)
	}
	return nil
}

func (c Config) bias() float64 {
	if c.ZeroBias {
		return 0
	}
	if c.Bias == 0 {
		return DefaultBias
	}
	return c.Bias
}
