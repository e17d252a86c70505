package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation selects the function a node applies to its total input.
//
// The set is closed: every value maps to a pair of pure scalar functions
// (Output and Derivative). The zero value is Tanh, matching DefaultConfig.
type Activation int

// Supported activations.
const (
	Tanh Activation = iota
	Sigmoid
	ReLU
)

// String returns the table name of the activation.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sigmoid"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation maps a table name (case-insensitive) to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "tanh":
		return Tanh, nil
	case "sigmoid":
		return Sigmoid, nil
	case "relu":
		return ReLU, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
}

// Output applies the activation to x.
//
//	sigmoid(x) = 1 / (1 + exp(-x))
//	relu(x)    = max(0, x)
//	tanh(x)    = tanh(x)
//
// Unknown activations return NaN.
func (a Activation) Output(x float64) float64 {
	switch a {
	case Tanh:
		return math.Tanh(x)
	case Sigmoid:
		return 1 / (1 + math.Exp(-x))
	case ReLU:
		return math.Max(0, x)
	default:
		return math.NaN()
	}
}

// Derivative is the raw table derivative.
//
// The argument convention differs per activation:
//   - sigmoid expects the node output y and returns y * (1 - y)
//   - relu expects the total input and returns 0 for x <= 0, else 1
//   - tanh expects the total input and returns 1 - tanh(x)²
//
// Use Gradient when both values are at hand.
func (a Activation) Derivative(x float64) float64 {
	switch a {
	case Sigmoid:
		return x * (1 - x)
	case ReLU:
		if x <= 0 {
			return 0
		}
		return 1
	case Tanh:
		t := math.Tanh(x)
		return 1 - t*t
	default:
		return math.NaN()
	}
}

// Gradient returns d output / d totalInput, passing each activation the
// argument its Derivative is defined on.
func (a Activation) Gradient(totalInput, output float64) float64 {
	switch a {
	case Sigmoid:
		return a.Derivative(output)
	case Tanh:
		return 1 - output*output
	case ReLU:
		return a.Derivative(totalInput)
	default:
		return math.NaN()
	}
}
