package nn

import (
	"fmt"
	"math"
	"strings"
)

// ErrorFunction selects how the single network output is scored against a target.
type ErrorFunction int

// Supported error functions.
const (
	// MeanSquaredError is E = ½(output - target)², dE/doutput = output - target.
	MeanSquaredError ErrorFunction = iota
)

// String returns the table name of the error function.
func (e ErrorFunction) String() string {
	if e == MeanSquaredError {
		return "meanSquaredError"
	}
	return fmt.Sprintf("ErrorFunction(%d)", int(e))
}

// ParseErrorFunction maps a table name to an ErrorFunction. "mse" is accepted
// as a short form of "meanSquaredError".
func ParseErrorFunction(name string) (ErrorFunction, error) {
	switch strings.ToLower(name) {
	case "meansquarederror", "mse":
		return MeanSquaredError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownErrorFunction, name)
}

// Error returns the error of output against target. Unknown error functions
// return NaN.
func (e ErrorFunction) Error(output, target float64) float64 {
	switch e {
	case MeanSquaredError:
		d := output - target
		return 0.5 * d * d
	default:
		return math.NaN()
	}
}

// Derivative returns dError/doutput.
func (e ErrorFunction) Derivative(output, target float64) float64 {
	switch e {
	case MeanSquaredError:
		return output - target
	default:
		return math.NaN()
	}
}
