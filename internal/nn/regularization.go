package nn

import (
	"fmt"
	"math"
	"strings"
)

// Regularization selects the weight penalty attached to a link.
//
// The core only stores it; the penalty and its derivative are evaluated by
// whoever applies weight updates (see internal/optim).
type Regularization int

// Supported regularizations. RegNone is the zero value.
const (
	RegNone Regularization = iota
	L1
	L2
)

// String returns the table name of the regularization.
func (r Regularization) String() string {
	switch r {
	case RegNone:
		return "none"
	case L1:
		return "l1"
	case L2:
		return "l2"
	default:
		return fmt.Sprintf("Regularization(%d)", int(r))
	}
}

// ParseRegularization maps a table name to a Regularization. The empty
// string selects RegNone.
func ParseRegularization(name string) (Regularization, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return RegNone, nil
	case "l1":
		return L1, nil
	case "l2":
		return L2, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegularization, name)
}

// Output returns the penalty for weight w.
//
//	l1(w) = |w|
//	l2(w) = ½w²
func (r Regularization) Output(w float64) float64 {
	switch r {
	case L1:
		return math.Abs(w)
	case L2:
		return 0.5 * w * w
	default:
		return 0
	}
}

// Derivative returns d penalty / dw. L1 uses sign(w) with sign(0) = 0.
func (r Regularization) Derivative(w float64) float64 {
	switch r {
	case L1:
		switch {
		case w < 0:
			return -1
		case w > 0:
			return 1
		}
		return 0
	case L2:
		return w
	default:
		return 0
	}
}
