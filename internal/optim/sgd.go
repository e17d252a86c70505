package optim

import (
	"github.com/born-ml/mlp/internal/nn"
)

// SGD is plain gradient descent on averaged accumulated derivatives, with
// the link's regularization applied as weight decay.
//
// Update rule for a node with accumulated derivatives:
//
//	bias -= lr * acc / n
//
// and for a live link:
//
//	weight -= lr * acc / n
//	weight -= lr * rr * regularization'(weight)
//
// With L1 regularization a weight whose decay step crosses zero is clamped
// to 0 and the link is marked dead. Dead links are never updated again.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{
//	    LearningRate:       0.03,
//	    RegularizationRate: 0.001,
//	})
//	pruned := sgd.Step(net)
type SGD struct {
	lr float64
	rr float64
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LearningRate       float64 // Step size (default: 0.03)
	RegularizationRate float64 // Weight decay factor (default: 0, disabled)
}

// DefaultSGDConfig returns the default SGD configuration.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{LearningRate: 0.03}
}

// NewSGD creates an SGD optimizer. A zero LearningRate selects the default.
func NewSGD(config SGDConfig) *SGD {
	if config.LearningRate == 0 {
		config.LearningRate = DefaultSGDConfig().LearningRate
	}
	return &SGD{
		lr: config.LearningRate,
		rr: config.RegularizationRate,
	}
}

// LearningRate returns the learning rate.
func (s *SGD) LearningRate() float64 {
	return s.lr
}

// Step updates every bias and live link weight that has accumulated
// derivatives, then resets those accumulators. It returns the number of
// links pruned during this step.
func (s *SGD) Step(net *nn.Network) int {
	net.ForEachNode(true, func(node *nn.Node) {
		if node.NumAccumulatedDerivatives == 0 {
			return
		}
		node.Bias -= s.lr * node.MeanInputDerivative()
		node.ResetAccumulators()
	})

	pruned := 0
	net.ForEachLink(func(link *nn.Link) {
		if link.IsDead {
			return
		}
		if link.NumAccumulatedDerivatives > 0 {
			link.Weight -= s.lr * link.MeanErrorDerivative()
			link.ResetAccumulators()
		}
		if s.updateRegularization(link) {
			pruned++
		}
	})
	return pruned
}

// updateRegularization applies weight decay to link and reports whether it
// pruned the link.
func (s *SGD) updateRegularization(link *nn.Link) bool {
	if s.rr == 0 || link.Regularization == nn.RegNone {
		return false
	}
	before := link.Weight
	link.Weight -= s.lr * s.rr * link.Regularization.Derivative(before)
	if link.Regularization == nn.L1 && before*link.Weight < 0 {
		link.Weight = 0
		link.IsDead = true
		return true
	}
	return false
}
