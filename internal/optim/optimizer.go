// Package optim applies the derivatives accumulated by backpropagation to a
// network's weights and biases.
//
// It provides the update primitive only. Choosing batches, learning rate
// schedules and when to stop is left to the caller.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LearningRate: 0.03})
//
//	for _, ex := range batch {
//	    net.ForwardPropagation(ex.Inputs)
//	    net.BackPropagation(ex.Target, nn.MeanSquaredError)
//	}
//	sgd.Step(net)
package optim

import (
	"github.com/born-ml/mlp/internal/nn"
)

// Optimizer updates a network from its accumulated derivatives.
type Optimizer interface {
	// Step applies one update and resets the accumulators it consumed.
	// It returns the number of links pruned by the update.
	Step(net *nn.Network) int

	// LearningRate returns the current learning rate.
	LearningRate() float64
}
