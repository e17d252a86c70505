// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/mlp/internal/optim"
)

// Optimizer updates a network from its accumulated derivatives.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD represents the gradient descent update with weight decay.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// DefaultSGDConfig returns the default SGD configuration.
func DefaultSGDConfig() SGDConfig {
	return optim.DefaultSGDConfig()
}

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{
//	    LearningRate:       0.03,
//	    RegularizationRate: 0.001,
//	})
//	pruned := sgd.Step(net)
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
