// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim applies accumulated derivatives to a network.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent on averaged accumulated derivatives with
//     L1/L2 weight decay and L1 link pruning
//   - Optimizer interface for custom update rules
//
// It does not schedule anything. The caller decides what a batch is, how many
// steps to take and whether to change the learning rate.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/nn"
//	    "github.com/born-ml/mlp/optim"
//	)
//
//	func main() {
//	    net := nn.MustNew(nn.DefaultConfig(2, 4, 1))
//	    sgd := optim.NewSGD(optim.SGDConfig{LearningRate: 0.03})
//
//	    for _, ex := range batch {
//	        net.ForwardPropagation(ex.Inputs)
//	        net.BackPropagation(ex.Target, nn.MeanSquaredError)
//	    }
//	    sgd.Step(net)
//	}
package optim
