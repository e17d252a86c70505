// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a manual multilayer perceptron.
//
// # Overview
//
// A Network is a graph of Nodes joined by weighted Links. Every pair of
// adjacent layers is fully connected; layer 0 takes the inputs and the last
// layer holds the single output node. Nothing is vectorized: each node sums
// its inputs, each link carries its own derivatives, and all of it can be
// read and written between passes.
//
// This package contains:
//   - Graph: Network, Node, Link, Config
//   - Activations: Tanh, Sigmoid, ReLU
//   - Error functions: MeanSquaredError
//   - Regularization: RegNone, L1, L2
//   - Initialization: UniformInit, ConstantInit, InitFunc
//   - Inspection: WeightMatrix, GradientMatrix, GradientNorm, Snapshot
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/nn"
//
//	func main() {
//	    cfg := nn.DefaultConfig(2, 3, 1)
//	    cfg.Activation = nn.Sigmoid
//	    cfg.OutputActivation = nn.Sigmoid
//	    cfg.Init = nn.NewUniformInit(1)
//	    net := nn.MustNew(cfg)
//
//	    out := net.ForwardPropagation([]float64{1, 0})
//	    net.BackPropagation(1.0, nn.MeanSquaredError)
//
//	    fmt.Println(out, net.OutputNode().OutputDerivative)
//	}
//
// # Forward and Backward Passes
//
// ForwardPropagation writes the inputs into layer 0 and recomputes every
// later layer in order. It does not check the input length; Forward does.
//
// BackPropagation seeds the output node with the error derivative and walks
// the layers backwards, setting InputDerivative on every non-input node and
// ErrorDerivative on every link. Both are also added to accumulators, so a
// batch is several forward/backward pairs followed by one update (see the
// optim package) and ResetAccumulators.
//
// # Activation Derivatives
//
// The derivative tables follow the usual shortcuts: sigmoid's is written in
// terms of the node output, relu's and tanh's in terms of the total input.
// Backpropagation passes each activation the value it expects. Setting
// Config.LegacyDerivative instead passes the total input to every table,
// which reproduces networks that relied on that behavior.
package nn
