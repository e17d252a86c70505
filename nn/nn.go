// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/nn"
)

// Graph

// Network is a fully connected feed-forward network with a single output node.
type Network = nn.Network

// Node is a computational unit of a Network.
type Node = nn.Node

// NodeID locates a node by layer and position.
type NodeID = nn.NodeID

// Link is a directed weighted edge between nodes of adjacent layers.
type Link = nn.Link

// Config describes the shape and function choices of a Network.
type Config = nn.Config

// DefaultBias is the starting bias of every node.
const DefaultBias = nn.DefaultBias

// DefaultConfig returns a tanh network config of the given shape.
//
// Example:
//
//	cfg := nn.DefaultConfig(2, 4, 1)
//	cfg.Regularization = nn.L2
func DefaultConfig(shape ...int) Config {
	return nn.DefaultConfig(shape...)
}

// New builds a network from cfg.
//
// Example:
//
//	cfg := nn.DefaultConfig(2, 3, 1)
//	cfg.Init = nn.NewUniformInit(42)
//	net, err := nn.New(cfg)
func New(cfg Config) (*Network, error) {
	return nn.New(cfg)
}

// MustNew is like New but panics on an invalid config.
func MustNew(cfg Config) *Network {
	return nn.MustNew(cfg)
}

// Function tables

// Activation selects a node's activation function.
type Activation = nn.Activation

// Activations.
const (
	Tanh    = nn.Tanh
	Sigmoid = nn.Sigmoid
	ReLU    = nn.ReLU
)

// ParseActivation maps "tanh", "sigmoid" or "relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// ErrorFunction scores the network output against a target.
type ErrorFunction = nn.ErrorFunction

// MeanSquaredError is E = ½(output - target)².
const MeanSquaredError = nn.MeanSquaredError

// ParseErrorFunction maps "meanSquaredError" or "mse" to an ErrorFunction.
func ParseErrorFunction(name string) (ErrorFunction, error) {
	return nn.ParseErrorFunction(name)
}

// Regularization selects the weight penalty of a link.
type Regularization = nn.Regularization

// Regularizations.
const (
	RegNone = nn.RegNone
	L1      = nn.L1
	L2      = nn.L2
)

// ParseRegularization maps "none", "l1" or "l2" to a Regularization.
func ParseRegularization(name string) (Regularization, error) {
	return nn.ParseRegularization(name)
}

// Initialization

// Initializer resolves link weights at construction.
type Initializer = nn.Initializer

// UniformInit draws weights from U[-0.5, 0.5).
type UniformInit = nn.UniformInit

// ConstantInit gives every link the same weight.
type ConstantInit = nn.ConstantInit

// InitFunc adapts a function to Initializer.
type InitFunc = nn.InitFunc

// NewUniformInit returns a reproducible U[-0.5, 0.5) initializer.
func NewUniformInit(seed uint64) *UniformInit {
	return nn.NewUniformInit(seed)
}

// NewUniformInitFrom returns a U[-0.5, 0.5) initializer on src.
func NewUniformInitFrom(src rand.Source) *UniformInit {
	return nn.NewUniformInitFrom(src)
}

// Inspection

// Number is a float64 that encodes NaN and ±Inf as JSON null.
type Number = nn.Number

// Snapshot is a copy of every node and link of a network.
type Snapshot = nn.Snapshot

// NodeState is the inspectable state of a node.
type NodeState = nn.NodeState

// LinkState is the inspectable state of a link.
type LinkState = nn.LinkState

// Errors

// ShapeError reports an invalid layer in a network shape.
type ShapeError = nn.ShapeError

// InputError reports an input vector of the wrong length.
type InputError = nn.InputError

// Sentinel errors.
var (
	ErrEmptyShape            = nn.ErrEmptyShape
	ErrInvalidLayerSize      = nn.ErrInvalidLayerSize
	ErrOutputLayerSize       = nn.ErrOutputLayerSize
	ErrInputSize             = nn.ErrInputSize
	ErrUnknownActivation     = nn.ErrUnknownActivation
	ErrUnknownErrorFunction  = nn.ErrUnknownErrorFunction
	ErrUnknownRegularization = nn.ErrUnknownRegularization
)
