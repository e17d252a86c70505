// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/mlp/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario runs one forward and one backward pass on a seeded [2, 3, 1]
// sigmoid network.
func TestScenario(t *testing.T) {
	cfg := nn.DefaultConfig(2, 3, 1)
	cfg.Activation = nn.Sigmoid
	cfg.OutputActivation = nn.Sigmoid
	cfg.Init = nn.NewUniformInit(2024)

	net, err := nn.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 9, net.NumLinks())
	assert.Equal(t, 6, net.NumNodes())

	out, err := net.Forward([]float64{1, 0})
	require.NoError(t, err)
	assert.Greater(t, out, 0.0)
	assert.Less(t, out, 1.0)

	net.BackPropagation(1.0, nn.MeanSquaredError)
	assert.Equal(t, out-1.0, net.OutputNode().OutputDerivative)

	net.ForEachLink(func(l *nn.Link) {
		assert.Equal(t, 1, l.NumAccumulatedDerivatives, l.ID())
	})
}

// TestFacadeErrors verifies the re-exported sentinel errors match.
func TestFacadeErrors(t *testing.T) {
	_, err := nn.New(nn.DefaultConfig(3, 2))
	assert.ErrorIs(t, err, nn.ErrOutputLayerSize)

	var shapeErr *nn.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.Layer)

	net := nn.MustNew(nn.DefaultConfig(3, 1))
	_, err = net.Forward([]float64{1, 2})
	assert.ErrorIs(t, err, nn.ErrInputSize)

	_, err = nn.ParseActivation("swish")
	assert.ErrorIs(t, err, nn.ErrUnknownActivation)
}

// TestFacadeTables checks the re-exported function tables.
func TestFacadeTables(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"sigmoid(0)", nn.Sigmoid.Output(0), 0.5},
		{"relu(-1)", nn.ReLU.Output(-1), 0},
		{"relu(2)", nn.ReLU.Output(2), 2},
		{"tanh(0)", nn.Tanh.Output(0), 0},
		{"l1'(-3)", nn.L1.Derivative(-3), -1},
		{"l1'(0)", nn.L1.Derivative(0), 0},
		{"l1'(5)", nn.L1.Derivative(5), 1},
		{"l2'(0.7)", nn.L2.Derivative(0.7), 0.7},
		{"mse'(3, 1)", nn.MeanSquaredError.Derivative(3, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
