package nn

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightMatrixLayout(t *testing.T) {
	cfg := DefaultConfig(3, 2, 1)
	cfg.Init = InitFunc(func(source, dest NodeID) float64 {
		return float64(10*dest.Index + source.Index)
	})
	net := MustNew(cfg)

	m := net.WeightMatrix(1)
	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	for j := range rows {
		for k := range cols {
			assert.Equal(t, float64(10*j+k), m.At(j, k))
		}
	}

	out := net.WeightMatrix(2)
	rows, cols = out.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 2, cols)

	// Copies do not alias the network.
	m.Set(0, 0, 99)
	assert.Equal(t, 0.0, net.Link(0).Weight)

	assert.Panics(t, func() { net.WeightMatrix(0) })
	assert.Panics(t, func() { net.GradientMatrix(3) })
}

func TestGradientMatrixAndNorm(t *testing.T) {
	net := sigmoidNet(t, 6, 2, 2, 1)
	assert.Zero(t, net.GradientNorm())

	net.ForwardPropagation([]float64{0.5, 0.5})
	net.BackPropagation(1, MeanSquaredError)

	g := net.GradientMatrix(2)
	out := net.OutputNode()
	for _, li := range out.InputLinks {
		link := net.Link(li)
		assert.Equal(t, link.ErrorDerivative, g.At(0, net.Source(link).ID.Index))
	}

	var sum float64
	net.ForEachLink(func(l *Link) { sum += l.ErrorDerivative * l.ErrorDerivative })
	assert.InDelta(t, math.Sqrt(sum), net.GradientNorm(), 1e-12)

	// Averaging keeps the norm stable over repeated identical passes.
	norm := net.GradientNorm()
	net.BackPropagation(1, MeanSquaredError)
	assert.InDelta(t, norm, net.GradientNorm(), 1e-12)
}

func TestSnapshot(t *testing.T) {
	cfg := DefaultConfig(2, 1)
	cfg.Regularization = L1
	cfg.Init = ConstantInit(0.25)
	net := MustNew(cfg)
	net.ForwardPropagation([]float64{1, 2})
	net.BackPropagation(0, MeanSquaredError)

	s := net.Snapshot()
	assert.Equal(t, []int{2, 1}, s.Shape)
	require.Len(t, s.Layers, 2)
	require.Len(t, s.Layers[0], 2)
	require.Len(t, s.Links, 2)

	assert.Equal(t, "0-1", s.Layers[0][1].ID)
	assert.Equal(t, Number(2), s.Layers[0][1].Output)

	outNode := s.Layers[1][0]
	assert.Equal(t, "tanh", outNode.Activation)
	assert.Equal(t, Number(net.OutputNode().Output), outNode.Output)
	assert.Equal(t, 1, outNode.NumAccumulatedDerivatives)

	link := s.Links[1]
	assert.Equal(t, "0-1-1-0", link.ID)
	assert.Equal(t, "0-1", link.Source)
	assert.Equal(t, "1-0", link.Dest)
	assert.Equal(t, Number(0.25), link.Weight)
	assert.Equal(t, "l1", link.Regularization)
	assert.Equal(t, Number(net.Link(1).AccErrorDerivative), link.AccErrorDerivative)
}

func TestSnapshotNonFinite(t *testing.T) {
	cfg := DefaultConfig(1, 1)
	cfg.OutputActivation = ReLU
	cfg.Init = ConstantInit(10)
	net := MustNew(cfg)
	require.True(t, math.IsInf(net.ForwardPropagation([]float64{1e308}), 1))
	net.BackPropagation(0, MeanSquaredError)

	data, err := json.Marshal(net.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"output":null`)

	var s Snapshot
	require.NoError(t, json.Unmarshal(data, &s))
	assert.True(t, math.IsNaN(float64(s.Layers[1][0].Output)))
	assert.Equal(t, Number(1e308), s.Layers[0][0].Output)
	assert.Equal(t, Number(10), s.Links[0].Weight)
}

func TestUniformInit(t *testing.T) {
	a, b := NewUniformInit(99), NewUniformInit(99)
	for range 1000 {
		w := a.Weight(NodeID{}, NodeID{})
		assert.Equal(t, w, b.Weight(NodeID{}, NodeID{}))
		assert.GreaterOrEqual(t, w, -0.5)
		assert.Less(t, w, 0.5)
	}

	other := NewUniformInitFrom(rand.NewPCG(1, 2))
	assert.NotEqual(t, NewUniformInit(99).Weight(NodeID{}, NodeID{}), other.Weight(NodeID{}, NodeID{}))

	assert.Equal(t, 0.3, ConstantInit(0.3).Weight(NodeID{}, NodeID{Layer: 1}))
}
