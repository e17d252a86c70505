package nn

import (
	"encoding/json"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// WeightMatrix returns the weights of the links entering layer as a
// len(layer) × len(layer-1) matrix: row j, column k holds the weight from
// node (layer-1)-k to node layer-j.
//
// The matrix is a copy; changing it does not touch the network.
//
// Panics if layer is not in [1, NumLayers).
func (n *Network) WeightMatrix(layer int) *mat.Dense {
	return n.linkMatrix(layer, func(l *Link) float64 { return l.Weight })
}

// GradientMatrix returns the ErrorDerivative of the last backward pass in
// the same layout as WeightMatrix.
func (n *Network) GradientMatrix(layer int) *mat.Dense {
	return n.linkMatrix(layer, func(l *Link) float64 { return l.ErrorDerivative })
}

func (n *Network) linkMatrix(layer int, value func(*Link) float64) *mat.Dense {
	if layer < 1 || layer >= len(n.layers) {
		panic("nn: layer index out of range for link matrix")
	}
	rows, cols := len(n.layers[layer]), len(n.layers[layer-1])
	m := mat.NewDense(rows, cols, nil)
	for j, ni := range n.layers[layer] {
		for _, li := range n.nodes[ni].InputLinks {
			link := &n.links[li]
			m.Set(j, n.nodes[link.Source].ID.Index, value(link))
		}
	}
	return m
}

// GradientNorm returns the L2 norm of the averaged accumulated link
// derivatives. It is 0 when no backward pass has been accumulated.
func (n *Network) GradientNorm() float64 {
	grads := make([]float64, len(n.links))
	for i := range n.links {
		grads[i] = n.links[i].MeanErrorDerivative()
	}
	return floats.Norm(grads, 2)
}

// Number is a float64 that survives JSON encoding. NaN and ±Inf are valid
// results of a pass but have no JSON form; they encode as null, and null
// decodes as NaN.
type Number float64

// MarshalJSON implements json.Marshaler.
func (x Number) MarshalJSON() ([]byte, error) {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*x = Number(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*x = Number(f)
	return nil
}

// NodeState is the inspectable state of a node.
type NodeState struct {
	ID                        string `json:"id"`
	Activation                string `json:"activation"`
	Bias                      Number `json:"bias"`
	TotalInput                Number `json:"totalInput"`
	Output                    Number `json:"output"`
	OutputDerivative          Number `json:"outputDerivative"`
	InputDerivative           Number `json:"inputDerivative"`
	AccInputDerivative        Number `json:"accumulatedInputDerivative"`
	NumAccumulatedDerivatives int    `json:"numAccumulatedDerivatives"`
}

// LinkState is the inspectable state of a link.
type LinkState struct {
	ID                        string `json:"id"`
	Source                    string `json:"source"`
	Dest                      string `json:"dest"`
	Weight                    Number `json:"weight"`
	IsDead                    bool   `json:"isDead"`
	Regularization            string `json:"regularization"`
	ErrorDerivative           Number `json:"errorDerivative"`
	AccErrorDerivative        Number `json:"accumulatedErrorDerivative"`
	NumAccumulatedDerivatives int    `json:"numAccumulatedDerivatives"`
}

// Snapshot is a point-in-time copy of the whole graph.
type Snapshot struct {
	Shape  []int         `json:"shape"`
	Layers [][]NodeState `json:"layers"`
	Links  []LinkState   `json:"links"`
}

// Snapshot copies the state of every node and link.
func (n *Network) Snapshot() Snapshot {
	s := Snapshot{
		Shape:  n.Shape(),
		Layers: make([][]NodeState, len(n.layers)),
		Links:  make([]LinkState, len(n.links)),
	}
	for i, layer := range n.layers {
		states := make([]NodeState, len(layer))
		for j, ni := range layer {
			node := &n.nodes[ni]
			states[j] = NodeState{
				ID:                        node.ID.String(),
				Activation:                node.Activation.String(),
				Bias:                      Number(node.Bias),
				TotalInput:                Number(node.TotalInput),
				Output:                    Number(node.Output),
				OutputDerivative:          Number(node.OutputDerivative),
				InputDerivative:           Number(node.InputDerivative),
				AccInputDerivative:        Number(node.AccInputDerivative),
				NumAccumulatedDerivatives: node.NumAccumulatedDerivatives,
			}
		}
		s.Layers[i] = states
	}
	for i := range n.links {
		link := &n.links[i]
		s.Links[i] = LinkState{
			ID:                        link.ID(),
			Source:                    n.nodes[link.Source].ID.String(),
			Dest:                      n.nodes[link.Dest].ID.String(),
			Weight:                    Number(link.Weight),
			IsDead:                    link.IsDead,
			Regularization:            link.Regularization.String(),
			ErrorDerivative:           Number(link.ErrorDerivative),
			AccErrorDerivative:        Number(link.AccErrorDerivative),
			NumAccumulatedDerivatives: link.NumAccumulatedDerivatives,
		}
	}
	return s
}
