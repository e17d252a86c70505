package nn

import "strconv"

// NodeID locates a node by layer and position within the layer.
type NodeID struct {
	Layer int
	Index int
}

// String returns "<layer>-<index>".
func (id NodeID) String() string {
	return strconv.Itoa(id.Layer) + "-" + strconv.Itoa(id.Index)
}

// Node is a computational unit: it sums its weighted inputs and a bias and
// applies an activation.
//
// Links are referenced by their index in the owning Network. TotalInput and
// Output are only meaningful after a forward pass has reached the node's
// layer.
type Node struct {
	ID         NodeID
	Activation Activation
	Bias       float64

	InputLinks  []int // Links whose destination is this node
	OutputLinks []int // Links whose source is this node

	TotalInput       float64 // Bias + Σ weight × source output
	Output           float64 // Activation(TotalInput); raw input for layer 0
	OutputDerivative float64 // ∂E/∂Output
	InputDerivative  float64 // ∂E/∂TotalInput

	// Running sums across backward passes, reset by the caller between batches.
	AccInputDerivative        float64
	NumAccumulatedDerivatives int
}

// updateOutput recomputes TotalInput and Output from the current outputs of
// the source nodes.
func (n *Node) updateOutput(links []Link, nodes []Node) float64 {
	n.TotalInput = n.Bias
	for _, li := range n.InputLinks {
		link := &links[li]
		n.TotalInput += link.Weight * nodes[link.Source].Output
	}
	n.Output = n.Activation.Output(n.TotalInput)
	return n.Output
}

// ResetAccumulators zeroes the accumulated input derivative and its count.
func (n *Node) ResetAccumulators() {
	n.AccInputDerivative = 0
	n.NumAccumulatedDerivatives = 0
}

// MeanInputDerivative returns the accumulated input derivative averaged over
// the number of backward passes, or 0 when nothing was accumulated.
func (n *Node) MeanInputDerivative() float64 {
	if n.NumAccumulatedDerivatives == 0 {
		return 0
	}
	return n.AccInputDerivative / float64(n.NumAccumulatedDerivatives)
}
