// Package nn implements a manual multilayer perceptron: a graph of nodes and
// weighted links with explicit forward propagation and backpropagation.
package nn

// Network is a fully connected feed-forward graph with a single output node.
//
// Nodes and links live in two arenas owned by the network and are addressed
// by stable integer indices; neither slice grows after construction, so the
// *Node and *Link pointers handed out by accessors stay valid for the
// network's lifetime. Topology is fixed; only weights, biases and the
// per-pass state change.
//
// A Network is not safe for concurrent use. Callers run one forward/backward
// pass at a time and apply weight updates between passes.
//
// Example:
//
//	cfg := nn.DefaultConfig(2, 3, 1)
//	cfg.Activation, cfg.OutputActivation = nn.Sigmoid, nn.Sigmoid
//	cfg.Init = nn.NewUniformInit(42)
//	net, err := nn.New(cfg)
//	if err != nil {
//	    return err
//	}
//	out := net.ForwardPropagation([]float64{0.5, -0.2})
//	net.BackPropagation(1.0, nn.MeanSquaredError)
type Network struct {
	nodes  []Node
	links  []Link
	layers [][]int // Node indices per layer

	legacyDerivative bool
}

// New builds the network described by cfg.
//
// Every layer i gets cfg.Shape[i] nodes with ids "i-j". The output layer uses
// cfg.OutputActivation, all other layers cfg.Activation. Each pair of
// adjacent layers is fully connected, source-major, and each link is
// registered with both endpoints.
func New(cfg Config) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	weights := cfg.Init
	if weights == nil {
		weights = NewUniformInitFrom(nil)
	}

	numNodes, numLinks := 0, 0
	for i, size := range cfg.Shape {
		numNodes += size
		if i > 0 {
			numLinks += cfg.Shape[i-1] * size
		}
	}

	n := &Network{
		nodes:            make([]Node, 0, numNodes),
		links:            make([]Link, 0, numLinks),
		layers:           make([][]int, len(cfg.Shape)),
		legacyDerivative: cfg.LegacyDerivative,
	}

	bias := cfg.bias()
	last := len(cfg.Shape) - 1
	for i, size := range cfg.Shape {
		act := cfg.Activation
		if i == last {
			act = cfg.OutputActivation
		}
		layer := make([]int, size)
		for j := range size {
			layer[j] = len(n.nodes)
			n.nodes = append(n.nodes, Node{
				ID:         NodeID{Layer: i, Index: j},
				Activation: act,
				Bias:       bias,
			})
		}
		n.layers[i] = layer
	}

	for i := 0; i < last; i++ {
		for _, src := range n.layers[i] {
			for _, dst := range n.layers[i+1] {
				li := len(n.links)
				source, dest := &n.nodes[src], &n.nodes[dst]
				n.links = append(n.links, Link{
					Source:         src,
					Dest:           dst,
					Weight:         weights.Weight(source.ID, dest.ID),
					Regularization: cfg.Regularization,
					id:             source.ID.String() + "-" + dest.ID.String(),
				})
				source.OutputLinks = append(source.OutputLinks, li)
				dest.InputLinks = append(dest.InputLinks, li)
			}
		}
	}

	return n, nil
}

// MustNew is like New but panics on an invalid config.
func MustNew(cfg Config) *Network {
	n, err := New(cfg)
	if err != nil {
		panic("nn: " + err.Error())
	}
	return n
}

// ForwardPropagation computes every node output and returns the output
// node's value.
//
// inputs[j] is written straight into the output of input node j; input nodes
// apply no activation. Lengths are not checked: extra inputs are ignored and
// missing ones leave the previous values in place. Use Forward for a checked
// call.
func (n *Network) ForwardPropagation(inputs []float64) float64 {
	for j, ni := range n.layers[0] {
		if j >= len(inputs) {
			break
		}
		n.nodes[ni].Output = inputs[j]
	}
	for _, layer := range n.layers[1:] {
		for _, ni := range layer {
			n.nodes[ni].updateOutput(n.links, n.nodes)
		}
	}
	return n.OutputNode().Output
}

// Forward is ForwardPropagation with an input length check.
func (n *Network) Forward(inputs []float64) (float64, error) {
	if want := len(n.layers[0]); len(inputs) != want {
		return 0, &InputError{Got: len(inputs), Want: want}
	}
	return n.ForwardPropagation(inputs), nil
}

// UpdateNodeOutput recomputes the output of node i from its sources' current
// outputs and returns it. Sources must already reflect the current pass.
func (n *Network) UpdateNodeOutput(i int) float64 {
	return n.nodes[i].updateOutput(n.links, n.nodes)
}

// BackPropagation computes ∂E/∂TotalInput for every non-input node and
// ∂E/∂Weight for every link, adding both to the accumulators.
//
// It relies on the state left by the last forward pass and does no checking.
// Layer 0 is never visited.
func (n *Network) BackPropagation(target float64, errFn ErrorFunction) {
	for i := range n.nodes {
		n.nodes[i].OutputDerivative = 0
	}
	out := n.OutputNode()
	out.OutputDerivative = errFn.Derivative(out.Output, target)

	for l := len(n.layers) - 1; l >= 1; l-- {
		for _, ni := range n.layers[l] {
			node := &n.nodes[ni]
			node.InputDerivative = node.OutputDerivative * n.activationGradient(node)
			node.AccInputDerivative += node.InputDerivative
			node.NumAccumulatedDerivatives++

			for _, li := range node.InputLinks {
				link := &n.links[li]
				source := &n.nodes[link.Source]
				link.ErrorDerivative = node.InputDerivative * source.Output
				link.AccErrorDerivative += link.ErrorDerivative
				link.NumAccumulatedDerivatives++
				if l > 1 {
					source.OutputDerivative += node.InputDerivative * link.Weight
				}
			}
		}
	}
}

func (n *Network) activationGradient(node *Node) float64 {
	if n.legacyDerivative {
		return node.Activation.Derivative(node.TotalInput)
	}
	return node.Activation.Gradient(node.TotalInput, node.Output)
}

// Error runs a forward pass on inputs and scores the output against target.
func (n *Network) Error(inputs []float64, target float64, errFn ErrorFunction) float64 {
	return errFn.Error(n.ForwardPropagation(inputs), target)
}

// ResetAccumulators zeroes the accumulators of every node and link.
func (n *Network) ResetAccumulators() {
	for i := range n.nodes {
		n.nodes[i].ResetAccumulators()
	}
	for i := range n.links {
		n.links[i].ResetAccumulators()
	}
}
