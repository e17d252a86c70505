package nn

// Shape returns the node count of every layer.
func (n *Network) Shape() []int {
	shape := make([]int, len(n.layers))
	for i, layer := range n.layers {
		shape[i] = len(layer)
	}
	return shape
}

// NumLayers returns the number of layers, input and output included.
func (n *Network) NumLayers() int { return len(n.layers) }

// NumNodes returns the total number of nodes.
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumLinks returns the total number of links.
func (n *Network) NumLinks() int { return len(n.links) }

// Layer returns the node indices of layer i. The slice must not be modified.
func (n *Network) Layer(i int) []int { return n.layers[i] }

// Node returns the node with global index i.
func (n *Network) Node(i int) *Node { return &n.nodes[i] }

// NodeAt returns node index of layer layer.
func (n *Network) NodeAt(layer, index int) *Node {
	return &n.nodes[n.layers[layer][index]]
}

// Link returns the link with global index i.
func (n *Network) Link(i int) *Link { return &n.links[i] }

// Source returns the source node of l.
func (n *Network) Source(l *Link) *Node { return &n.nodes[l.Source] }

// Dest returns the destination node of l.
func (n *Network) Dest(l *Link) *Node { return &n.nodes[l.Dest] }

// OutputNode returns the single node of the last layer.
func (n *Network) OutputNode() *Node {
	return &n.nodes[n.layers[len(n.layers)-1][0]]
}

// ForEachNode calls fn for every node in layer order. With ignoreInputs the
// input layer is skipped.
func (n *Network) ForEachNode(ignoreInputs bool, fn func(*Node)) {
	start := 0
	if ignoreInputs {
		start = 1
	}
	for _, layer := range n.layers[start:] {
		for _, ni := range layer {
			fn(&n.nodes[ni])
		}
	}
}

// ForEachLink calls fn for every link in construction order.
func (n *Network) ForEachLink(fn func(*Link)) {
	for i := range n.links {
		fn(&n.links[i])
	}
}
