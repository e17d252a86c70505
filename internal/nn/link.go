package nn

// Link is a directed weighted edge between nodes of adjacent layers.
//
// Source and Dest are node indices in the owning Network. IsDead is never
// changed by propagation; weight updaters use it to mark pruned links.
type Link struct {
	Source int
	Dest   int

	Weight         float64
	IsDead         bool
	Regularization Regularization

	ErrorDerivative           float64 // ∂E/∂Weight of the last backward pass
	AccErrorDerivative        float64
	NumAccumulatedDerivatives int

	id string
}

// ID returns "<source id>-<dest id>", e.g. "0-1-1-0".
func (l *Link) ID() string {
	return l.id
}

// ResetAccumulators zeroes the accumulated error derivative and its count.
func (l *Link) ResetAccumulators() {
	l.AccErrorDerivative = 0
	l.NumAccumulatedDerivatives = 0
}

// MeanErrorDerivative returns the accumulated error derivative averaged over
// the number of backward passes, or 0 when nothing was accumulated.
func (l *Link) MeanErrorDerivative() float64 {
	if l.NumAccumulatedDerivatives == 0 {
		return 0
	}
	return l.AccErrorDerivative / float64(l.NumAccumulatedDerivatives)
}
