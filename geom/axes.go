package geom

// Axes is an ordered, orthonormal triple of Vector3s: U, V, W.
// Normalisation is enforced on every construction.
type Axes struct {
	U, V, W Vector3
}

// Identity returns the world axes.
func Identity() Axes {
	return Axes{
		U: NewVector3(1, 0, 0),
		V: NewVector3(0, 1, 0),
		W: NewVector3(0, 0, 1),
	}
}

// NewAxes builds an Axes from three vectors, normalising each in place.
// It reports whether all three normalised successfully.
func NewAxes(u, v, w Vector3) (Axes, bool) {
	a := Axes{U: u, V: v, W: w}
	okU := a.U.Normalise()
	okV := a.V.Normalise()
	okW := a.W.Normalise()
	return a, okU && okV && okW
}
