package expr

// Manifold is the contract every expression value type satisfies: a point in
// a possibly non-Euclidean space with a fixed tangent-space dimension.
//
// Dim is the number of tangent coordinates, i.e. the column count of any
// Jacobian taken with respect to a value of this type.
type Manifold interface {
	Dim() int
}

// Bindings supplies the current value of each variable during evaluation.
// Variable storage itself lives outside this package; any container that can
// answer keyed lookups may back an evaluation.
type Bindings interface {
	// At returns the value bound to k, or false if k is unbound.
	At(k Key) (Manifold, bool)
}

// Values is a map-backed Bindings implementation.
type Values map[Key]Manifold

// At implements Bindings.
func (v Values) At(k Key) (Manifold, bool) {
	m, ok := v[k]
	return m, ok
}

// Insert binds k to m, replacing any previous binding.
func (v Values) Insert(k Key, m Manifold) {
	v[k] = m
}
