package cursorseries

// Builder chains combinators over a Series without naming each
// intermediate instantiation. Construct one with NewBuilder(s), chain
// combinator calls, and finish with Build.
type Builder[K, V any] struct {
	series Series[K, V]
}

// NewBuilder starts a chain rooted at s.
func NewBuilder[K, V any](s Series[K, V]) Builder[K, V] {
	return Builder[K, V]{series: s}
}

// Build returns the series assembled so far.
func (b Builder[K, V]) Build() Series[K, V] {
	return b.series
}

// MapValues applies fn over every (key, value) pair.
func MapValues[K, Tin, Tout any](b Builder[K, Tin], fn func(K, Tin) Tout) Builder[K, Tout] {
	return Builder[K, Tout]{series: Map(b.series, fn)}
}

// ZipWith pairs the chain's series with other.
func ZipWith[K, Vl, Vr any](b Builder[K, Vl], other Series[K, Vr]) Builder[K, Zipped[Vl, Vr]] {
	return Builder[K, Zipped[Vl, Vr]]{series: Zip(b.series, other)}
}

// OpWith combines the chain's numeric series with other element-wise.
func OpWith[K any, V Number](b Builder[K, V], other Series[K, V], op ScalarOp[V]) Builder[K, V] {
	return Builder[K, V]{series: Op(b.series, other, op)}
}

// OpScalarWith applies op between the chain's numeric series and a fixed scalar.
func OpScalarWith[K any, V Number](b Builder[K, V], scalar V, op ScalarOp[V]) Builder[K, V] {
	return Builder[K, V]{series: OpScalar(b.series, scalar, op)}
}

// OpUnaryWith applies a single-operand transform over the chain's numeric series.
func OpUnaryWith[K any, V Number](b Builder[K, V], op UnaryOp[V]) Builder[K, V] {
	return Builder[K, V]{series: OpUnary(b.series, op)}
}

// CompareWith compares the chain's series against other element-wise,
// yielding a boolean Series.
func CompareWith[K, V any](b Builder[K, V], other Series[K, V], op ComparisonOp[V]) Builder[K, bool] {
	return Builder[K, bool]{series: Comparison(b.series, other, op)}
}

// CompareScalarWith compares the chain's series against a fixed scalar.
func CompareScalarWith[K, V any](b Builder[K, V], scalar V, op ComparisonOp[V]) Builder[K, bool] {
	return Builder[K, bool]{series: ComparisonScalar(b.series, scalar, op)}
}

// Erase wraps the chain's series to hide its concrete combinator type.
func (b Builder[K, V]) Erase() Builder[K, V] {
	return Builder[K, V]{series: Erase(b.series)}
}
