package cursorseries

// Number is any built-in type supporting arithmetic operators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the subset of Number that also supports %.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ScalarOp is a binary arithmetic operation over a numeric value type. The
// named constructors below (Add, Sub, RSub, ...) are the built-in ScalarOps;
// callers may also supply any func(a, b V) V of their own.
type ScalarOp[V Number] func(a, b V) V

// UnaryOp is a single-operand arithmetic operation.
type UnaryOp[V Number] func(a V) V

// Add returns a+b.
func Add[V Number]() ScalarOp[V] { return func(a, b V) V { return a + b } }

// Sub returns a-b.
func Sub[V Number]() ScalarOp[V] { return func(a, b V) V { return a - b } }

// RSub returns b-a — Sub with its operands reversed, for scalar-minus-series.
func RSub[V Number]() ScalarOp[V] { return func(a, b V) V { return b - a } }

// Mul returns a*b.
func Mul[V Number]() ScalarOp[V] { return func(a, b V) V { return a * b } }

// Div returns a/b.
func Div[V Number]() ScalarOp[V] { return func(a, b V) V { return a / b } }

// RDiv returns b/a.
func RDiv[V Number]() ScalarOp[V] { return func(a, b V) V { return b / a } }

// Mod returns a%b.
func Mod[V Integer]() ScalarOp[V] { return func(a, b V) V { return a % b } }

// RMod returns b%a.
func RMod[V Integer]() ScalarOp[V] { return func(a, b V) V { return b % a } }

// Negate returns -a.
func Negate[V Number]() UnaryOp[V] { return func(a V) V { return -a } }

// Plus is the unary identity, a.
func Plus[V Number]() UnaryOp[V] { return func(a V) V { return a } }

// Op combines two series of the same numeric value type element-wise,
// applying op at every matched key. It is Zip followed by op, in one step:
// Op(l, r, Add[V]()) produces the same elements as
// Map(Zip(l, r), func(_ K, z Zipped[V, V]) V { return z.Left + z.Right }).
func Op[K any, V Number](left, right Series[K, V], op ScalarOp[V]) Series[K, V] {
	return Map[K, Zipped[V, V], V](Zip[K, V, V](left, right), func(_ K, z Zipped[V, V]) V {
		return op(z.Left, z.Right)
	})
}

// OpScalar applies op between every value of s and a fixed scalar, e.g.
// OpScalar(s, 2, Mul[V]()) doubles every value. Unlike Op it never changes
// the key domain: it is a pure Map, so it preserves s's readonly state,
// indexing and continuity exactly.
func OpScalar[K any, V Number](s Series[K, V], scalar V, op ScalarOp[V]) Series[K, V] {
	return Map[K, V, V](s, func(_ K, v V) V { return op(v, scalar) })
}

// OpUnary applies a single-operand transform to every value of s.
func OpUnary[K any, V Number](s Series[K, V], op UnaryOp[V]) Series[K, V] {
	return Map[K, V, V](s, func(_ K, v V) V { return op(v) })
}
