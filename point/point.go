package point

// Integer is the set of integer kinds usable as coordinates.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point kinds usable as coordinates.
type Float interface {
	~float32 | ~float64
}

// Scalar is any coordinate kind.
type Scalar interface {
	Integer | Float
}

// Accessor extracts coordinates from items of type T.
//
// Dims must return the same value for the lifetime of the accessor.
// Implementations must be safe for concurrent use.
type Accessor[T any, S Scalar] interface {
	// Dims returns the number of axes K.
	Dims() int

	// Coord returns the coordinate of item on axis, with 0 <= axis < Dims().
	Coord(item T, axis int) S
}

// Compile-time checks.
var (
	_ Accessor[[2]float64, float64] = Array2[float64]{}
	_ Accessor[[3]int32, int32]     = Array3[int32]{}
	_ Accessor[[]float32, float32]  = Slice[float32]{}
	_ Accessor[int, int]            = Func[int, int]{}
)

// Array2 is the accessor for [2]S points.
type Array2[S Scalar] struct{}

func (Array2[S]) Dims() int {
	return 2
}

func (Array2[S]) Coord(item [2]S, axis int) S {
	return item[axis]
}

// Array3 is the accessor for [3]S points.
type Array3[S Scalar] struct{}

func (Array3[S]) Dims() int {
	return 3
}

func (Array3[S]) Coord(item [3]S, axis int) S {
	return item[axis]
}

// Slice is the accessor for []S points with K axes.
// Every item must have at least K elements.
type Slice[S Scalar] struct {
	K int
}

func (s Slice[S]) Dims() int {
	return s.K
}

func (s Slice[S]) Coord(item []S, axis int) S {
	return item[axis]
}

// Func adapts a plain function to an Accessor.
type Func[T any, S Scalar] struct {
	K  int
	Fn func(item T, axis int) S
}

func (f Func[T, S]) Dims() int {
	return f.K
}

func (f Func[T, S]) Coord(item T, axis int) S {
	return f.Fn(item, axis)
}
