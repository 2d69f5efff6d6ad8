package lattice

// Point is a site on the unbounded 2D square lattice.
// It is a comparable value type and may be used as a map key.
type Point struct {
	X, Y int
}

// offsets holds the four unit directions in fixed order: E, W, N, S.
// The order is part of the deterministic contract: neighbor enumeration
// under a fixed seed must never change between runs.
var offsets = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Offsets returns the four unit lattice directions in their fixed order.
// The returned slice is freshly allocated; callers may modify it.
// Complexity: O(1).
func Offsets() []Point {
	return []Point{offsets[0], offsets[1], offsets[2], offsets[3]}
}

// Add returns the translation of p by d.
// Complexity: O(1).
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Sub returns the component-wise difference p − q.
// Complexity: O(1).
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Neighbors returns the four orthogonally adjacent sites of p in the
// fixed E, W, N, S order.
// Complexity: O(1), one 4-element allocation.
func (p Point) Neighbors() []Point {
	return []Point{
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X, p.Y - 1},
	}
}

// ManhattanDist returns |a.X−b.X| + |a.Y−b.Y|.
// Complexity: O(1).
func ManhattanDist(a, b Point) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

// Adjacent reports whether a and b are nearest neighbors on the lattice,
// i.e. at Manhattan distance exactly 1.
// Complexity: O(1).
func Adjacent(a, b Point) bool {
	return ManhattanDist(a, b) == 1
}

// absInt avoids a float round-trip for integer distances.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
