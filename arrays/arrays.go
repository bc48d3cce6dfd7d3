// Package arrays provides generic helpers for slices and 2D grids. Grids
// are slices of slices indexed [x][y]; none of the helpers assume the inner
// slices share a length, and copies clip to whatever overlaps.
package arrays

// Range returns a new slice holding the ints from start (inclusive) to end
// (exclusive), or an empty slice when the range is empty.
func Range(start, end int) []int {
	if end-start <= 0 {
		return []int{}
	}
	r := make([]int, end-start)
	for i := range r {
		r[i] = start + i
	}
	return r
}

// RangeInto overwrites buffer with 0, 1, 2... and returns it.
func RangeInto(buffer []int) []int {
	for i := range buffer {
		buffer[i] = i
	}
	return buffer
}

// Copy2D returns a deep copy of source; mutating the result never affects
// source. A nil source yields nil.
func Copy2D[T any](source [][]T) [][]T {
	if source == nil {
		return nil
	}
	target := make([][]T, len(source))
	for i := range source {
		target[i] = make([]T, len(source[i]))
		copy(target[i], source[i])
	}
	return target
}

// Insert2D copies source into target with its upper-left corner at (x, y),
// clipping whatever does not fit, and returns target. It panics if x or y
// is negative and source is non-empty, like an out-of-range index would.
func Insert2D[T any](source, target [][]T, x, y int) [][]T {
	if len(source) < 1 || len(source[0]) < 1 {
		return target
	}
	for i := 0; i < len(source) && x+i < len(target); i++ {
		copy(target[x+i][y:], source[i])
	}
	return target
}

// Set2D copies the overlapping region of source onto target, starting at
// the origin, and returns target.
func Set2D[T any](source, target [][]T) [][]T {
	for i := 0; i < len(source) && i < len(target); i++ {
		copy(target[i], source[i])
	}
	return target
}

// Filled2D returns a new width by height grid with every cell set to
// contents.
func Filled2D[T any](contents T, width, height int) [][]T {
	next := make([][]T, width)
	for x := range next {
		next[x] = make([]T, height)
		for y := range next[x] {
			next[x][y] = contents
		}
	}
	return next
}

// Fill2D sets every cell of grid to value, in place.
func Fill2D[T any](grid [][]T, value T) {
	for x := range grid {
		for y := range grid[x] {
			grid[x][y] = value
		}
	}
}

// Fill3D sets every cell of grid to value, in place.
func Fill3D[T any](grid [][][]T, value T) {
	for x := range grid {
		Fill2D(grid[x], value)
	}
}

// FillRegion2D sets the cells of grid from (startX, startY) to
// (endX, endY), both inclusive, to value; the region is clipped to the grid
// on the high side.
func FillRegion2D[T any](grid [][]T, value T, startX, startY, endX, endY int) {
	for x := startX; x <= endX && x < len(grid); x++ {
		for y := startY; y <= endY && y < len(grid[x]); y++ {
			grid[x][y] = value
		}
	}
}

// Reverse reverses data in place and returns it.
func Reverse[T any](data []T) []T {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
	return data
}
