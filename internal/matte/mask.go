package matte

// cellState is the classification of one pixel in the mask.
//
// Transitions are monotonic: once stateRemoved, a cell never reverts;
// stateKept may still advance to stateRemoved in a later stage.
type cellState uint8

const (
	stateUnvisited cellState = iota
	stateKept
	stateRemoved
)

// frontier is the FIFO of coordinates pending flood-fill expansion.
//
// The backing store is append-only and consumed through a head index, so
// both push and pop are O(1) with no mid-array shifting. Coordinates are
// stored as flat pairs; out-of-bounds entries are allowed and discarded on
// pop, mirroring how border seeding and neighbor expansion enqueue without
// pre-checking.
type frontier struct {
	xs, ys []int32
	head   int
}

// newFrontier pre-sizes the backing store for the given perimeter so the
// initial border seeding never reallocates.
func newFrontier(capacity int) *frontier {
	return &frontier{
		xs: make([]int32, 0, capacity),
		ys: make([]int32, 0, capacity),
	}
}

func (f *frontier) push(x, y int) {
	f.xs = append(f.xs, int32(x))
	f.ys = append(f.ys, int32(y))
}

// pop returns the next pending coordinate in insertion order, or ok=false
// when the queue is exhausted.
func (f *frontier) pop() (x, y int, ok bool) {
	if f.head >= len(f.xs) {
		return 0, 0, false
	}
	x, y = int(f.xs[f.head]), int(f.ys[f.head])
	f.head++
	return x, y, true
}

// neighbors8 lists the 8-connected offsets, cardinals first. Dilation and
// the isolated sweep use all eight; flood fill stays 4-connected and
// enqueues its cardinal neighbors directly.
var neighbors8 = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}
