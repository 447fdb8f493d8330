package sfcgo

// The base fine curve of the Puka-Hilbert family: a fixed Hamiltonian path
// through the 5x5x5 cube entering at (0,0,0) and exiting at (4,0,0), so its
// net displacement lies along axis 0 only. The composite builder replicates
// it into every cell of a coarser Hilbert curve under a signed axis
// permutation (direction) and per-axis reflections (rotation).

const (
	baseSide   = 5
	basePoints = baseSide * baseSide * baseSide
	// baseAxisBits is the per-axis radix width of the base curve's inverse
	// table: coordinates 0..4 need 3 bits.
	baseAxisBits = 3
)

// p2 is a Hamiltonian path of the 5x5 grid from (0,0) to (4,0); the slabs of
// the 3-dimensional path below are built from it.
var p2 = [25][2]int{
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 4}, {2, 4}, {3, 4}, {4, 4},
	{4, 3}, {3, 3}, {2, 3}, {1, 3},
	{1, 2}, {2, 2}, {3, 2}, {4, 2},
	{4, 1}, {3, 1}, {2, 1}, {1, 1},
	{1, 0}, {2, 0}, {3, 0}, {4, 0},
}

// pukaBase is the base curve engine: forward path plus radix-8 flattened
// inverse, both fixed at construction.
type pukaBase struct {
	path [basePoints][3]int8
	inv  [1 << (baseAxisBits * 3)]int16
}

func newPukaBase() *pukaBase {
	b := &pukaBase{}

	t := 0
	emit := func(x, y, z int) {
		b.path[t] = [3]int8{int8(x), int8(y), int8(z)}
		t++
	}

	// Slab x=0 climbs p2 with axes swapped, ending at (0,0,4); slab x=1
	// descends it back to (1,0,0); slab x=2 climbs again. Slab x=3 is a row
	// serpentine from (3,0,4) to (3,4,0), and slab x=4 mirrors p2 to finish
	// at the exit corner (4,0,0). Consecutive slabs meet at equal (y,z), so
	// the whole path is unit-step.
	for _, q := range p2 {
		emit(0, q[1], q[0])
	}
	for i := len(p2) - 1; i >= 0; i-- {
		emit(1, p2[i][1], p2[i][0])
	}
	for _, q := range p2 {
		emit(2, q[1], q[0])
	}
	for s := 0; s < 25; s++ {
		y := s % 5
		if (s/5)%2 == 1 {
			y = 4 - y
		}
		emit(3, y, 4-s/5)
	}
	for _, q := range p2 {
		emit(4, 4-q[0], q[1])
	}

	for i := range b.inv {
		b.inv[i] = -1
	}
	for d, p := range b.path {
		b.inv[int(p[0])<<(2*baseAxisBits)|int(p[1])<<baseAxisBits|int(p[2])] = int16(d)
	}

	return b
}

func (b *pukaBase) fineSide() int { return baseSide }

func (b *pukaBase) pointInto(d int64, p []int) {
	for a := 0; a < 3; a++ {
		p[a] = int(b.path[d][a])
	}
}

func (b *pukaBase) distanceOf(p []int) int64 {
	return int64(b.inv[p[0]<<(2*baseAxisBits)|p[1]<<baseAxisBits|p[2]])
}

// NewPukaHilbert5 constructs the base curve as a standalone 3-dimensional
// curve of side 5. It always stores its tables; 125 points fit the 1-byte
// tier regardless of budget.
func NewPukaHilbert5(opts ...Option) (Curve, error) {
	o := applyOptions(opts)
	g := geometry{dims: 3, side: baseSide, max: basePoints}
	return newCurve(g, newPukaBase(), baseAxisBits, o), nil
}
