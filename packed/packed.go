package packed

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Width is the per-element storage width of a Sequence, in bytes.
type Width int

const (
	W1 Width = 1
	W2 Width = 2
	W4 Width = 4
	W8 Width = 8
)

func (w Width) valid() bool {
	switch w {
	case W1, W2, W4, W8:
		return true
	default:
		return false
	}
}

func (w Width) String() string {
	if w.valid() {
		return fmt.Sprintf("W%d", int(w))
	}
	return fmt.Sprintf("Width(%d)", int(w))
}

// Fit returns the smallest width able to represent every value in [0, n].
func Fit(n uint64) Width {
	switch {
	case n <= math.MaxUint8:
		return W1
	case n <= math.MaxUint16:
		return W2
	case n <= math.MaxUint32:
		return W4
	default:
		return W8
	}
}

// Sequence is an ordered list of unsigned integers stored at a fixed width.
// The zero value is not usable; construct with NewSequence or a From variant.
type Sequence struct {
	width  Width
	data   []byte
	frozen bool
}

// NewSequence creates an empty sequence with the given element width.
// An invalid width is a programming error and panics.
func NewSequence(width Width) *Sequence {
	if !width.valid() {
		panic(fmt.Sprintf("packed: invalid width %d", int(width)))
	}
	return &Sequence{width: width}
}

// NewSequenceLen creates a zero-filled sequence of n elements.
func NewSequenceLen(width Width, n int) *Sequence {
	s := NewSequence(width)
	s.data = make([]byte, n*int(width))
	return s
}

// FromUint8s creates a width-1 sequence holding a copy of vs.
func FromUint8s(vs []uint8) *Sequence {
	s := NewSequenceLen(W1, len(vs))
	copy(s.data, vs)
	return s
}

// FromUint16s creates a width-2 sequence holding a copy of vs.
func FromUint16s(vs []uint16) *Sequence {
	s := NewSequenceLen(W2, len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint16(s.data[i*2:], v)
	}
	return s
}

// FromUint32s creates a width-4 sequence holding a copy of vs.
func FromUint32s(vs []uint32) *Sequence {
	s := NewSequenceLen(W4, len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(s.data[i*4:], v)
	}
	return s
}

// FromUint64s creates a width-8 sequence holding a copy of vs.
func FromUint64s(vs []uint64) *Sequence {
	s := NewSequenceLen(W8, len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint64(s.data[i*8:], v)
	}
	return s
}

// Size returns the number of elements.
func (s *Sequence) Size() int {
	return len(s.data) / int(s.width)
}

// Width returns the element storage width.
func (s *Sequence) Width() Width {
	return s.width
}

func (s *Sequence) mutable() {
	if s.frozen {
		panic("packed: mutation of frozen sequence")
	}
}

func (s *Sequence) put(off int, v uint64) {
	switch s.width {
	case W1:
		s.data[off] = byte(v)
	case W2:
		binary.LittleEndian.PutUint16(s.data[off:], uint16(v))
	case W4:
		binary.LittleEndian.PutUint32(s.data[off:], uint32(v))
	default:
		binary.LittleEndian.PutUint64(s.data[off:], v)
	}
}

func (s *Sequence) at(off int) uint64 {
	switch s.width {
	case W1:
		return uint64(s.data[off])
	case W2:
		return uint64(binary.LittleEndian.Uint16(s.data[off:]))
	case W4:
		return uint64(binary.LittleEndian.Uint32(s.data[off:]))
	default:
		return binary.LittleEndian.Uint64(s.data[off:])
	}
}

// Append adds v at the end, truncated to the storage width.
func (s *Sequence) Append(v uint64) {
	s.mutable()
	off := len(s.data)
	s.data = append(s.data, make([]byte, int(s.width))...)
	s.put(off, v)
}

// AppendAll adds every value of vs in order, truncated to the storage width.
func (s *Sequence) AppendAll(vs []uint64) {
	s.mutable()
	off := len(s.data)
	s.data = append(s.data, make([]byte, len(vs)*int(s.width))...)
	for _, v := range vs {
		s.put(off, v)
		off += int(s.width)
	}
}

// AppendRange appends the ascending integers of [start, end). A reversed or
// empty range appends nothing.
func (s *Sequence) AppendRange(start, end uint64) {
	s.mutable()
	if end <= start {
		return
	}
	off := len(s.data)
	s.data = append(s.data, make([]byte, int(end-start)*int(s.width))...)
	for v := start; v < end; v++ {
		s.put(off, v)
		off += int(s.width)
	}
}

// Get returns element i zero-extended to uint64. It never sign-extends,
// whatever machine-width value was originally stored.
func (s *Sequence) Get(i int) uint64 {
	return s.at(i * int(s.width))
}

// Set overwrites element i with v, truncated to the storage width.
func (s *Sequence) Set(i int, v uint64) {
	s.mutable()
	s.put(i*int(s.width), v)
}

// Insert places v before element i, shifting the tail up by one.
// i == Size() appends.
func (s *Sequence) Insert(i int, v uint64) {
	s.mutable()
	w := int(s.width)
	off := i * w
	if off < 0 || off > len(s.data) {
		panic(fmt.Sprintf("packed: insert index %d out of range [0,%d]", i, s.Size()))
	}
	s.data = append(s.data, make([]byte, w)...)
	copy(s.data[off+w:], s.data[off:])
	s.put(off, v)
}

// Copy returns an independent sequence; mutating either side is never
// observable through the other.
func (s *Sequence) Copy() *Sequence {
	c := NewSequenceLen(s.width, s.Size())
	copy(c.data, s.data)
	return c
}

// ToUint8s exports every element truncated or zero-extended to uint8.
func (s *Sequence) ToUint8s() []uint8 {
	out := make([]uint8, s.Size())
	for i := range out {
		out[i] = uint8(s.Get(i))
	}
	return out
}

// ToUint16s exports every element truncated or zero-extended to uint16.
func (s *Sequence) ToUint16s() []uint16 {
	out := make([]uint16, s.Size())
	for i := range out {
		out[i] = uint16(s.Get(i))
	}
	return out
}

// ToUint32s exports every element truncated or zero-extended to uint32.
func (s *Sequence) ToUint32s() []uint32 {
	out := make([]uint32, s.Size())
	for i := range out {
		out[i] = uint32(s.Get(i))
	}
	return out
}

// ToUint64s exports every element zero-extended to uint64.
func (s *Sequence) ToUint64s() []uint64 {
	out := make([]uint64, s.Size())
	for i := range out {
		out[i] = s.Get(i)
	}
	return out
}

// Freeze transfers the backing storage into an immutable Frozen view and
// marks the receiver frozen: any further mutation through it panics.
func (s *Sequence) Freeze() *Frozen {
	s.frozen = true
	return &Frozen{width: s.width, data: s.data}
}

// Frozen is an immutable packed sequence. It has no mutating operations and
// is safe for unsynchronized concurrent reads.
type Frozen struct {
	width Width
	data  []byte
}

// Size returns the number of elements.
func (f *Frozen) Size() int {
	return len(f.data) / int(f.width)
}

// Width returns the element storage width.
func (f *Frozen) Width() Width {
	return f.width
}

// Get returns element i zero-extended to uint64.
func (f *Frozen) Get(i int) uint64 {
	off := i * int(f.width)
	switch f.width {
	case W1:
		return uint64(f.data[off])
	case W2:
		return uint64(binary.LittleEndian.Uint16(f.data[off:]))
	case W4:
		return uint64(binary.LittleEndian.Uint32(f.data[off:]))
	default:
		return binary.LittleEndian.Uint64(f.data[off:])
	}
}

// Thaw returns an independent mutable copy.
func (f *Frozen) Thaw() *Sequence {
	s := NewSequenceLen(f.width, f.Size())
	copy(s.data, f.data)
	return s
}

// ToUint64s exports every element zero-extended to uint64.
func (f *Frozen) ToUint64s() []uint64 {
	out := make([]uint64, f.Size())
	for i := range out {
		out[i] = f.Get(i)
	}
	return out
}
