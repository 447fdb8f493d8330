// Package packed provides an ordered, appendable sequence of unsigned
// integers whose per-element storage width (1, 2, 4 or 8 bytes) is fixed at
// construction, independent of the integer type callers hand in.
//
// Values are truncated to the storage width on every write and zero-extended
// on every read; no overflow is signalled. This masking contract is what lets
// callers store 64-bit curve distances densely when the curve's range is known
// to be small.
//
//	s := packed.NewSequence(packed.W2)
//	s.Append(65535)
//	s.AppendRange(0, 100)
//	v := s.Get(0) // 65535, zero-extended uint64
//
// A Sequence is not safe for concurrent mutation. Freeze converts it into an
// immutable Frozen view that is safe for unsynchronized concurrent reads.
package packed
