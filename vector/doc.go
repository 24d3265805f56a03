// Package vector provides Vector[T], an owning, bounded, index-offsettable
// 1-D container of numeric elements with value semantics.
//
// A Vector holds Size() elements addressed by the logical indices
// [StartIndex(), StartIndex()+Size()). Storage is always 0-based internally;
// logical index k lives in physical slot k-StartIndex().
//
// Value semantics:
//
//   - New and FromSlice allocate fresh storage.
//   - Clone and Assign deep-copy; two vectors never share storage.
//   - Equal compares size, start index and every element.
//
// Arithmetic never mutates its operands; each operation returns a new Vector:
//
//	AddScalar, SubScalar, MulScalar   element-wise with a scalar
//	Add, Sub                          element-wise with an equally sized vector
//	Dot                               sum of element-wise products
//
// Binary operations fail with ErrSizeMismatch when sizes differ. The result of a
// binary operation keeps the receiver's start index.
//
//	v, _ := vector.New[int](5)
//	for k := 0; k < v.Size(); k++ {
//		_ = v.Set(k, k)
//	}
//	dot, _ := v.Dot(v) // 30
package vector
