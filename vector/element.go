// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/exp/constraints"

// Element is the set of numeric kinds a Vector can hold.
// Every member supports +, -, * and ==, which is all the arithmetic needs.
type Element interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
