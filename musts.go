package bigdec

import "fmt"

// MustCmp is like [Decimal.Cmp] but panics if the comparison is
// undefined.
func (d Decimal) MustCmp(e Decimal) int {
	r, err := d.Cmp(e)
	if err != nil {
		panic(fmt.Sprintf("MustCmp(%v, %v) failed: %v", d, e, err))
	}
	return r
}

// MustEqual is like [Decimal.Equal] but panics if the comparison is
// undefined.
func (d Decimal) MustEqual(e Decimal) bool {
	eq, err := d.Equal(e)
	if err != nil {
		panic(fmt.Sprintf("MustEqual(%v, %v) failed: %v", d, e, err))
	}
	return eq
}
