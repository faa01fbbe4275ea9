package sigslot

import "golang.org/x/exp/constraints"

// Number is the constraint of Sum and Product.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up results: Reduce(Sum[int]).
func Sum[R Number](acc, result R) R {
	return acc + result
}

// Product multiplies results. Seed it with one: ReduceFrom(1, Product[int]).
func Product[R Number](acc, result R) R {
	return acc * result
}

// Max keeps the greatest result. With Reduce the zero value takes part in
// the comparison, use ReduceFrom to pick another seed.
func Max[R constraints.Ordered](acc, result R) R {
	return max(acc, result)
}

// Min keeps the smallest result. See Max about the seed.
func Min[R constraints.Ordered](acc, result R) R {
	return min(acc, result)
}

// NotZero reports whether result is not the zero value of R.
// Until(NotZero[bool]) stops at the first slot returning false.
func NotZero[R comparable](result R) bool {
	var zero R
	return result != zero
}
