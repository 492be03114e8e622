package util

import (
	"golang.org/x/exp/constraints"
)

// AssertPanic guards logical invariants of the oracle. A failing assertion
// means the checker itself is wrong, so there is nothing to recover.
func AssertPanic(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

func Abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr))
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

// UniqueSorted drops consecutive duplicates from a sorted slice.
func UniqueSorted[T constraints.Ordered](arr []T) []T {
	out := make([]T, 0, len(arr))
	for i, v := range arr {
		if i > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}
