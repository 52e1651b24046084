package sorting

import "cmp"

// Bubble sorts by repeatedly swapping adjacent out-of-order pairs.
// O(n²) time, O(n) space for the copy.
func Bubble[T cmp.Ordered](in []T) []T {
	out := clone(in)
	n := len(out)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
			}
		}
	}

	return out
}

// Selection sorts by repeatedly moving the minimum of the unsorted suffix
// into place. O(n²) time.
func Selection[T cmp.Ordered](in []T) []T {
	out := clone(in)
	n := len(out)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if out[j] < out[minIdx] {
				minIdx = j
			}
		}
		out[i], out[minIdx] = out[minIdx], out[i]
	}

	return out
}

// Insertion sorts by growing a sorted prefix one element at a time.
// O(n²) worst case, O(n) on nearly-sorted input.
func Insertion[T cmp.Ordered](in []T) []T {
	out := clone(in)
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && out[j] > key {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}

	return out
}

// Merge sorts by recursive halving and merging. O(n log n) time, O(n)
// space. The merge keeps left-half elements first on ties, so the sort is
// stable.
func Merge[T cmp.Ordered](in []T) []T {
	if len(in) <= 1 {
		return clone(in)
	}

	mid := len(in) / 2
	left := Merge(in[:mid])
	right := Merge(in[mid:])

	out := make([]T, 0, len(in))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	return out
}
