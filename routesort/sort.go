package routesort

// Compare is a total order: negative when a sorts before b, zero on a tie,
// positive when a sorts after b.
type Compare[T any] func(a, b T) int

// Stable sorts items in place with merge sort, preserving the relative order
// of elements that compare equal. Nil, empty, and single-element inputs (and
// a nil comparator) are silent no-ops.
func Stable[T any](items []T, cmp Compare[T]) {
	if len(items) <= 1 || cmp == nil {
		return
	}
	mergeSort(items, cmp, 0, len(items)-1)
}

// Unstable sorts items in place with quicksort (Lomuto partition, last
// element as pivot). The same no-op rules as Stable apply.
func Unstable[T any](items []T, cmp Compare[T]) {
	if len(items) <= 1 || cmp == nil {
		return
	}
	quickSort(items, cmp, 0, len(items)-1)
}

// mergeSort recursively splits items[left..right] at the midpoint, sorts each
// half, and merges them.
func mergeSort[T any](items []T, cmp Compare[T], left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(items, cmp, left, mid)
	mergeSort(items, cmp, mid+1, right)
	merge(items, cmp, left, mid, right)
}

// merge combines the sorted halves items[left..mid] and items[mid+1..right].
// The left element is taken whenever cmp(left, right) <= 0; the "<=" is what
// makes the sort stable.
func merge[T any](items []T, cmp Compare[T], left, mid, right int) {
	lo := append([]T(nil), items[left:mid+1]...)
	hi := append([]T(nil), items[mid+1:right+1]...)

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		if cmp(lo[i], hi[j]) <= 0 {
			items[k] = lo[i]
			i++
		} else {
			items[k] = hi[j]
			j++
		}
		k++
	}
	for i < len(lo) {
		items[k] = lo[i]
		i++
		k++
	}
	for j < len(hi) {
		items[k] = hi[j]
		j++
		k++
	}
}

// quickSort recursively partitions items[low..high] and sorts both sides.
func quickSort[T any](items []T, cmp Compare[T], low, high int) {
	if low >= high {
		return
	}
	p := partition(items, cmp, low, high)
	quickSort(items, cmp, low, p-1)
	quickSort(items, cmp, p+1, high)
}

// partition applies the Lomuto scheme around items[high] and returns the
// pivot's final index.
func partition[T any](items []T, cmp Compare[T], low, high int) int {
	pivot := items[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp(items[j], pivot) < 0 {
			i++
			items[i], items[j] = items[j], items[i]
		}
	}
	items[i+1], items[high] = items[high], items[i+1]

	return i + 1
}
