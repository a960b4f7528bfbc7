// Package routesort provides comparator-driven, in-place sorting with an
// explicit stability contract, used to order route collections.
//
// Two algorithms are exposed:
//
//   - Stable:   merge sort. O(n log n) in all cases, O(n) auxiliary space.
//     Elements that compare equal keep their original relative order,
//     guaranteed by taking the left element on ties during the merge.
//   - Unstable: quicksort with Lomuto partitioning around the last element of
//     each subrange. O(n log n) average, O(n²) on already-sorted or
//     adversarial input (a known property of the fixed pivot rule, accepted,
//     not a bug). O(log n) auxiliary space for recursion. Equal elements may
//     be reordered.
//
// Both are silent no-ops on nil, empty, or single-element input.
package routesort
