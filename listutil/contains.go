package listutil

import "slices"

// Contains reports whether slice contains given element.
func Contains[T comparable](s []T, element T) bool {
	return slices.Contains(s, element)
}

// ContainsAny reports whether slice contains at least one of elements.
func ContainsAny[T comparable](s, elements []T) bool {
	return len(Subtract(elements, s)) < len(elements)
}

// ContainsAll reports whether slice contains every element of elements,
// order independent.
func ContainsAll[T comparable](s, elements []T) bool {
	return len(Subtract(elements, s)) == 0
}
