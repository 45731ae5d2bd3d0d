package lists

// Intersect writes the common elements of a and b into out and returns
// the fill count. Inputs must be sorted ascending, output stays
// ascending. cache is caller-owned scratch so repeated calls do not
// allocate.
func Intersect[T int32 | uint16 | uint64](a, b, out []T, cache map[T]uint8) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	clear(cache)
	var other []T

	if len(a) < len(b) {
		other = b
		for _, v := range a {
			cache[v] = 0
		}
	} else {
		other = a
		for _, v := range b {
			cache[v] = 0
		}
	}

	filled := 0
	for _, v := range other {
		if _, ok := cache[v]; ok {
			out[filled] = v
			filled++
		}
	}

	return filled
}

// IntersectSorted is the allocation-free merge variant for two
// ascending lists.
func IntersectSorted[T int32 | uint16 | uint64](a, b, out []T) int {
	filled := 0
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out[filled] = a[i]
			filled++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return filled
}
