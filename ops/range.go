package ops

// CollectInRangeExclusive writes the indices of rows with
// from < arr[i] < to into out and returns the fill count. Null rows
// (valid[i] == false) never match. Output indices are ascending.
func CollectInRangeExclusive[T Numeric](arr []T, valid []bool, from, to T, out []int32) int {
	if to <= from {
		return 0
	}

	n := len(arr)
	filled := 0
	i := 0

	for ; i+7 < n; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		if a0 > from && a0 < to && valid[i+0] {
			out[filled] = int32(i + 0)
			filled++
		}
		if a1 > from && a1 < to && valid[i+1] {
			out[filled] = int32(i + 1)
			filled++
		}
		if a2 > from && a2 < to && valid[i+2] {
			out[filled] = int32(i + 2)
			filled++
		}
		if a3 > from && a3 < to && valid[i+3] {
			out[filled] = int32(i + 3)
			filled++
		}
		if a4 > from && a4 < to && valid[i+4] {
			out[filled] = int32(i + 4)
			filled++
		}
		if a5 > from && a5 < to && valid[i+5] {
			out[filled] = int32(i + 5)
			filled++
		}
		if a6 > from && a6 < to && valid[i+6] {
			out[filled] = int32(i + 6)
			filled++
		}
		if a7 > from && a7 < to && valid[i+7] {
			out[filled] = int32(i + 7)
			filled++
		}
	}

	// Tail element
	for ; i < n; i++ {
		a := arr[i]
		if a > from && a < to && valid[i] {
			out[filled] = int32(i)
			filled++
		}
	}

	return filled
}

// CollectInRangeInclusive is the from <= arr[i] <= to variant.
func CollectInRangeInclusive[T Numeric](arr []T, valid []bool, from, to T, out []int32) int {
	if to < from {
		return 0
	}

	n := len(arr)
	filled := 0
	i := 0

	for ; i+7 < n; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		if a0 >= from && a0 <= to && valid[i+0] {
			out[filled] = int32(i + 0)
			filled++
		}
		if a1 >= from && a1 <= to && valid[i+1] {
			out[filled] = int32(i + 1)
			filled++
		}
		if a2 >= from && a2 <= to && valid[i+2] {
			out[filled] = int32(i + 2)
			filled++
		}
		if a3 >= from && a3 <= to && valid[i+3] {
			out[filled] = int32(i + 3)
			filled++
		}
		if a4 >= from && a4 <= to && valid[i+4] {
			out[filled] = int32(i + 4)
			filled++
		}
		if a5 >= from && a5 <= to && valid[i+5] {
			out[filled] = int32(i + 5)
			filled++
		}
		if a6 >= from && a6 <= to && valid[i+6] {
			out[filled] = int32(i + 6)
			filled++
		}
		if a7 >= from && a7 <= to && valid[i+7] {
			out[filled] = int32(i + 7)
			filled++
		}
	}

	// Tail element
	for ; i < n; i++ {
		a := arr[i]
		if a >= from && a <= to && valid[i] {
			out[filled] = int32(i)
			filled++
		}
	}

	return filled
}
