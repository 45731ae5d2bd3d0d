package ops

// Scalar compare collectors. Same contract as the range collectors:
// ascending indices of valid matching rows written into out, fill
// count returned.

func CollectBigger[T Numeric](arr []T, valid []bool, cmp T, out []int32) int {
	n := len(arr)
	filled := 0
	i := 0

	for ; i+7 < n; i += 8 {
		a0, a1 := arr[i], arr[i+1]
		a2, a3 := arr[i+2], arr[i+3]
		a4, a5 := arr[i+4], arr[i+5]
		a6, a7 := arr[i+6], arr[i+7]

		if a0 > cmp && valid[i] {
			out[filled] = int32(i)
			filled++
		}
		if a1 > cmp && valid[i+1] {
			out[filled] = int32(i + 1)
			filled++
		}
		if a2 > cmp && valid[i+2] {
			out[filled] = int32(i + 2)
			filled++
		}
		if a3 > cmp && valid[i+3] {
			out[filled] = int32(i + 3)
			filled++
		}
		if a4 > cmp && valid[i+4] {
			out[filled] = int32(i + 4)
			filled++
		}
		if a5 > cmp && valid[i+5] {
			out[filled] = int32(i + 5)
			filled++
		}
		if a6 > cmp && valid[i+6] {
			out[filled] = int32(i + 6)
			filled++
		}
		if a7 > cmp && valid[i+7] {
			out[filled] = int32(i + 7)
			filled++
		}
	}

	// Tail element
	for ; i < n; i++ {
		if arr[i] > cmp && valid[i] {
			out[filled] = int32(i)
			filled++
		}
	}
	return filled
}

func CollectBiggerOrEqual[T Numeric](arr []T, valid []bool, cmp T, out []int32) int {
	filled := 0
	for i, a := range arr {
		if a >= cmp && valid[i] {
			out[filled] = int32(i)
			filled++
		}
	}
	return filled
}

func CollectSmaller[T Numeric](arr []T, valid []bool, cmp T, out []int32) int {
	filled := 0
	for i, a := range arr {
		if a < cmp && valid[i] {
			out[filled] = int32(i)
			filled++
		}
	}
	return filled
}

func CollectSmallerOrEqual[T Numeric](arr []T, valid []bool, cmp T, out []int32) int {
	filled := 0
	for i, a := range arr {
		if a <= cmp && valid[i] {
			out[filled] = int32(i)
			filled++
		}
	}
	return filled
}

func CollectEqual[T Numeric](arr []T, valid []bool, cmp T, out []int32) int {
	filled := 0
	for i, a := range arr {
		if a == cmp && valid[i] {
			out[filled] = int32(i)
			filled++
		}
	}
	return filled
}
