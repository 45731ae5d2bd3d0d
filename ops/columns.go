package ops

// CollectColumnBiggerOrEqual matches rows where a[i] >= b[i] and both
// sides are valid. Used for cross-column sanity checks such as
// "under-5 mortality >= infant mortality".
func CollectColumnBiggerOrEqual[T Numeric](a, b []T, validA, validB []bool, out []int32) int {
	filled := 0
	for i := range a {
		if validA[i] && validB[i] && a[i] >= b[i] {
			out[filled] = int32(i)
			filled++
		}
	}
	return filled
}

// CollectValid matches every non-null row.
func CollectValid(valid []bool, out []int32) int {
	filled := 0
	for i, v := range valid {
		if v {
			out[filled] = int32(i)
			filled++
		}
	}
	return filled
}

// CollectNonEmptyStrings matches rows with a valid, non-blank string.
func CollectNonEmptyStrings(arr []string, valid []bool, out []int32) int {
	filled := 0
	for i, s := range arr {
		if valid[i] && s != "" {
			out[filled] = int32(i)
			filled++
		}
	}
	return filled
}
