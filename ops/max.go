package ops

type Bounds[T Numeric] struct {
	Min T
	Max T
}

func (b *Bounds[T]) Morph(other Bounds[T]) {
	if other.Min < b.Min {
		b.Min = other.Min
	}
	if other.Max > b.Max {
		b.Max = other.Max
	}
}

// GetMaxMin scans the valid entries of arr. ok is false when every
// entry is null.
func GetMaxMin[T Numeric](arr []T, valid []bool) (bounds Bounds[T], ok bool) {
	for i, v := range arr {
		if !valid[i] {
			continue
		}
		if !ok {
			bounds.Min = v
			bounds.Max = v
			ok = true
			continue
		}
		if v < bounds.Min {
			bounds.Min = v
		}
		if v > bounds.Max {
			bounds.Max = v
		}
	}
	return bounds, ok
}
