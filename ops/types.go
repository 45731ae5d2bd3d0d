package ops

type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}
