package feature

import "math"

// Vector 是稀疏向量：Indices 严格升序，Values 与之一一对应。
// Transform 产出的向量 L2 范数为 1（零向量除外）。
type Vector struct {
	Indices []int
	Values  []float64
}

// NNZ 返回非零元素个数。
func (v Vector) NNZ() int { return len(v.Indices) }

// IsZero 判断是否为零向量。
func (v Vector) IsZero() bool { return len(v.Indices) == 0 }

// Norm 返回 L2 范数。
func (v Vector) Norm() float64 {
	var sq float64
	for _, x := range v.Values {
		sq += x * x
	}
	return math.Sqrt(sq)
}

// Get 返回维度 i 的值。
func (v Vector) Get(i int) float64 {
	lo, hi := 0, len(v.Indices)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case v.Indices[mid] == i:
			return v.Values[mid]
		case v.Indices[mid] < i:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// Dense 展开为长度 dim 的稠密向量。
func (v Vector) Dense(dim int) []float64 {
	out := make([]float64, dim)
	for k, i := range v.Indices {
		if i < dim {
			out[i] = v.Values[k]
		}
	}
	return out
}
