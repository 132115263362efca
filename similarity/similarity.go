// Package similarity 计算余弦相似度：物品×物品的预计算矩阵，以及单个查询向量对全语料的相似度行。
//
// 输入向量已做 L2 归一化，余弦相似度即点积。所有操作只读、无副作用，可并发调用。
package similarity

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/gamerec/feature"
)

// Matrix 是稠密、对称的相似度矩阵，值域 [0,1]，对角线恒为 1。构建后只读。
type Matrix struct {
	n    int
	data []float64
}

// Build 并发计算上三角并镜像到下三角。
// workers <= 0 时使用 GOMAXPROCS。每个单元格的求和顺序固定，结果与 workers 无关。
func Build(vectors []feature.Vector, workers int) *Matrix {
	n := len(vectors)
	m := &Matrix{n: n, data: make([]float64, n*n)}
	if n == 0 {
		return m
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	// 行 i 的任务只写 (i, j) 与 (j, i)，j >= i，不同任务之间没有重叠
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < n; i += workers {
				m.data[i*n+i] = 1
				for j := i + 1; j < n; j++ {
					s := Dot(vectors[i], vectors[j])
					m.data[i*n+j] = s
					m.data[j*n+i] = s
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return m
}

// Size 返回矩阵边长。
func (m *Matrix) Size() int { return m.n }

// Shape 返回 [行数, 列数]。
func (m *Matrix) Shape() [2]int { return [2]int{m.n, m.n} }

// At 返回 (i, j) 的相似度。
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Row 返回第 i 行的副本。
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])
	return out
}

// ToCorpus 计算查询向量与每个语料向量的相似度，不触碰预计算矩阵。
func ToCorpus(q feature.Vector, vectors []feature.Vector) []float64 {
	out := make([]float64, len(vectors))
	if q.IsZero() {
		return out
	}
	for i, v := range vectors {
		out[i] = Dot(q, v)
	}
	return out
}

// Dot 计算两个稀疏向量的点积（有序归并），结果截断到 [0,1]。
func Dot(a, b feature.Vector) float64 {
	var s float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			s += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return clamp(s)
}

// 浮点误差可能让归一化向量的点积略超出 [0,1]
func clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
