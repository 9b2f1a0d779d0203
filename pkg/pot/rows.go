package pot

import "slices"

// Rows 是按行 Y 坐标升序排列的有序映射
//
// 行、墙缝、底座、拐角和空腔都按行存储。RegionTracer 的向上追踪依赖
// 从上到下的固定行序，因此这里显式维护有序的行键，而不是依赖 map 的遍历顺序。
type Rows[T any] struct {
	ys   []int
	data map[int][]T
}

// NewRows 创建一个空的有序行映射
func NewRows[T any]() *Rows[T] {
	return &Rows[T]{data: make(map[int][]T)}
}

// Append 将值追加到第 y 行，必要时按序插入新行
func (r *Rows[T]) Append(y int, values ...T) {
	if _, ok := r.data[y]; !ok {
		i, _ := slices.BinarySearch(r.ys, y)
		r.ys = slices.Insert(r.ys, i, y)
	}
	r.data[y] = append(r.data[y], values...)
}

// Get 返回第 y 行的值，行不存在时返回 nil
func (r *Rows[T]) Get(y int) []T {
	return r.data[y]
}

// Has 检查第 y 行是否存在
func (r *Rows[T]) Has(y int) bool {
	_, ok := r.data[y]
	return ok
}

// Ys 返回所有行的 Y 坐标（升序，即屏幕从上到下）
func (r *Rows[T]) Ys() []int {
	return slices.Clone(r.ys)
}

// Len 返回行数
func (r *Rows[T]) Len() int {
	return len(r.ys)
}

// ProjectRows 将墙体格子按行分组，每行得到升序排列的 X 坐标列表
func ProjectRows(cells []Cell) *Rows[int] {
	rows := NewRows[int]()
	for _, c := range cells {
		rows.Append(c.Y, c.X)
	}
	for _, y := range rows.ys {
		slices.Sort(rows.data[y])
	}
	return rows
}
