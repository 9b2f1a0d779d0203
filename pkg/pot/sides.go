package pot

// Side 是某一行上一对不相邻的墙体格子，标记一个缺口的左右墙
type Side struct {
	Left  int
	Right int
}

// DetectSides 逐行扫描，找出所有相邻 X 间距不恰好等于一个格宽的墙体对
//
// 每找到一对 (left, right) 就立即记录并重置，继续向右查找下一对。
// 没有缺口的行不会出现在结果中。
func DetectSides(rows *Rows[int], cellWidth int) *Rows[Side] {
	sides := NewRows[Side]()
	for _, y := range rows.ys {
		xs := rows.data[y]
		for i := 0; i+1 < len(xs); i++ {
			if xs[i]+cellWidth != xs[i+1] {
				sides.Append(y, Side{Left: xs[i], Right: xs[i+1]})
			}
		}
	}
	return sides
}
