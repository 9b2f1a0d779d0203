package pot

// FillSoil 为每个空腔生成泥土格子
// 每一对缺口从 left + 格宽 开始向右逐格放置，直到 right 之前为止
func FillSoil(regions []GapRegion, m Metrics) []Cell {
	var soil []Cell
	for _, region := range regions {
		for _, y := range region.Rows.ys {
			for _, side := range region.Rows.data[y] {
				for x := side.Left + m.CellWidth; x < side.Right; x += m.CellWidth {
					soil = append(soil, m.Cell(x, y))
				}
			}
		}
	}
	return soil
}
