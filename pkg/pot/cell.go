// Package pot 实现花盆构建器的核心几何流水线
//
// 玩家在固定网格上放置单位格子（墙体），本包负责判断这些格子是否组成一个
// 顶部开口的容器，并计算需要填充泥土的内部区域。
//
// 流水线（每次编辑或缩放后从头重新计算）：
//
//	ProjectRows → DetectSides / DetectBases → Validate → TraceRegions → FillSoil
//
// 坐标系与屏幕一致：X 向右递增，Y 向下递增，因此"向上"意味着 Y 减小。
package pot

// 网格基础参数
const (
	// BaseCellWidth 是缩放级别为 1 时单位格子的宽度
	BaseCellWidth = 9
	// BaseCellHeight 是缩放级别为 1 时单位格子的高度
	BaseCellHeight = 8

	// MinZoom / MaxZoom 是缩放级别的循环范围
	MinZoom = 1
	MaxZoom = 5
)

// Cell 是构建网格上的一个轴对齐矩形
// 尺寸始终与当前缩放级别一致：(CellWidth·z, CellHeight·z)
type Cell struct {
	X, Y int // 左上角坐标
	W, H int // 宽高
}

// Contains 检查点 (px, py) 是否落在格子内（左闭右开）
func (c Cell) Contains(px, py int) bool {
	return px >= c.X && px < c.X+c.W && py >= c.Y && py < c.Y+c.H
}

// SameSlot 检查两个格子是否占据同一个网格位置
func (c Cell) SameSlot(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// Metrics 描述当前缩放级别下单位格子的尺寸
// 所有检测器都以 CellWidth 作为相邻判定阈值、以 CellHeight 作为行间距
type Metrics struct {
	CellWidth  int
	CellHeight int
}

// Cell 在 (x, y) 处创建一个当前尺寸的单位格子
func (m Metrics) Cell(x, y int) Cell {
	return Cell{X: x, Y: y, W: m.CellWidth, H: m.CellHeight}
}
