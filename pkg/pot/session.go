package pot

import (
	"fmt"
	"log"
)

// Snapshot 是提供给渲染器的只读快照
type Snapshot struct {
	Zoom      int
	Metrics   Metrics
	BuildArea []Cell
	Pot       []Cell
	Soil      []Cell
}

// Session 是一次花盆编辑会话的显式上下文
//
// 会话独占可建造区域、墙体和泥土集合；会话结束时随之丢弃。
// 所有方法都在同一帧循环中调用，不支持并发访问。
type Session struct {
	opts Options
	grid *Grid
}

// NewSession 创建编辑会话
func NewSession(opts Options) *Session {
	return &Session{
		opts: opts,
		grid: NewGrid(opts),
	}
}

// Grid 返回会话持有的网格
func (s *Session) Grid() *Grid {
	return s.grid
}

// AddCellAt 在指定位置放置墙体，返回是否发生了结构变化
func (s *Session) AddCellAt(x, y int) bool {
	return s.grid.AddCell(x, y)
}

// RemoveCellAt 移除指定位置的墙体，返回是否发生了结构变化
func (s *Session) RemoveCellAt(x, y int) bool {
	return s.grid.RemoveCell(x, y)
}

// ZoomIn 放大一级
func (s *Session) ZoomIn() {
	s.grid.ZoomIn()
	log.Printf("[PotSession] Zoom -> %d", s.grid.Zoom())
}

// ZoomOut 缩小一级
func (s *Session) ZoomOut() {
	s.grid.ZoomOut()
	log.Printf("[PotSession] Zoom -> %d", s.grid.Zoom())
}

// Pan 平移视图
func (s *Session) Pan(dx, dy int) {
	s.grid.Pan(dx, dy)
}

// Recompute 从头重新计算泥土区域
//
// 校验失败时清空泥土；追踪超过迭代上限时返回错误，并保留上一次成功计算的泥土。
func (s *Session) Recompute() error {
	cells := s.grid.pot
	m := s.grid.Metrics()

	rows := ProjectRows(cells)
	sides := DetectSides(rows, m.CellWidth)
	bases := DetectBases(rows, m.CellWidth, s.opts.BaseThresholds)

	if !Validate(len(cells), sides, bases) {
		s.grid.ReplaceSoil(nil)
		return nil
	}

	regions, err := TraceRegions(sides, bases, m, s.opts.MaxTraceIterations)
	if err != nil {
		return fmt.Errorf("recompute soil: %w", err)
	}

	soil := FillSoil(regions, m)
	s.grid.ReplaceSoil(soil)
	log.Printf("[PotSession] %d sides rows, %d base rows, %d regions, %d soil cells",
		sides.Len(), bases.Len(), len(regions), len(soil))
	return nil
}

// Snapshot 返回当前状态的只读副本
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Zoom:      s.grid.Zoom(),
		Metrics:   s.grid.Metrics(),
		BuildArea: s.grid.BuildArea(),
		Pot:       s.grid.PotCells(),
		Soil:      s.grid.SoilCells(),
	}
}
