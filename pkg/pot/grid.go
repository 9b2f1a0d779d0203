package pot

import "log"

// BuildAreaLayout 描述可建造区域在画布中的边距（以格子为单位）
type BuildAreaLayout struct {
	SideColumns int // 左右两侧留空的列数
	TopRows     int // 顶部留空的行数
	BottomRows  int // 底部留空的行数
}

// Options 是编辑会话的固定配置
type Options struct {
	CanvasWidth  int
	CanvasHeight int

	CellWidth  int // 缩放级别 1 下的格宽
	CellHeight int // 缩放级别 1 下的格高

	MinZoom int
	MaxZoom int

	BaseThresholds     BaseThresholds
	MaxTraceIterations int

	BuildArea BuildAreaLayout
}

// DefaultOptions 返回与原版画布一致的默认配置
// 854x480 画布上得到 42 列 x 15 行的可建造区域
func DefaultOptions() Options {
	return Options{
		CanvasWidth:        854,
		CanvasHeight:       480,
		CellWidth:          BaseCellWidth,
		CellHeight:         BaseCellHeight,
		MinZoom:            MinZoom,
		MaxZoom:            MaxZoom,
		BaseThresholds:     DefaultBaseThresholds(),
		MaxTraceIterations: DefaultMaxTraceIterations,
		BuildArea: BuildAreaLayout{
			SideColumns: 27,
			TopRows:     45,
			BottomRows:  2,
		},
	}
}

// Grid 持有可建造区域、已放置的墙体和派生的泥土格子
//
// 三个集合中的所有格子始终与当前缩放级别保持一致。
type Grid struct {
	opts      Options
	zoom      int
	buildArea []Cell
	pot       []Cell
	soil      []Cell
}

// NewGrid 创建网格并根据画布尺寸生成可建造区域
//
// 可建造区域先按缩放级别 1 生成，再以画布中心缩放到起始级别 MinZoom，
// 保证所有格子从一开始就与 Metrics() 一致。
func NewGrid(opts Options) *Grid {
	if opts.MinZoom < 1 {
		opts.MinZoom = 1
	}
	if opts.MaxZoom < opts.MinZoom {
		opts.MaxZoom = opts.MinZoom
	}

	area := GenerateBuildArea(opts)
	if opts.MinZoom > 1 {
		cx, cy := opts.CanvasWidth/2, opts.CanvasHeight/2
		for i := range area {
			area[i] = rescaleCell(area[i], cx, cy, 1, opts.MinZoom)
		}
	}

	return &Grid{
		opts:      opts,
		zoom:      opts.MinZoom,
		buildArea: area,
	}
}

// GenerateBuildArea 按画布尺寸和边距生成缩放级别 1 下的可建造格子
// 格子尺寸不是正数时返回空区域
func GenerateBuildArea(opts Options) []Cell {
	w, h := opts.CellWidth, opts.CellHeight
	if w <= 0 || h <= 0 {
		return nil
	}
	boundX := opts.CanvasWidth + w
	boundY := opts.CanvasHeight + h
	layout := opts.BuildArea

	var area []Cell
	for x := 0; x <= boundX; x += w {
		if x < w*layout.SideColumns || x > boundX-w*layout.SideColumns {
			continue
		}
		for y := h * layout.TopRows; y <= boundY-h*layout.BottomRows; y += h {
			area = append(area, Cell{X: x, Y: y, W: w, H: h})
		}
	}
	return area
}

// Zoom 返回当前缩放级别
func (g *Grid) Zoom() int {
	return g.zoom
}

// Metrics 返回当前缩放级别下的格子尺寸
func (g *Grid) Metrics() Metrics {
	return Metrics{
		CellWidth:  g.opts.CellWidth * g.zoom,
		CellHeight: g.opts.CellHeight * g.zoom,
	}
}

// AddCell 在 (x, y) 所在的可建造格子处放置一块墙体
// 位置不在可建造区域内或已被占用时不做任何事，返回 false
func (g *Grid) AddCell(x, y int) bool {
	slot, ok := closestCell(g.buildArea, x, y)
	if !ok {
		log.Printf("[PotGrid] Ignored placement outside build area at (%d, %d)", x, y)
		return false
	}
	for _, c := range g.pot {
		if c.SameSlot(slot) {
			return false
		}
	}
	g.pot = append(g.pot, slot)
	return true
}

// RemoveCell 移除 (x, y) 处最近的墙体
// 该位置没有墙体时不做任何事，返回 false
func (g *Grid) RemoveCell(x, y int) bool {
	target, ok := closestCell(g.pot, x, y)
	if !ok {
		return false
	}
	for i, c := range g.pot {
		if c.SameSlot(target) {
			g.pot = append(g.pot[:i], g.pot[i+1:]...)
			return true
		}
	}
	return false
}

// PotCells 返回已放置墙体的副本
func (g *Grid) PotCells() []Cell {
	return append([]Cell(nil), g.pot...)
}

// SoilCells 返回泥土格子的副本
func (g *Grid) SoilCells() []Cell {
	return append([]Cell(nil), g.soil...)
}

// BuildArea 返回可建造区域的副本
func (g *Grid) BuildArea() []Cell {
	return append([]Cell(nil), g.buildArea...)
}

// ReplaceSoil 整体替换泥土格子
func (g *Grid) ReplaceSoil(soil []Cell) {
	g.soil = soil
}

// closestCell 在包含点 (x, y) 的格子中选择左上角离该点最近的一个
func closestCell(cells []Cell, x, y int) (Cell, bool) {
	var best Cell
	found := false
	bestDist := 0
	for _, c := range cells {
		if !c.Contains(x, y) {
			continue
		}
		dist := abs(c.X-x) + abs(c.Y-y)
		if !found || dist < bestDist {
			best, bestDist, found = c, dist, true
		}
	}
	return best, found
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
