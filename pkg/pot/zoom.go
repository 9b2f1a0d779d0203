package pot

import "math"

// ZoomIn 放大一级
func (g *Grid) ZoomIn() {
	g.ZoomBy(1)
}

// ZoomOut 缩小一级
func (g *Grid) ZoomOut() {
	g.ZoomBy(-1)
}

// ZoomBy 在 [MinZoom, MaxZoom] 内循环调整缩放级别，并以画布中心为锚点
// 重新缩放可建造区域、墙体和泥土中的每一个格子
//
// 先用旧缩放级别的倒数把坐标还原到缩放级别 1，再乘以新的缩放级别，
// 因此放大后再缩小可以在取整误差内还原原始几何。
func (g *Grid) ZoomBy(step int) {
	prev := g.zoom
	next := wrapZoom(prev+step, g.opts.MinZoom, g.opts.MaxZoom)
	if next == prev {
		return
	}

	cx, cy := g.opts.CanvasWidth/2, g.opts.CanvasHeight/2
	for _, cells := range [][]Cell{g.buildArea, g.pot, g.soil} {
		for i := range cells {
			cells[i] = rescaleCell(cells[i], cx, cy, prev, next)
		}
	}
	g.zoom = next
}

// wrapZoom 将缩放级别循环限制在 [lo, hi] 内，越过任一端时回绕
func wrapZoom(z, lo, hi int) int {
	n := hi - lo + 1
	if n <= 0 {
		return lo
	}
	return ((z-lo)%n+n)%n + lo
}

// rescaleCell 以 (cx, cy) 为中心把格子从缩放级别 prev 变换到 next
func rescaleCell(c Cell, cx, cy, prev, next int) Cell {
	c.X = scaleCoord(c.X-cx, prev, next) + cx
	c.Y = scaleCoord(c.Y-cy, prev, next) + cy
	c.W = c.W / prev * next
	c.H = c.H / prev * next
	return c
}

// scaleCoord 对中心相对坐标做逆缩放（向上取整）再正向缩放
func scaleCoord(rel, prev, next int) int {
	unit := int(math.Ceil(float64(rel) / float64(prev)))
	return unit * next
}

// Pan 将所有格子平移 (dx, dy) 个当前尺寸的格子
// 检测只依赖坐标差，所以平移不会改变检测结果
func (g *Grid) Pan(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	m := g.Metrics()
	offX, offY := dx*m.CellWidth, dy*m.CellHeight
	for _, cells := range [][]Cell{g.buildArea, g.pot, g.soil} {
		for i := range cells {
			cells[i].X += offX
			cells[i].Y += offY
		}
	}
}
