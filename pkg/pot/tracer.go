package pot

import (
	"errors"
	"fmt"
)

// DefaultMaxTraceIterations 是单次向上追踪允许的最大步数
const DefaultMaxTraceIterations = 1000

// ErrMalformedTraceLoop 表示向上追踪超过了迭代上限
// 这说明墙体拓扑无法被算法解析，属于致命错误而非可恢复的情况
var ErrMalformedTraceLoop = errors.New("pot: malformed trace loop")

// TraceLoopError 携带追踪失败时的上下文
// 可用 errors.Is(err, ErrMalformedTraceLoop) 判断
type TraceLoopError struct {
	Corner     Corner // 追踪起点
	Row        int    // 中止时所在的行
	Iterations int    // 已执行的步数
}

func (e *TraceLoopError) Error() string {
	return fmt.Sprintf("%v: corner (%d,%d) at row %d, stopped at row %d after %d steps",
		ErrMalformedTraceLoop, e.Corner.Side.Left, e.Corner.Side.Right, e.Corner.Y, e.Row, e.Iterations)
}

func (e *TraceLoopError) Unwrap() error {
	return ErrMalformedTraceLoop
}

// Corner 是底座与其正上方一行缺口的配对
// Y 是缺口所在的行（即底座上方一行）
type Corner struct {
	Y    int
	Side Side
}

// GapRegion 是拐角上方追踪出的空腔，按行保存缺口对
type GapRegion struct {
	Corner Corner
	Rows   *Rows[Side]
}

// FindCorners 为每个底座查找正上方一行中两端都落在底座范围内的缺口
// 结果按底座行从上到下、行内从左到右排列
func FindCorners(sides *Rows[Side], bases *Rows[Base], m Metrics) []Corner {
	var corners []Corner
	for _, y := range bases.ys {
		above := y - m.CellHeight
		if !sides.Has(above) {
			continue
		}
		for _, base := range bases.data[y] {
			for _, side := range sides.data[above] {
				if base.Covers(side.Left) && base.Covers(side.Right) {
					corners = append(corners, Corner{Y: above, Side: side})
				}
			}
		}
	}
	return corners
}

// TraceRegions 从每个拐角向上追踪空腔，并丢弃被上方底座完全封闭的空腔
//
// 每一步接受与拐角缺口在一个格宽容差内的缺口对，然后上移一行，
// 直到上方不再有缺口行。步数超过 maxIterations 时返回 *TraceLoopError，
// 不返回任何部分结果。
func TraceRegions(sides *Rows[Side], bases *Rows[Base], m Metrics, maxIterations int) ([]GapRegion, error) {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxTraceIterations
	}

	var regions []GapRegion
	for _, corner := range FindCorners(sides, bases, m) {
		region, open, err := traceCorner(corner, sides, bases, m, maxIterations)
		if err != nil {
			return nil, err
		}
		if open {
			regions = append(regions, region)
		}
	}
	return regions, nil
}

// traceCorner 追踪单个拐角，返回空腔以及它是否顶部开口
func traceCorner(corner Corner, sides *Rows[Side], bases *Rows[Base], m Metrics, maxIterations int) (GapRegion, bool, error) {
	region := GapRegion{Corner: corner, Rows: NewRows[Side]()}

	y := corner.Y
	for steps := 0; sides.Has(y); steps++ {
		if steps >= maxIterations {
			return GapRegion{}, false, &TraceLoopError{Corner: corner, Row: y, Iterations: steps}
		}
		for _, side := range sides.data[y] {
			if side.Left <= corner.Side.Left+m.CellWidth && corner.Side.Right-m.CellWidth <= side.Right {
				region.Rows.Append(y, side)
			}
		}
		y -= m.CellHeight
	}

	// 最上面一行缺口的正上方有底座时，只有存在一个两端都与缺口错开的底座才算开口；
	// 任何一端与缺口对齐的底座都视为盖住了空腔
	top := y + m.CellHeight
	pairs := region.Rows.Get(top)
	lids := bases.Get(top - m.CellHeight)
	if len(pairs) == 0 || len(lids) == 0 {
		return region, true, nil
	}
	for _, side := range pairs {
		for _, lid := range lids {
			if lid.First() != side.Left && lid.Last() != side.Right {
				return region, true, nil
			}
		}
	}
	return region, false, nil
}
