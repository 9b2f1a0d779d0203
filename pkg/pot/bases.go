package pot

// 底座最小长度阈值
//
// 历史上"第一个底座"和"后续底座"使用两个不同的阈值名，但取值相同。
// 两者都保留，以维持完全一致的可观察行为：底座长度必须严格大于阈值。
const (
	FirstBaseMinRun = 2
	BaseMinRun      = 2
)

// Base 是一行中相互相邻的墙体格子组成的连续段，可作为花盆底部
type Base struct {
	Xs []int
}

// First 返回底座最左侧格子的 X 坐标
func (b Base) First() int { return b.Xs[0] }

// Last 返回底座最右侧格子的 X 坐标
func (b Base) Last() int { return b.Xs[len(b.Xs)-1] }

// Covers 检查 x 是否落在底座覆盖的范围 [First, Last] 内
func (b Base) Covers(x int) bool {
	return x >= b.First() && x <= b.Last()
}

// BaseThresholds 是底座最小长度阈值
type BaseThresholds struct {
	First      int // 尚未找到任何底座时使用
	Subsequent int // 已找到至少一个底座后使用
}

// DefaultBaseThresholds 返回默认阈值
func DefaultBaseThresholds() BaseThresholds {
	return BaseThresholds{First: FirstBaseMinRun, Subsequent: BaseMinRun}
}

// DetectBases 逐行扫描，累积间距不超过一个格宽的连续段
//
// 遇到更大的间距或行尾时结束当前段，段长度超过阈值才记录为底座。
// 结果为空表示"没有底部"。
func DetectBases(rows *Rows[int], cellWidth int, th BaseThresholds) *Rows[Base] {
	bases := NewRows[Base]()
	for _, y := range rows.ys {
		xs := rows.data[y]
		var run []int

		flush := func() {
			minRun := th.First
			if bases.Len() > 0 {
				minRun = th.Subsequent
			}
			if len(run) > minRun {
				bases.Append(y, Base{Xs: run})
			}
			run = nil
		}

		for i := 0; i+1 < len(xs); i++ {
			if xs[i+1]-xs[i] <= cellWidth {
				if len(run) == 0 {
					run = append(run, xs[i])
				}
				run = append(run, xs[i+1])
			} else {
				flush()
			}
		}
		flush()
	}
	return bases
}
