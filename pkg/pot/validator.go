package pot

// Validate 是进入区域追踪前的必要条件检查
//
// 只有墙体非空、至少存在一个缺口且至少存在一个底座时才返回 true。
// 返回 true 并不代表一定能填土，真正的封闭判断由 TraceRegions 完成。
func Validate(cellCount int, sides *Rows[Side], bases *Rows[Base]) bool {
	if cellCount < 1 {
		return false
	}
	if sides == nil || sides.Len() < 1 {
		return false
	}
	if bases == nil || bases.Len() < 1 {
		return false
	}
	return true
}
