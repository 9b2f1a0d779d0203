package scenes

import "log"

// Tool 是花盆构建器侧边栏中的工具
type Tool int

const (
	ToolAddWall Tool = iota
	ToolRemoveWall
	ToolZoomIn
	ToolZoomOut

	toolCount
)

// String 返回工具名称（用于日志和状态栏）
func (t Tool) String() string {
	switch t {
	case ToolAddWall:
		return "AddWall"
	case ToolRemoveWall:
		return "RemoveWall"
	case ToolZoomIn:
		return "ZoomIn"
	case ToolZoomOut:
		return "ZoomOut"
	}
	return "Unknown"
}

// Label 返回侧边栏图标上的简短标签
func (t Tool) Label() string {
	switch t {
	case ToolAddWall:
		return "+"
	case ToolRemoveWall:
		return "-"
	case ToolZoomIn:
		return "Z+"
	case ToolZoomOut:
		return "Z-"
	}
	return "?"
}

// Valid 检查工具索引是否有效
func (t Tool) Valid() bool {
	return t >= ToolAddWall && t < toolCount
}

// Instant 缩放类工具在点击侧边栏图标时立即生效，而不是作用于网格
func (t Tool) Instant() bool {
	return t == ToolZoomIn || t == ToolZoomOut
}

// PotEditor 是工具可以作用的编辑目标
type PotEditor interface {
	AddCellAt(x, y int) bool
	RemoveCellAt(x, y int) bool
	ZoomIn()
	ZoomOut()
}

// ToolMachine 工具状态机
//
// 侧边栏选择切换当前工具；每次点击分发给当前工具对应的动作。
// 任何结构变化或缩放都会标记"需要重新计算泥土"，每帧最多消费一次。
type ToolMachine struct {
	active    Tool
	recompute bool
}

// NewToolMachine 创建状态机，无效的初始工具回退到 ToolAddWall
func NewToolMachine(initial Tool) *ToolMachine {
	if !initial.Valid() {
		initial = ToolAddWall
	}
	return &ToolMachine{active: initial}
}

// Active 返回当前工具
func (m *ToolMachine) Active() Tool {
	return m.active
}

// Select 切换当前工具，返回是否发生了变化
func (m *ToolMachine) Select(t Tool) bool {
	if !t.Valid() || t == m.active {
		return false
	}
	log.Printf("[ToolMachine] %s -> %s", m.active, t)
	m.active = t
	return true
}

// Apply 在 (x, y) 处执行当前工具的动作，返回是否改变了编辑目标
func (m *ToolMachine) Apply(editor PotEditor, x, y int) bool {
	changed := false
	switch m.active {
	case ToolAddWall:
		changed = editor.AddCellAt(x, y)
	case ToolRemoveWall:
		changed = editor.RemoveCellAt(x, y)
	case ToolZoomIn:
		editor.ZoomIn()
		changed = true
	case ToolZoomOut:
		editor.ZoomOut()
		changed = true
	}
	if changed {
		m.recompute = true
	}
	return changed
}

// MarkRecompute 标记需要重新计算泥土
func (m *ToolMachine) MarkRecompute() {
	m.recompute = true
}

// ConsumeRecompute 读取并清除重新计算标记
func (m *ToolMachine) ConsumeRecompute() bool {
	pending := m.recompute
	m.recompute = false
	return pending
}
