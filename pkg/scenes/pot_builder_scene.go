package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/botaneer/pkg/config"
	"github.com/decker502/botaneer/pkg/game"
	"github.com/decker502/botaneer/pkg/pot"
	"github.com/decker502/botaneer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 工具快捷键，索引与 Tool 一致
var toolKeys = [toolCount]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// PotBuilderScene 花盆构建器场景
//
// 持有工具状态机，将点击分发给编辑会话，并在每帧结束时最多重新计算一次泥土。
type PotBuilderScene struct {
	session  *pot.Session
	settings *game.SettingsManager
	cfg      *config.PotBuilderConfig
	tools    *ToolMachine

	// 最近一次重新计算失败的原因，成功后清空
	lastErr error
}

// NewPotBuilderScene 创建花盆构建器场景
// 初始工具取自上次保存的设置
func NewPotBuilderScene(session *pot.Session, settings *game.SettingsManager, cfg *config.PotBuilderConfig) *PotBuilderScene {
	return &PotBuilderScene{
		session:  session,
		settings: settings,
		cfg:      cfg,
		tools:    NewToolMachine(Tool(settings.GetSettings().LastTool)),
	}
}

// Update 处理键盘和指针输入
func (s *PotBuilderScene) Update(deltaTime float64) game.Transition {
	if utils.IsAnyKeyJustPressed(ebiten.KeyTab, ebiten.KeyEscape) {
		return game.GoTo(game.SceneMainView)
	}

	for i, key := range toolKeys {
		if utils.IsAnyKeyJustPressed(key) {
			s.selectTool(Tool(i))
		}
	}
	if utils.IsAnyKeyJustPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd) {
		s.session.ZoomIn()
		s.tools.MarkRecompute()
	}
	if utils.IsAnyKeyJustPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract) {
		s.session.ZoomOut()
		s.tools.MarkRecompute()
	}
	if utils.IsAnyKeyJustPressed(ebiten.KeyG) {
		s.settings.SetShowGrid(!s.settings.GetSettings().ShowGrid)
	}

	s.handlePan()

	if input := utils.GetInputState(); input.JustPressed {
		s.handleClick(input.X, input.Y)
	}

	s.recomputeIfNeeded()
	return game.Stay
}

// handlePan 按住 WASD / 方向键平移视图
func (s *PotBuilderScene) handlePan() {
	interval := s.cfg.PanRepeatTicks
	dx, dy := 0, 0
	if utils.IsAnyKeyRepeating(interval, ebiten.KeyD, ebiten.KeyArrowRight) {
		dx--
	}
	if utils.IsAnyKeyRepeating(interval, ebiten.KeyA, ebiten.KeyArrowLeft) {
		dx++
	}
	if utils.IsAnyKeyRepeating(interval, ebiten.KeyW, ebiten.KeyArrowUp) {
		dy++
	}
	if utils.IsAnyKeyRepeating(interval, ebiten.KeyS, ebiten.KeyArrowDown) {
		dy--
	}
	s.session.Pan(dx, dy)
}

// handleClick 分发一次点击
//
// 点击侧边栏图标先切换工具；缩放类工具在点击图标时立即生效。
// 点击其他位置时，放置/移除类工具作用于网格。
func (s *PotBuilderScene) handleClick(x, y int) {
	if tool, ok := sidebarToolAt(x, y); ok {
		s.selectTool(tool)
		if tool.Instant() {
			s.tools.Apply(s.session, x, y)
		}
		return
	}

	if !s.tools.Active().Instant() {
		s.tools.Apply(s.session, x, y)
	}
}

func (s *PotBuilderScene) selectTool(tool Tool) {
	if s.tools.Select(tool) {
		s.settings.SetLastTool(int(tool))
	}
}

// recomputeIfNeeded 消费重新计算标记
// 追踪失败时保留上一次的泥土，错误只记录不中断游戏
func (s *PotBuilderScene) recomputeIfNeeded() {
	if !s.tools.ConsumeRecompute() {
		return
	}
	if err := s.session.Recompute(); err != nil {
		log.Printf("[PotBuilderScene] 泥土计算失败，保留上一次结果: %v", err)
		s.lastErr = err
		return
	}
	s.lastErr = nil
}

// sidebarToolAt 返回 (x, y) 处的侧边栏工具
func sidebarToolAt(x, y int) (Tool, bool) {
	for tool := ToolAddWall; tool < toolCount; tool++ {
		ix, iy, size := config.SidebarIconRect(int(tool))
		if utils.PointInRect(x, y, ix, iy, size, size) {
			return tool, true
		}
	}
	return 0, false
}

// Draw 绘制网格、墙体、侧边栏和泥土
func (s *PotBuilderScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := s.session.Snapshot()

	if s.settings.GetSettings().ShowGrid {
		strokeCells(screen, snap.BuildArea, 1, colorBuildGrid)
	}
	fillCells(screen, snap.Pot, colorPot)
	s.drawSidebar(screen)
	fillCells(screen, snap.Soil, colorSoil)

	status := fmt.Sprintf("Tool: %s  Zoom: %d  Walls: %d  Soil: %d",
		s.tools.Active(), snap.Zoom, len(snap.Pot), len(snap.Soil))
	utils.DrawText(screen, status, 8, 8, colorText)
	if !utils.IsMobile() {
		utils.DrawText(screen, "1-4: tools  +/-: zoom  WASD: pan  G: grid  Tab: back", 8, 24, colorText)
	}
	if s.lastErr != nil {
		utils.DrawText(screen, "Pot shape could not be resolved", 8, 40, colorError)
	}
}

// drawSidebar 绘制工具图标并高亮当前工具
func (s *PotBuilderScene) drawSidebar(screen *ebiten.Image) {
	for tool := ToolAddWall; tool < toolCount; tool++ {
		x, y, size := config.SidebarIconRect(int(tool))
		icon := pot.Cell{X: x, Y: y, W: size, H: size}
		fillCells(screen, []pot.Cell{icon}, colorSidebar)
		_, labelH := utils.MeasureText(tool.Label())
		utils.DrawTextCentered(screen, tool.Label(), float64(x+size/2), float64(y+size/2)-labelH/2, colorSidebarText)
		if tool == s.tools.Active() {
			strokeCells(screen, []pot.Cell{icon}, 2, colorHighlight)
		}
	}
}
