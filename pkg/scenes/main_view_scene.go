package scenes

import (
	"fmt"

	"github.com/decker502/botaneer/pkg/game"
	"github.com/decker502/botaneer/pkg/pot"
	"github.com/decker502/botaneer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// MainViewScene 主视图
// 展示可建造区域和当前花盆，按 Tab 进入花盆构建器
type MainViewScene struct {
	session  *pot.Session
	settings *game.SettingsManager
}

// NewMainViewScene 创建主视图场景
func NewMainViewScene(session *pot.Session, settings *game.SettingsManager) *MainViewScene {
	return &MainViewScene{
		session:  session,
		settings: settings,
	}
}

// Update 处理场景切换和网格开关
func (s *MainViewScene) Update(deltaTime float64) game.Transition {
	switch {
	case utils.IsAnyKeyJustPressed(ebiten.KeyTab):
		return game.GoTo(game.ScenePotBuilder)
	case utils.IsAnyKeyJustPressed(ebiten.KeyEscape):
		return game.QuitGame
	case utils.IsAnyKeyJustPressed(ebiten.KeyG):
		s.settings.SetShowGrid(!s.settings.GetSettings().ShowGrid)
	}
	return game.Stay
}

// Draw 绘制可建造区域、墙体和泥土
func (s *MainViewScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := s.session.Snapshot()

	if s.settings.GetSettings().ShowGrid {
		fillCells(screen, snap.BuildArea, colorSlotFill)
		strokeCells(screen, snap.BuildArea, 1, colorSlotBorder)
	}
	fillCells(screen, snap.Pot, colorPot)
	fillCells(screen, snap.Soil, colorSoil)

	utils.DrawText(screen, fmt.Sprintf("Pot cells: %d  Soil cells: %d", len(snap.Pot), len(snap.Soil)), 8, 8, colorText)
	if !utils.IsMobile() {
		utils.DrawText(screen, "Tab: build pot  G: toggle grid  Esc: quit", 8, 24, colorText)
	}
}
