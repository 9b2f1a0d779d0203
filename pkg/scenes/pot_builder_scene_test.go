package scenes

import (
	"errors"
	"testing"

	"github.com/decker502/botaneer/pkg/config"
	"github.com/decker502/botaneer/pkg/game"
	"github.com/decker502/botaneer/pkg/pot"
)

// newTestBuilder 创建使用默认画布的构建器场景（设置仅保存在内存中）
func newTestBuilder(t *testing.T, opts pot.Options) (*PotBuilderScene, *pot.Session) {
	t.Helper()
	session := pot.NewSession(opts)
	settings := game.NewSettingsManager(nil)
	return NewPotBuilderScene(session, settings, config.DefaultPotBuilderConfig()), session
}

// clickIcon 点击侧边栏中的工具图标
func clickIcon(s *PotBuilderScene, tool Tool) {
	x, y, size := config.SidebarIconRect(int(tool))
	s.handleClick(x+size/2, y+size/2)
	s.recomputeIfNeeded()
}

// clickCells 在格子内部点击并结束本帧
func clickCells(s *PotBuilderScene, coords ...[2]int) {
	for _, c := range coords {
		s.handleClick(c[0]+1, c[1]+1)
	}
	s.recomputeIfNeeded()
}

// 默认可建造区域左上角为 (243, 360)
var builderPot = [][2]int{{243, 360}, {261, 360}, {243, 368}, {252, 368}, {261, 368}}

func TestSidebarToolAt(t *testing.T) {
	for tool := ToolAddWall; tool < toolCount; tool++ {
		x, y, _ := config.SidebarIconRect(int(tool))
		got, ok := sidebarToolAt(x+1, y+1)
		if !ok || got != tool {
			t.Errorf("sidebarToolAt(icon %s) = %s, %v", tool, got, ok)
		}
	}
	if _, ok := sidebarToolAt(250, 370); ok {
		t.Error("build area must not hit the sidebar")
	}
}

func TestPotBuilderPlacesWallsAndFillsSoil(t *testing.T) {
	s, session := newTestBuilder(t, pot.DefaultOptions())

	clickCells(s, builderPot...)

	snap := session.Snapshot()
	if len(snap.Pot) != 5 {
		t.Fatalf("expected 5 walls, got %d", len(snap.Pot))
	}
	want := pot.Cell{X: 252, Y: 360, W: 9, H: 8}
	if len(snap.Soil) != 1 || snap.Soil[0] != want {
		t.Errorf("soil = %v, want [%v]", snap.Soil, want)
	}
}

func TestPotBuilderRemoveToolDropsSoil(t *testing.T) {
	s, session := newTestBuilder(t, pot.DefaultOptions())
	clickCells(s, builderPot...)

	clickIcon(s, ToolRemoveWall)
	if s.tools.Active() != ToolRemoveWall {
		t.Fatalf("active tool = %s, want RemoveWall", s.tools.Active())
	}
	if s.settings.GetSettings().LastTool != int(ToolRemoveWall) {
		t.Errorf("LastTool = %d, want %d", s.settings.GetSettings().LastTool, ToolRemoveWall)
	}

	clickCells(s, [2]int{252, 368})
	snap := session.Snapshot()
	if len(snap.Pot) != 4 {
		t.Errorf("expected 4 walls after removal, got %d", len(snap.Pot))
	}
	if len(snap.Soil) != 0 {
		t.Errorf("stale soil after removal: %v", snap.Soil)
	}
}

func TestPotBuilderZoomIconActsImmediately(t *testing.T) {
	s, session := newTestBuilder(t, pot.DefaultOptions())
	clickCells(s, builderPot...)

	clickIcon(s, ToolZoomIn)
	snap := session.Snapshot()
	if snap.Zoom != 2 {
		t.Fatalf("zoom = %d, want 2", snap.Zoom)
	}
	if len(snap.Soil) != 1 || snap.Soil[0].W != 18 {
		t.Errorf("soil after zoom = %v, want one 18-wide cell", snap.Soil)
	}

	// 缩放工具下点击网格不做任何事
	s.handleClick(snap.Pot[0].X+1, snap.Pot[0].Y+1)
	if s.tools.ConsumeRecompute() {
		t.Error("grid clicks must be ignored while a zoom tool is active")
	}

	clickIcon(s, ToolZoomOut)
	if got := session.Snapshot().Zoom; got != 1 {
		t.Errorf("zoom = %d, want 1", got)
	}
}

func TestPotBuilderKeepsSoilWhenTraceFails(t *testing.T) {
	opts := pot.DefaultOptions()
	opts.MaxTraceIterations = 1
	s, session := newTestBuilder(t, opts)

	clickCells(s, [2]int{243, 368}, [2]int{261, 368}, [2]int{243, 376}, [2]int{252, 376}, [2]int{261, 376})
	before := session.Snapshot().Soil
	if len(before) != 1 {
		t.Fatalf("expected 1 soil cell, got %d", len(before))
	}

	// 再加高一层墙，追踪步数超过上限
	clickCells(s, [2]int{243, 360}, [2]int{261, 360})
	if !errors.Is(s.lastErr, pot.ErrMalformedTraceLoop) {
		t.Fatalf("lastErr = %v, want ErrMalformedTraceLoop", s.lastErr)
	}
	after := session.Snapshot().Soil
	if len(after) != 1 || after[0] != before[0] {
		t.Errorf("soil must be retained: before %v, after %v", before, after)
	}
}
