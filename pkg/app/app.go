// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、打开设置存储、
// 创建编辑会话，并通过场景工厂把会话显式传给各个场景。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/botaneer/pkg/config"
	"github.com/decker502/botaneer/pkg/embedded"
	"github.com/decker502/botaneer/pkg/game"
	"github.com/decker502/botaneer/pkg/pot"
	"github.com/decker502/botaneer/pkg/scenes"
	"github.com/decker502/botaneer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	storageAppName  = "botaneer" // gdata 使用的应用名
	audioSampleRate = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 指定花盆构建器配置文件，为空则使用内嵌默认配置
	ConfigPath string
	// StartInBuilder 跳过主视图，直接进入花盆构建器
	StartInBuilder bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	music                    *game.MusicPlayer // 未配置曲目目录时为 nil
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内嵌配置前，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	potConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("花盆构建器配置加载失败: %w", err)
	}
	log.Printf("[Config] Canvas %dx%d, cell %dx%d, zoom %d-%d",
		potConfig.CanvasWidth, potConfig.CanvasHeight, potConfig.CellWidth, potConfig.CellHeight,
		potConfig.ZoomMin, potConfig.ZoomMax)

	// gdata 打开失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: storageAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	session := pot.NewSession(PotOptions(potConfig))
	log.Printf("[App] Build area has %d slots", len(session.Snapshot().BuildArea))

	sceneManager := game.NewSceneManager(func(id game.SceneID) (game.Scene, error) {
		switch id {
		case game.SceneMainView:
			return scenes.NewMainViewScene(session, settings), nil
		case game.ScenePotBuilder:
			return scenes.NewPotBuilderScene(session, settings, potConfig), nil
		}
		return nil, fmt.Errorf("unknown scene %q", id)
	})

	start := game.SceneMainView
	// 触屏上没有 Tab 键，直接进入构建器
	if cfg.StartInBuilder || utils.IsMobile() {
		start = game.ScenePotBuilder
	}
	if err := sceneManager.SwitchTo(start); err != nil {
		return nil, err
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		music:        newMusicPlayer(potConfig.Music, settings),
		verbose:      cfg.Verbose,
	}, nil
}

// newMusicPlayer 创建并启动背景音乐，失败时返回 nil（静音运行）
func newMusicPlayer(cfg config.MusicConfig, settings *game.SettingsManager) *game.MusicPlayer {
	if cfg.Dir == "" {
		return nil
	}

	mp, err := game.NewMusicPlayer(audio.NewContext(audioSampleRate), os.DirFS(cfg.Dir),
		cfg.VolumePercent, cfg.CaptionSeconds, settings)
	if err != nil {
		log.Printf("[App] Warning: music disabled: %v", err)
		return nil
	}
	if err := mp.Play(0); err != nil {
		log.Printf("[App] Warning: failed to start music: %v", err)
		return nil
	}
	return mp
}

// LoadConfig 加载花盆构建器配置
// 优先使用指定文件，其次是内嵌默认配置，最后回退到代码中的默认值
func LoadConfig(path string) (*config.PotBuilderConfig, error) {
	if path != "" {
		return config.LoadPotBuilderConfig(path)
	}

	if embedded.Exists(config.DefaultPotBuilderConfigPath) {
		data, err := embedded.ReadFile(config.DefaultPotBuilderConfigPath)
		if err != nil {
			return nil, err
		}
		return config.ParsePotBuilderConfig(data)
	}

	log.Printf("[Config] Embedded config not found, using built-in defaults")
	return config.DefaultPotBuilderConfig(), nil
}

// PotOptions 将配置转换为编辑会话参数
func PotOptions(cfg *config.PotBuilderConfig) pot.Options {
	return pot.Options{
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
		CellWidth:    cfg.CellWidth,
		CellHeight:   cfg.CellHeight,
		MinZoom:      cfg.ZoomMin,
		MaxZoom:      cfg.ZoomMax,
		BaseThresholds: pot.BaseThresholds{
			First:      cfg.FirstBaseMinRun,
			Subsequent: cfg.BaseMinRun,
		},
		MaxTraceIterations: cfg.MaxTraceIterations,
		BuildArea: pot.BuildAreaLayout{
			SideColumns: cfg.BuildArea.SideColumns,
			TopRows:     cfg.BuildArea.TopRows,
			BottomRows:  cfg.BuildArea.BottomRows,
		},
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settings.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
	}

	// M 切换背景音乐
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settings.SetMusicEnabled(!a.settings.GetSettings().MusicEnabled)
	}

	deltaTime := 1.0 / 60.0
	if a.music != nil {
		a.music.Update(deltaTime)
	}

	if err := a.sceneManager.Update(deltaTime); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.music == nil {
		return
	}
	if caption, ok := a.music.Caption(); ok {
		x := float64(config.GameWindowWidth) / 2
		y := float64(config.GameWindowHeight - config.GameWindowHeight/10)
		utils.DrawTextCentered(screen, caption, x, y, color.Black)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest // 像素风格保持硬边
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 在游戏循环结束后保存设置
func (a *App) Shutdown() {
	if a.music != nil {
		a.music.Stop()
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}
