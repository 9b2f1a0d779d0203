package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPotBuilderConfigPath 是内嵌默认配置的路径
const DefaultPotBuilderConfigPath = "data/pot_builder.yaml"

// PotBuilderConfig 花盆构建器配置
// 定义画布尺寸、格子尺寸、缩放范围以及检测算法使用的阈值
type PotBuilderConfig struct {
	CanvasWidth  int `yaml:"canvasWidth"`  // 逻辑画布宽度，缩放以其中心为锚点
	CanvasHeight int `yaml:"canvasHeight"` // 逻辑画布高度

	CellWidth  int `yaml:"cellWidth"`  // 缩放级别 1 下的格宽，默认 9
	CellHeight int `yaml:"cellHeight"` // 缩放级别 1 下的格高，默认 8

	ZoomMin int `yaml:"zoomMin"` // 缩放级别下限，默认 1
	ZoomMax int `yaml:"zoomMax"` // 缩放级别上限，默认 5

	FirstBaseMinRun    int `yaml:"firstBaseMinRun"`    // 首个底座的最小长度阈值，默认 2
	BaseMinRun         int `yaml:"baseMinRun"`         // 后续底座的最小长度阈值，默认 2
	MaxTraceIterations int `yaml:"maxTraceIterations"` // 向上追踪的迭代上限，默认 1000

	BuildArea BuildAreaConfig `yaml:"buildArea"` // 可建造区域边距

	PanRepeatTicks int `yaml:"panRepeatTicks"` // 按住平移键时的重复间隔（帧），默认 2

	Music MusicConfig `yaml:"music"` // 背景音乐
}

// MusicConfig 背景音乐配置
// Dir 为空时不播放音乐
type MusicConfig struct {
	Dir            string  `yaml:"dir"`            // 曲目目录（.mp3 / .ogg / .wav）
	VolumePercent  int     `yaml:"volumePercent"`  // 玩家音量百分比，默认 100
	CaptionSeconds float64 `yaml:"captionSeconds"` // "PLAYING" 提示显示时长（秒），默认 3
}

// BuildAreaConfig 可建造区域边距配置（以格子为单位）
type BuildAreaConfig struct {
	SideColumns int `yaml:"sideColumns"` // 左右两侧留空列数
	TopRows     int `yaml:"topRows"`     // 顶部留空行数
	BottomRows  int `yaml:"bottomRows"`  // 底部留空行数
}

// LoadPotBuilderConfig 从YAML文件加载花盆构建器配置
// 参数：
//
//	filepath - 配置文件路径
//
// 返回：
//
//	*PotBuilderConfig - 解析后的配置对象
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadPotBuilderConfig(filepath string) (*PotBuilderConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pot builder config file %s: %w", filepath, err)
	}

	cfg, err := ParsePotBuilderConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParsePotBuilderConfig 从YAML数据解析配置，应用默认值并验证
func ParsePotBuilderConfig(data []byte) (*PotBuilderConfig, error) {
	var cfg PotBuilderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pot builder config YAML: %w", err)
	}

	applyPotBuilderDefaults(&cfg)

	if err := validatePotBuilderConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid pot builder config: %w", err)
	}
	return &cfg, nil
}

// DefaultPotBuilderConfig 返回全部使用默认值的配置
func DefaultPotBuilderConfig() *PotBuilderConfig {
	cfg := &PotBuilderConfig{
		BuildArea: BuildAreaConfig{SideColumns: 27, TopRows: 45, BottomRows: 2},
	}
	applyPotBuilderDefaults(cfg)
	return cfg
}

// applyPotBuilderDefaults 为缺失的字段设置默认值
// BuildArea 的边距允许为 0，因此不在这里补默认值
func applyPotBuilderDefaults(cfg *PotBuilderConfig) {
	if cfg.CanvasWidth == 0 {
		cfg.CanvasWidth = GameWindowWidth
	}
	if cfg.CanvasHeight == 0 {
		cfg.CanvasHeight = GameWindowHeight
	}
	if cfg.CellWidth == 0 {
		cfg.CellWidth = 9
	}
	if cfg.CellHeight == 0 {
		cfg.CellHeight = 8
	}
	if cfg.ZoomMin == 0 {
		cfg.ZoomMin = 1
	}
	if cfg.ZoomMax == 0 {
		cfg.ZoomMax = 5
	}
	if cfg.FirstBaseMinRun == 0 {
		cfg.FirstBaseMinRun = 2
	}
	if cfg.BaseMinRun == 0 {
		cfg.BaseMinRun = 2
	}
	if cfg.MaxTraceIterations == 0 {
		cfg.MaxTraceIterations = 1000
	}
	if cfg.PanRepeatTicks == 0 {
		cfg.PanRepeatTicks = 2
	}
	if cfg.Music.VolumePercent == 0 {
		cfg.Music.VolumePercent = 100
	}
	if cfg.Music.CaptionSeconds == 0 {
		cfg.Music.CaptionSeconds = 3
	}
}

// validatePotBuilderConfig 验证配置的合法性
func validatePotBuilderConfig(cfg *PotBuilderConfig) error {
	if cfg.CanvasWidth < 0 || cfg.CanvasHeight < 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}

	if cfg.CellWidth < 0 || cfg.CellHeight < 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", cfg.CellWidth, cfg.CellHeight)
	}

	if cfg.ZoomMin < 1 {
		return fmt.Errorf("zoomMin must be at least 1, got %d", cfg.ZoomMin)
	}
	if cfg.ZoomMax < cfg.ZoomMin {
		return fmt.Errorf("zoomMax (%d) must not be less than zoomMin (%d)", cfg.ZoomMax, cfg.ZoomMin)
	}

	if cfg.FirstBaseMinRun < 0 || cfg.BaseMinRun < 0 {
		return fmt.Errorf("base thresholds cannot be negative")
	}

	if cfg.MaxTraceIterations < 0 {
		return fmt.Errorf("maxTraceIterations cannot be negative, got %d", cfg.MaxTraceIterations)
	}

	b := cfg.BuildArea
	if b.SideColumns < 0 || b.TopRows < 0 || b.BottomRows < 0 {
		return fmt.Errorf("buildArea margins cannot be negative")
	}

	if cfg.PanRepeatTicks < 0 {
		return fmt.Errorf("panRepeatTicks cannot be negative, got %d", cfg.PanRepeatTicks)
	}

	if cfg.Music.VolumePercent < 0 || cfg.Music.VolumePercent > 100 {
		return fmt.Errorf("music.volumePercent must be within 0-100, got %d", cfg.Music.VolumePercent)
	}
	if cfg.Music.CaptionSeconds < 0 {
		return fmt.Errorf("music.captionSeconds cannot be negative, got %v", cfg.Music.CaptionSeconds)
	}
	return nil
}
