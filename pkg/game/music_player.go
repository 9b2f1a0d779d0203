package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// 淡入参数：每 0.075 秒音量 +0.01，直到达到上限
const (
	musicFadeInterval   = 0.075
	musicFadeStep       = 0.01
	musicMaxVolumeScale = 0.7 // 上限 = 0.7 × 玩家音量百分比
)

// ErrNoTracks 曲目目录中没有可播放的文件
var ErrNoTracks = errors.New("no music tracks found")

// ErrNoAudioContext 没有可用的音频上下文
var ErrNoAudioContext = errors.New("audio context is not available")

// MusicPlayer 背景音乐播放器
// 职责：
//   - 从曲目目录读取 .mp3 / .ogg / .wav 文件，按文件名顺序轮播
//   - 每首曲目从静音开始淡入
//   - 切换曲目后短暂显示 "PLAYING: <name>" 提示
//   - 跟随 SettingsManager 中的音乐开关暂停/恢复
type MusicPlayer struct {
	audioContext *audio.Context
	tracks       fs.FS
	names        []string
	current      int

	player *audio.Player
	paused bool // 因设置关闭而暂停，不视为播放结束

	volume      float64
	maxVolume   float64
	fadeElapsed float64

	caption         string
	captionTimer    float64
	captionDuration float64

	settingsManager *SettingsManager // 可为 nil，视为始终开启
}

// NewMusicPlayer 创建背景音乐播放器
//
// 参数：
//   - audioContext: 全局音频上下文，为 nil 时 Play 返回 ErrNoAudioContext
//   - tracks: 曲目目录
//   - volumePercent: 玩家音量百分比 (0-100)
//   - captionSeconds: 曲目提示显示时长
//   - sm: 设置管理器（可为 nil）
func NewMusicPlayer(audioContext *audio.Context, tracks fs.FS, volumePercent int, captionSeconds float64, sm *SettingsManager) (*MusicPlayer, error) {
	names, err := ListTracks(tracks)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoTracks
	}

	return &MusicPlayer{
		audioContext:    audioContext,
		tracks:          tracks,
		names:           names,
		maxVolume:       musicMaxVolumeScale * float64(volumePercent) / 100,
		captionDuration: captionSeconds,
		settingsManager: sm,
	}, nil
}

// ListTracks 返回目录中支持的曲目文件名（按文件名排序）
func ListTracks(tracks fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(tracks, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list music tracks: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name())) {
		case ".mp3", ".ogg", ".wav":
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Tracks 返回曲目列表
func (mp *MusicPlayer) Tracks() []string {
	return append([]string(nil), mp.names...)
}

// Current 返回当前曲目索引
func (mp *MusicPlayer) Current() int {
	return mp.current
}

// Volume 返回当前音量（淡入过程中小于上限）
func (mp *MusicPlayer) Volume() float64 {
	return mp.volume
}

// Caption 返回曲目提示文字，以及是否仍应显示
func (mp *MusicPlayer) Caption() (string, bool) {
	return mp.caption, mp.captionTimer > 0
}

// Play 从头播放指定曲目，音量从 0 开始淡入
func (mp *MusicPlayer) Play(index int) error {
	if index < 0 || index >= len(mp.names) {
		return fmt.Errorf("track index %d out of range [0, %d)", index, len(mp.names))
	}
	if mp.audioContext == nil {
		return ErrNoAudioContext
	}

	name := mp.names[index]
	data, err := fs.ReadFile(mp.tracks, name)
	if err != nil {
		return fmt.Errorf("failed to read music track %s: %w", name, err)
	}
	stream, err := decodeTrack(mp.audioContext.SampleRate(), name, data)
	if err != nil {
		return err
	}
	player, err := mp.audioContext.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("failed to create audio player for %s: %w", name, err)
	}

	mp.Stop()
	mp.player = player
	mp.current = index
	mp.paused = false
	mp.volume = 0
	mp.fadeElapsed = 0
	player.SetVolume(0)
	player.Play()
	mp.showCaption()

	log.Printf("[MusicPlayer] Playing %s (max volume: %.2f)", name, mp.maxVolume)
	return nil
}

// Next 播放下一首，末尾回到第一首
func (mp *MusicPlayer) Next() error {
	return mp.Play(mp.nextIndex())
}

// Stop 停止当前曲目
func (mp *MusicPlayer) Stop() {
	if mp.player == nil {
		return
	}
	mp.player.Pause()
	if err := mp.player.Close(); err != nil {
		log.Printf("[MusicPlayer] Warning: Failed to close player: %v", err)
	}
	mp.player = nil
}

// Update 推进淡入、提示计时，并在曲目结束时切换到下一首
func (mp *MusicPlayer) Update(dt float64) {
	if mp.captionTimer > 0 {
		mp.captionTimer -= dt
	}

	if mp.player == nil {
		return
	}

	if !mp.enabled() {
		if mp.player.IsPlaying() {
			mp.player.Pause()
		}
		mp.paused = true
		return
	}
	if mp.paused {
		mp.paused = false
		mp.player.Play()
	}

	if !mp.player.IsPlaying() {
		if err := mp.Next(); err != nil {
			log.Printf("[MusicPlayer] Warning: Failed to switch track: %v", err)
			mp.Stop()
		}
		return
	}

	mp.fadeIn(dt)
}

func (mp *MusicPlayer) enabled() bool {
	return mp.settingsManager == nil || mp.settingsManager.GetSettings().MusicEnabled
}

func (mp *MusicPlayer) nextIndex() int {
	return (mp.current + 1) % len(mp.names)
}

func (mp *MusicPlayer) showCaption() {
	mp.caption = "PLAYING: " + mp.names[mp.current]
	mp.captionTimer = mp.captionDuration
}

// fadeIn 按固定节奏提升音量，不超过上限
func (mp *MusicPlayer) fadeIn(dt float64) {
	if mp.volume >= mp.maxVolume {
		mp.fadeElapsed = 0
		return
	}

	mp.fadeElapsed += dt
	for mp.fadeElapsed >= musicFadeInterval && mp.volume < mp.maxVolume {
		mp.volume += musicFadeStep
		mp.fadeElapsed -= musicFadeInterval
	}
	if mp.volume > mp.maxVolume {
		mp.volume = mp.maxVolume
	}

	if mp.player != nil {
		mp.player.SetVolume(mp.volume)
	}
}

// decodeTrack 按扩展名解码曲目，并重采样到音频上下文的采样率
func decodeTrack(sampleRate int, name string, data []byte) (io.ReadSeeker, error) {
	reader := bytes.NewReader(data)

	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", name, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", name, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", name, err)
		}
		return stream, nil
	}
	return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", name)
}
