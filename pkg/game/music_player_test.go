package game

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func testTracks() fstest.MapFS {
	return fstest.MapFS{
		"b_theme.ogg":    &fstest.MapFile{Data: []byte("ogg")},
		"a_intro.mp3":    &fstest.MapFile{Data: []byte("mp3")},
		"c_loop.WAV":     &fstest.MapFile{Data: []byte("wav")},
		"notes.txt":      &fstest.MapFile{Data: []byte("ignored")},
		"covers/art.png": &fstest.MapFile{Data: []byte("ignored")},
	}
}

// TestListTracks 测试曲目过滤与排序
func TestListTracks(t *testing.T) {
	names, err := ListTracks(testTracks())
	if err != nil {
		t.Fatalf("ListTracks() error: %v", err)
	}

	want := []string{"a_intro.mp3", "b_theme.ogg", "c_loop.WAV"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListTracks() = %v, want %v", names, want)
	}
}

// TestNewMusicPlayerNoTracks 测试空目录返回 ErrNoTracks
func TestNewMusicPlayerNoTracks(t *testing.T) {
	_, err := NewMusicPlayer(nil, fstest.MapFS{"readme.md": &fstest.MapFile{}}, 100, 3, nil)
	if !errors.Is(err, ErrNoTracks) {
		t.Errorf("NewMusicPlayer() error = %v, want ErrNoTracks", err)
	}
}

// TestMusicPlayerWithoutAudioContext 测试没有音频上下文时降级
func TestMusicPlayerWithoutAudioContext(t *testing.T) {
	mp, err := NewMusicPlayer(nil, testTracks(), 100, 3, nil)
	if err != nil {
		t.Fatalf("NewMusicPlayer() error: %v", err)
	}

	if err := mp.Play(0); !errors.Is(err, ErrNoAudioContext) {
		t.Errorf("Play() error = %v, want ErrNoAudioContext", err)
	}
	if err := mp.Play(7); err == nil {
		t.Error("Play(7) should reject an out-of-range index")
	}

	// 没有播放器时 Update 不应 panic
	mp.Update(1.0 / 60.0)
}

// TestMusicPlayerNextIndexWraps 测试轮播回到第一首
func TestMusicPlayerNextIndexWraps(t *testing.T) {
	mp, err := NewMusicPlayer(nil, testTracks(), 100, 3, nil)
	if err != nil {
		t.Fatalf("NewMusicPlayer() error: %v", err)
	}

	got := []int{}
	for i := 0; i < 4; i++ {
		mp.current = mp.nextIndex()
		got = append(got, mp.current)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 0, 1}) {
		t.Errorf("track order = %v, want [1 2 0 1]", got)
	}
}

// TestMusicPlayerFadeIn 测试淡入节奏与上限
func TestMusicPlayerFadeIn(t *testing.T) {
	tests := []struct {
		name          string
		volumePercent int
		elapsed       float64
		want          float64
	}{
		{name: "不足一个间隔", volumePercent: 100, elapsed: 0.05, want: 0},
		{name: "三个间隔", volumePercent: 100, elapsed: 0.075 * 3.5, want: 0.03},
		{name: "到达上限", volumePercent: 100, elapsed: 60, want: 0.7},
		{name: "半音量上限", volumePercent: 50, elapsed: 60, want: 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := NewMusicPlayer(nil, testTracks(), tt.volumePercent, 3, nil)
			if err != nil {
				t.Fatalf("NewMusicPlayer() error: %v", err)
			}
			mp.fadeIn(tt.elapsed)
			if math.Abs(mp.Volume()-tt.want) > 1e-9 {
				t.Errorf("Volume() = %v, want %v", mp.Volume(), tt.want)
			}
		})
	}
}

// TestMusicPlayerCaption 测试曲目提示的显示时长
func TestMusicPlayerCaption(t *testing.T) {
	mp, err := NewMusicPlayer(nil, testTracks(), 100, 1, nil)
	if err != nil {
		t.Fatalf("NewMusicPlayer() error: %v", err)
	}

	mp.current = 1
	mp.showCaption()
	caption, visible := mp.Caption()
	if !visible || caption != "PLAYING: b_theme.ogg" {
		t.Errorf("Caption() = %q, %v", caption, visible)
	}

	mp.Update(0.6)
	if _, visible := mp.Caption(); !visible {
		t.Error("caption hidden too early")
	}
	mp.Update(0.6)
	if _, visible := mp.Caption(); visible {
		t.Error("caption still visible after its duration")
	}
}

// TestDecodeTrackUnsupported 测试不支持的格式
func TestDecodeTrackUnsupported(t *testing.T) {
	_, err := decodeTrack(48000, "song.flac", []byte("data"))
	if err == nil || !strings.Contains(err.Error(), "unsupported audio format") {
		t.Errorf("decodeTrack() error = %v", err)
	}
}
