package utils

import "testing"

// TestUIFaceIsCachedPerSize 测试界面字体按字号缓存
func TestUIFaceIsCachedPerSize(t *testing.T) {
	a, err := UIFace(UIFontSize)
	if err != nil {
		t.Fatalf("UIFace() error: %v", err)
	}
	b, err := UIFace(UIFontSize)
	if err != nil {
		t.Fatalf("UIFace() error: %v", err)
	}
	if a != b {
		t.Error("same size should return the cached face")
	}

	big, err := UIFace(UIFontSize * 2)
	if err != nil {
		t.Fatalf("UIFace() error: %v", err)
	}
	if big == a || big.Size != UIFontSize*2 {
		t.Errorf("expected a separate face of size %d, got size %v", UIFontSize*2, big.Size)
	}
}

// TestMeasureText 测试文字宽度随内容增长
func TestMeasureText(t *testing.T) {
	shortW, shortH := MeasureText("Z+")
	longW, _ := MeasureText("PLAYING: track.ogg")

	if shortW <= 0 || shortH <= 0 {
		t.Fatalf("MeasureText(\"Z+\") = %v x %v, want positive size", shortW, shortH)
	}
	if longW <= shortW {
		t.Errorf("longer text should be wider: %v <= %v", longW, shortW)
	}
	if w, _ := MeasureText(""); w != 0 {
		t.Errorf("empty text width = %v, want 0", w)
	}
}
