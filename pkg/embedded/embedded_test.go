package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// reset 重置包状态，避免测试之间互相影响
func reset(t *testing.T) {
	t.Helper()
	dataFS = nil
	initialized = false
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) must leave the package uninitialized")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset(t)

	_, err := ReadFile("data/pot_builder.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFile 测试读取嵌入文件及路径标准化
func TestReadFile(t *testing.T) {
	reset(t)
	Init(fstest.MapFS{
		"data/pot_builder.yaml": &fstest.MapFile{Data: []byte("canvasWidth: 854\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/pot_builder.yaml"},
		{name: "带 ./ 前缀", path: "./data/pot_builder.yaml"},
		{name: "未知前缀", path: "assets/pot_builder.yaml", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}
			if string(data) != "canvasWidth: 854\n" {
				t.Errorf("unexpected content %q", data)
			}
		})
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	reset(t)
	if Exists("data/pot_builder.yaml") {
		t.Error("Exists() must be false before Init()")
	}

	Init(fstest.MapFS{
		"data/pot_builder.yaml": &fstest.MapFile{Data: []byte("{}")},
	})
	if !Exists("data/pot_builder.yaml") {
		t.Error("Expected file to exist")
	}
	if Exists("data/other.yaml") {
		t.Error("Expected missing file to not exist")
	}
}
