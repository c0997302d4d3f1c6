package main

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/sprites"
)

func TestLoadSheetBuiltin(t *testing.T) {
	sheet, err := loadSheet(config.Default())
	if err != nil {
		t.Fatalf("loadSheet() failed: %v", err)
	}
	if sheet.CellSize() != sprites.BuiltinCellSize {
		t.Errorf("CellSize() = %d, expected %d", sheet.CellSize(), sprites.BuiltinCellSize)
	}
}

func TestLoadSheetBuiltinWrongSize(t *testing.T) {
	cfg := config.Default()
	cfg.Display.SpriteSize = 8

	if _, err := loadSheet(cfg); err == nil {
		t.Error("loadSheet() with sprite_size 8 and built-in sheet should fail")
	}
}

func TestLoadSheetMissingCells(t *testing.T) {
	// Two cells wide: the aliens in cells 2..4 are missing.
	path := filepath.Join(t.TempDir(), "small.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 32, 16))); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	f.Close()

	cfg := config.Default()
	cfg.Assets.SpriteSheet = path

	_, err = loadSheet(cfg)
	if !errors.Is(err, sprites.ErrCellOutOfRange) {
		t.Errorf("loadSheet() = %v, expected ErrCellOutOfRange", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, want string
	}{
		{"~/x/sessions.db", filepath.Join(home, "x", "sessions.db")},
		{"/tmp/sessions.db", "/tmp/sessions.db"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
