package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/sprites"
)

func TestSSHServerSessionOptions(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, invaders.DefaultSettings(), sprites.Builtin(), nil, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	opts := srv.sessionOptions("ada", 100, 30, nil)
	if opts.Frontend != "ssh" || opts.User != "ada" {
		t.Errorf("options = %q/%q, expected ssh/ada", opts.Frontend, opts.User)
	}
	if opts.Runtime.ScreenW != 100 || opts.Runtime.ScreenH != 30 || opts.Runtime.TickRate != 60 {
		t.Errorf("Runtime = %+v, expected 100x30 at 60", opts.Runtime)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:0", srv.Addr())
	}
}
