package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/arcprogress"
)

func TestRenderFrames(t *testing.T) {
	dir := t.TempDir()
	target := 80.0
	flags := renderFlags{frames: 5, fps: 30, size: 48, out: dir}

	paths, err := renderFrames(arcprogress.DefaultConfig(), flags, &target)
	if err != nil {
		t.Fatalf("renderFrames() error = %v", err)
	}
	if len(paths) != flags.frames {
		t.Fatalf("renderFrames() wrote %d frames, want %d", len(paths), flags.frames)
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("open %s: %v", p, err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != flags.size || b.Dy() != flags.size {
			t.Errorf("%s size = %dx%d, want %dx%d", p, b.Dx(), b.Dy(), flags.size, flags.size)
		}
	}
}

func TestRenderFramesInvalidFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags renderFlags
	}{
		{"no frames", renderFlags{frames: 0, fps: 60, size: 32}},
		{"no fps", renderFlags{frames: 1, fps: 0, size: 32}},
		{"no size", renderFlags{frames: 1, fps: 60, size: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.flags.out = t.TempDir()
			if _, err := renderFrames(arcprogress.DefaultConfig(), tt.flags, nil); err == nil {
				t.Error("renderFrames() error = nil, want error")
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "ring.yaml")
	cfg := "indeterminate: true\nforeground:\n  width: 4\n  cap: round\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "frames")

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "--config", cfgPath, "--frames", "3", "--size", "32", "--out", out, "--label"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "wrote 3 frames") {
		t.Errorf("output = %q, want frame count", stdout.String())
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("%d files in output, want 3", len(entries))
	}
}

func TestRenderCommandBadConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want error for missing config")
	}
}
