package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/arcprogress"
	"github.com/gogpu/arcprogress/integration/ggring"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	frames   int
	fps      int
	size     int
	out      string
	progress float64
	label    bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one PNG per animation frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var target *float64
			if cmd.Flags().Changed("progress") {
				target = &flags.progress
			}
			paths, err := renderFrames(cfg, flags, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", len(paths), flags.out)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.frames, "frames", 60, "number of frames")
	cmd.Flags().IntVar(&flags.fps, "fps", 60, "frames per second of the simulated clock")
	cmd.Flags().IntVar(&flags.size, "size", 128, "frame width and height in pixels")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "frames", "output directory")
	cmd.Flags().Float64Var(&flags.progress, "progress", 0, "animate to this progress after the first frame")
	cmd.Flags().BoolVar(&flags.label, "label", false, "draw the percentage label")

	return cmd
}

// renderFrames attaches a Bar built from cfg and writes frames into
// flags.out. A non-nil target is applied after the first frame so the
// progress animation is captured.
func renderFrames(cfg arcprogress.Config, flags renderFlags, target *float64) ([]string, error) {
	if flags.frames <= 0 || flags.fps <= 0 || flags.size <= 0 {
		return nil, errors.New("ringdemo: frames, fps and size must be positive")
	}

	bar, err := arcprogress.New(cfg)
	if err != nil {
		return nil, err
	}
	bar.Resize(float64(flags.size), float64(flags.size))
	bar.Attach()
	defer bar.Detach()

	var opts []ggring.Option
	if flags.label {
		source, face, err := labelFace(float64(flags.size) / 6)
		if err != nil {
			return nil, fmt.Errorf("ringdemo: load font: %w", err)
		}
		defer func() { _ = source.Close() }()
		opts = append(opts, ggring.WithLabel(face))
	}
	renderer := ggring.New(opts...)

	if err := os.MkdirAll(flags.out, 0o755); err != nil {
		return nil, fmt.Errorf("ringdemo: %w", err)
	}

	dc := gg.NewContext(flags.size, flags.size)
	defer func() { _ = dc.Close() }()

	dt := time.Second / time.Duration(flags.fps)
	paths := make([]string, 0, flags.frames)
	for i := 0; i < flags.frames; i++ {
		if i > 0 {
			if i == 1 && target != nil {
				bar.SetProgress(*target)
			}
			bar.Tick(dt)
		}

		dc.Clear()
		if err := renderer.Draw(dc, bar); err != nil {
			return paths, err
		}
		path := filepath.Join(flags.out, fmt.Sprintf("frame_%04d.png", i))
		if err := dc.SavePNG(path); err != nil {
			return paths, fmt.Errorf("ringdemo: save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
