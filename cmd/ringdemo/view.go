package main

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/arcprogress"
	"github.com/gogpu/arcprogress/integration/ggring"
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
)

const progressStep = 10

type viewFlags struct {
	width  int
	height int
	label  bool
}

func newViewCmd(root *rootFlags) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Preview a ring in a window",
		Long: `Opens a window with a live ring.

Keys:
  space   toggle indeterminate mode
  up/down change progress by 10
  h       toggle visibility
  c       cycle the foreground cap
  b       toggle the background circle
  esc     quit`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var opts []ggring.Option
			if flags.label {
				source, face, err := labelFace(float64(min(flags.width, flags.height)) / 6)
				if err != nil {
					return fmt.Errorf("ringdemo: load font: %w", err)
				}
				defer func() { _ = source.Close() }()
				opts = append(opts, ggring.WithLabel(face))
			}
			game, err := newViewer(cfg, ggring.New(opts...))
			if err != nil {
				return err
			}
			defer game.close()

			ebiten.SetWindowSize(flags.width, flags.height)
			ebiten.SetWindowTitle("ringdemo")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 240, "initial window width")
	cmd.Flags().IntVar(&flags.height, "height", 240, "initial window height")
	cmd.Flags().BoolVar(&flags.label, "label", true, "draw the percentage label")

	return cmd
}

// viewer is the ebiten.Game hosting a Bar. The Bar is rasterized with gg
// only when it requests a redraw or the window size changes.
type viewer struct {
	bar      *arcprogress.Bar
	renderer *ggring.Renderer

	dc        *gg.Context
	offscreen *ebiten.Image
	width     int
	height    int

	dirty bool
	err   error
}

func newViewer(cfg arcprogress.Config, renderer *ggring.Renderer) (*viewer, error) {
	v := &viewer{renderer: renderer, dirty: true}
	bar, err := arcprogress.New(cfg, arcprogress.WithInvalidator(v.invalidate))
	if err != nil {
		return nil, err
	}
	v.bar = bar
	bar.Attach()
	return v, nil
}

func (v *viewer) invalidate() { v.dirty = true }

// fail records a rendering error. Update returns it on the next frame,
// which stops the game loop.
func (v *viewer) fail(err error) {
	arcprogress.Logger().Warn("ringdemo: render failed", "error", err)
	v.err = err
}

func (v *viewer) close() {
	v.bar.Detach()
	if v.dc != nil {
		_ = v.dc.Close()
	}
}

// Update implements ebiten.Game.
func (v *viewer) Update() error {
	if v.err != nil {
		return v.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.handleKeys()
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	v.bar.Tick(time.Second / time.Duration(tps))
	return nil
}

func (v *viewer) handleKeys() {
	b := v.bar
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		b.SetIndeterminate(!b.Indeterminate())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		b.SetProgress(b.ProgressTarget() + progressStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		b.SetProgress(b.ProgressTarget() - progressStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		b.SetVisible(!b.Visible())
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		next := (b.Foreground().Cap + 1) % (arcprogress.CapSquare + 1)
		if err := b.SetForegroundStrokeCap(next); err != nil {
			v.err = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		b.SetDrawBackground(!b.DrawBackground())
	}
}

// Draw implements ebiten.Game.
func (v *viewer) Draw(screen *ebiten.Image) {
	if v.width <= 0 || v.height <= 0 {
		return
	}
	if v.dc == nil || v.dc.Width() != v.width || v.dc.Height() != v.height {
		if v.dc != nil {
			_ = v.dc.Close()
		}
		v.dc = gg.NewContext(v.width, v.height)
		v.offscreen = ebiten.NewImage(v.width, v.height)
		v.dirty = true
	}

	if v.dirty {
		v.dc.Clear()
		if v.bar.Visible() {
			if err := v.renderer.Draw(v.dc, v.bar); err != nil {
				v.fail(err)
				return
			}
		}
		img, ok := v.dc.Image().(*image.RGBA)
		if !ok {
			v.fail(errors.New("ringdemo: unexpected image type"))
			return
		}
		v.offscreen.WritePixels(img.Pix)
		v.dirty = false
	}

	screen.DrawImage(v.offscreen, nil)
}

// Layout implements ebiten.Game.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		v.bar.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
