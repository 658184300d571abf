package main

import (
	"log/slog"

	"github.com/gogpu/arcprogress"
	"github.com/gogpu/gg/text"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "ringdemo",
		Short: "Render and preview circular progress rings",
		Long:  "ringdemo drives an arcprogress.Bar frame by frame and draws it with gg.",
		Example: `  ringdemo render --frames 120 --out frames/
  ringdemo render --config ring.yaml --progress 75
  ringdemo view --config ring.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.verbose {
				arcprogress.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log bar lifecycle events to stderr")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML bar configuration (defaults when empty)")

	cmd.AddCommand(newRenderCmd(&flags))
	cmd.AddCommand(newViewCmd(&flags))

	return cmd
}

// loadConfig returns the configuration named by --config, or the defaults.
func (f *rootFlags) loadConfig() (arcprogress.Config, error) {
	if f.configPath == "" {
		return arcprogress.DefaultConfig(), nil
	}
	return arcprogress.LoadConfig(f.configPath)
}

// labelFace loads the embedded Go font at size. The caller closes the source.
func labelFace(size float64) (*text.FontSource, text.Face, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, nil, err
	}
	return source, source.Face(size), nil
}
